package editor

import (
	"context"
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forem/mdtoolbar/buffer"
	"github.com/forem/mdtoolbar/upload"
)

// UploadFinishedMsg carries the placeholder replacement for upload ID,
// whether the upload succeeded or not.
type UploadFinishedMsg struct {
	ID      string
	Content string
}

// StartUpload inserts a placeholder at the selection and returns the command
// that performs the upload.
func (m Model) StartUpload(img upload.Image) (Model, tea.Cmd) {
	if m.cfg.Uploader == nil || m.cfg.ReadOnly {
		return m, nil
	}

	text := m.buf.Text()
	m.nextUploadID = upload.FreeID(text, m.nextUploadID)
	id := strconv.Itoa(m.nextUploadID)
	p, e := upload.Start(text, m.buf.SelectedRange(), id)
	m.buf.Replace(e.TextEdit(), e.Selection, buffer.ChangeSourceUpload)
	m.uploads[id] = p

	timeout, logger := m.cfg.UploadTimeout, m.cfg.Logger
	uploader := loggedUploader(m.cfg.Uploader, logger.With("id", id))
	logger.Info("upload started", "id", id, "name", img.Name, "size", len(img.Data))
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return UploadFinishedMsg{ID: id, Content: upload.Run(ctx, uploader, img)}
	}
}

// loggedUploader reports failures at Warn; they still reach the document as
// failure content.
func loggedUploader(u upload.Uploader, logger *slog.Logger) upload.Uploader {
	return upload.Func(func(ctx context.Context, img upload.Image) (string, error) {
		url, err := u.Upload(ctx, img)
		if err != nil {
			logger.Warn("upload failed", "name", img.Name, "error", err)
		}
		return url, err
	})
}

func (m Model) uploadFile(path string) (Model, tea.Cmd) {
	if m.cfg.Uploader == nil {
		return m, nil
	}
	img, err := upload.ImageFromFile(path)
	if err != nil {
		m.cfg.Logger.Warn("cannot upload pasted file", "path", path, "error", err)
		return m, nil
	}
	return m.StartUpload(img)
}

func (m Model) finishUpload(msg UploadFinishedMsg) Model {
	p, ok := m.uploads[msg.ID]
	if !ok {
		return m
	}
	delete(m.uploads, msg.ID)

	e, ok := upload.Finish(m.buf.Text(), m.buf.SelectedRange(), p, msg.Content)
	if !ok {
		m.cfg.Logger.Info("upload placeholder removed, dropping result", "id", msg.ID)
		return m
	}
	m.buf.Replace(e.TextEdit(), e.Selection, buffer.ChangeSourceUpload)
	return m
}

// PendingUploads returns the number of uploads still in flight.
func (m Model) PendingUploads() int { return len(m.uploads) }
