package editor

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/forem/mdtoolbar/buffer"
	"github.com/forem/mdtoolbar/paste"
	"github.com/forem/mdtoolbar/upload"
)

// PasteMsg delivers a paste from a host that can see more than the
// terminal's bracketed paste, such as files dropped onto the window.
type PasteMsg struct {
	Text  string
	Files []string
}

// embedOfferMsg asks the model to show the embed offer with sequence seq,
// unless a newer paste has superseded it in the meantime.
type embedOfferMsg struct {
	seq uint64
}

func (m Model) handlePaste(text string, files []string) (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}

	if len(files) > 0 {
		var cmds []tea.Cmd
		for _, path := range files {
			var cmd tea.Cmd
			m, cmd = m.uploadFile(path)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// Terminals paste a dropped file as its path.
	if m.cfg.Uploader != nil && !strings.Contains(strings.TrimSpace(text), "\n") && upload.IsImagePath(strings.TrimSpace(text)) {
		img, err := upload.ImageFromFile(text)
		if err == nil {
			return m.StartUpload(img)
		}
		m.cfg.Logger.Debug("pasted path is not an uploadable image", "error", err)
	}

	text = normalizeNewlines(text)
	if text == "" {
		return m, nil
	}
	c, ok := paste.Detect(m.buf.Text(), m.buf.SelectedRange(), text, false)
	m.buf.InsertText(text)
	if !ok {
		return m, nil
	}

	seq := m.offer.Show(c)
	if m.offerShown != 0 {
		m.offerShown = 0
		m.layout()
	}
	m.cfg.Logger.Debug("embed offer pending", "url", c.URL, "offset", c.Offset, "seq", seq)
	return m, m.offerCmd(seq)
}

func (m Model) offerCmd(seq uint64) tea.Cmd {
	msg := embedOfferMsg{seq: seq}
	if m.cfg.EmbedDelay == 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(m.cfg.EmbedDelay, func(time.Time) tea.Msg { return msg })
}

func (m Model) showOffer(seq uint64) Model {
	if !m.offer.Current(seq) {
		return m
	}
	m.offerShown = seq
	m.layout()
	return m
}

func (m Model) offerVisible() bool {
	return m.offerShown != 0 && m.offer.Current(m.offerShown)
}

// EmbedOffer returns the URL offer currently on screen.
func (m Model) EmbedOffer() (paste.Candidate, bool) {
	if !m.offerVisible() {
		return paste.Candidate{}, false
	}
	return m.offer.Live()
}

func (m Model) acceptOffer() Model {
	e, ok := m.offer.Embed(m.buf.Text())
	m.offerShown = 0
	if ok {
		m.buf.Replace(e.TextEdit(), e.Selection, buffer.ChangeSourceEmbed)
	} else {
		m.cfg.Logger.Debug("embed target no longer in document")
	}
	m.layout()
	return m
}

func (m Model) dismissOffer() Model {
	m.offer.Dismiss()
	m.offerShown = 0
	m.layout()
	return m
}
