package upload

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxImageSize bounds the files ImageFromFile will read.
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrNotImage = errors.New("not an image")
	ErrTooLarge = errors.New("image too large")
)

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

type Image struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Alt is the alt text used when the image is inserted.
func (img Image) Alt() string {
	return strings.TrimSuffix(img.Name, filepath.Ext(img.Name))
}

// IsImagePath reports whether path has an image extension.
func IsImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range imageExts {
		if ext == e {
			return true
		}
	}
	return false
}

// ImageFromFile reads an image from disk. Terminals deliver a dropped file
// as its path, so pasted text goes through here first.
func ImageFromFile(path string) (Image, error) {
	path = strings.TrimSpace(strings.ReplaceAll(path, "\\ ", " "))
	if !IsImagePath(path) {
		return Image{}, fmt.Errorf("%s: %w", path, ErrNotImage)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Image{}, fmt.Errorf("stat image: %w", err)
	}
	if info.Size() > MaxImageSize {
		return Image{}, fmt.Errorf("%s: %w", path, ErrTooLarge)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}
	mimeType := detectMIMEType(path, data)
	if !strings.HasPrefix(mimeType, "image/") {
		return Image{}, fmt.Errorf("%s (%s): %w", path, mimeType, ErrNotImage)
	}
	return Image{Name: filepath.Base(path), MIMEType: mimeType, Data: data}, nil
}

func detectMIMEType(path string, data []byte) string {
	if n := min(512, len(data)); n > 0 {
		if t := http.DetectContentType(data[:n]); t != "application/octet-stream" {
			return t
		}
	}
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}
