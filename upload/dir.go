package upload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Dir is an Uploader that copies images into a local directory and returns
// file:// URLs. Names are content-addressed so repeated uploads are stable.
type Dir struct {
	Path string
}

func (d Dir) Upload(ctx context.Context, img Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	sum := sha256.Sum256(img.Data)
	name := hex.EncodeToString(sum[:8]) + filepath.Ext(img.Name)
	dst := filepath.Join(d.Path, name)
	if err := os.WriteFile(dst, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	abs, err := filepath.Abs(dst)
	if err != nil {
		return "", fmt.Errorf("resolve upload path: %w", err)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}
