package upload

import (
	"context"
	"fmt"
)

// Uploader stores an image somewhere and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, img Image) (string, error)
}

// Func adapts a function to Uploader.
type Func func(ctx context.Context, img Image) (string, error)

func (f Func) Upload(ctx context.Context, img Image) (string, error) {
	return f(ctx, img)
}

// Content returns the text that replaces a placeholder once an upload has
// resolved. Failures are substituted like successes, as a message.
func Content(markdown string, err error) string {
	if err != nil {
		return fmt.Sprintf("Upload failed: %v", err)
	}
	return markdown
}

// Markdown renders an image reference.
func Markdown(alt, url string) string {
	return "![" + alt + "](" + url + ")"
}

// Run uploads img and returns the placeholder replacement.
func Run(ctx context.Context, u Uploader, img Image) string {
	url, err := u.Upload(ctx, img)
	if err != nil {
		return Content("", err)
	}
	return Content(Markdown(img.Alt(), url), nil)
}
