package editor

import (
	"log/slog"
	"time"

	"github.com/forem/mdtoolbar/format"
	"github.com/forem/mdtoolbar/upload"
)

const defaultUploadTimeout = 30 * time.Second

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	ShowToolbar  bool
	Style        Style

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly     bool
	KeyMap       KeyMap
	ScrollPolicy ScrollPolicy

	// Formatters lists the toolbar entries in order. Empty means every
	// formatter.
	Formatters []format.ID

	Clipboard Clipboard

	// Uploader receives pasted image files. Nil disables image paste.
	Uploader      upload.Uploader
	UploadTimeout time.Duration

	// EmbedDelay postpones showing the embed offer after a paste so the
	// paste itself settles first. Zero shows it on the next update.
	EmbedDelay time.Duration

	// OnChange is called after every update that changed the buffer.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
}

func (cfg Config) normalized() Config {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if len(cfg.Formatters) == 0 {
		for _, f := range format.All() {
			cfg.Formatters = append(cfg.Formatters, f.ID)
		}
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = defaultUploadTimeout
	}
	if cfg.EmbedDelay < 0 {
		cfg.EmbedDelay = 0
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
