// Package config loads the demo editor's YAML settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/forem/mdtoolbar/editor"
	"github.com/forem/mdtoolbar/format"
)

// Config mirrors the settings file.
//
//	editor:
//	  line-numbers: true
//	  toolbar: true
//	  history-limit: 500
//	  embed-delay: 50ms
//	formatters: [bold, italic, link]
//	keys:
//	  heading: [ctrl+t]
//	upload:
//	  dir: ./uploads
//	  timeout: 30s
//	log:
//	  level: debug
//	  file: mdtoolbar.log
type Config struct {
	Editor     Editor              `yaml:"editor"`
	Formatters []string            `yaml:"formatters"`
	Keys       map[string][]string `yaml:"keys"`
	Upload     Upload              `yaml:"upload"`
	Log        Log                 `yaml:"log"`
}

type Editor struct {
	LineNumbers  bool          `yaml:"line-numbers"`
	Toolbar      bool          `yaml:"toolbar"`
	HistoryLimit int           `yaml:"history-limit"`
	EmbedDelay   time.Duration `yaml:"embed-delay"`
}

type Upload struct {
	Dir     string        `yaml:"dir"`
	Timeout time.Duration `yaml:"timeout"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Default() Config {
	return Config{
		Editor: Editor{
			LineNumbers:  true,
			Toolbar:      true,
			HistoryLimit: 1000,
			EmbedDelay:   50 * time.Millisecond,
		},
		Upload: Upload{
			Dir:     "uploads",
			Timeout: 30 * time.Second,
		},
		Log: Log{
			Level: "info",
			File:  "mdtoolbar.log",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("config file not found, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	for _, id := range c.Formatters {
		if _, ok := format.Lookup(format.ID(id)); !ok {
			errs = append(errs, fmt.Errorf("formatters: unknown formatter %q", id))
		}
	}
	for id, keys := range c.Keys {
		if _, ok := format.Lookup(format.ID(id)); !ok {
			errs = append(errs, fmt.Errorf("keys: unknown formatter %q", id))
		}
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				errs = append(errs, fmt.Errorf("keys.%s: empty key", id))
			}
		}
	}
	if c.Editor.HistoryLimit < 0 {
		errs = append(errs, errors.New("editor.history-limit: must not be negative"))
	}
	if c.Editor.EmbedDelay < 0 {
		errs = append(errs, errors.New("editor.embed-delay: must not be negative"))
	}
	if c.Upload.Timeout < 0 {
		errs = append(errs, errors.New("upload.timeout: must not be negative"))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

func (c Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, err
	}
	return l, nil
}

// EditorConfig translates the file into editor settings. Hosts add the
// collaborators (uploader, clipboard, logger) themselves.
func (c Config) EditorConfig() editor.Config {
	km := editor.DefaultKeyMap()
	for id, keys := range c.Keys {
		km.SetFormatKeys(format.ID(id), keys...)
	}

	ids := make([]format.ID, 0, len(c.Formatters))
	for _, id := range c.Formatters {
		ids = append(ids, format.ID(id))
	}

	return editor.Config{
		ShowLineNums:  c.Editor.LineNumbers,
		ShowToolbar:   c.Editor.Toolbar,
		Style:         editor.DefaultStyle(),
		HistoryLimit:  c.Editor.HistoryLimit,
		KeyMap:        km,
		Formatters:    ids,
		UploadTimeout: c.Upload.Timeout,
		EmbedDelay:    c.Editor.EmbedDelay,
	}
}
