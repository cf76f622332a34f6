// Command mdtoolbar-demo is a terminal markdown editor showing off the
// formatting toolbar, image upload placeholders and paste embed offers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/forem/mdtoolbar"
	"github.com/forem/mdtoolbar/editor"
	"github.com/forem/mdtoolbar/internal/config"
	"github.com/forem/mdtoolbar/upload"
)

const sample = "# Hello from mdtoolbar\n\nSelect text with shift+arrows and press ctrl+b.\nPaste a URL on an empty line to embed it.\nctrl+p opens the formatter palette, ctrl+s saves, ctrl+q quits.\n"

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

type model struct {
	editor editor.Model
	path   string
	logger *slog.Logger
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func (m model) save() {
	if m.path == "" {
		return
	}
	if err := os.WriteFile(m.path, []byte(m.editor.Buffer().Text()), 0o644); err != nil {
		m.logger.Error("save failed", "path", m.path, "error", err)
		return
	}
	m.logger.Info("saved", "path", m.path)
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "mdtoolbar.yaml", "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(mdtoolbar.Version())
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()
	slog.SetDefault(logger)

	path := flag.Arg(0)
	text, err := readDoc(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ec := cfg.EditorConfig()
	ec.Text = text
	ec.Clipboard = systemClipboard{}
	ec.Uploader = upload.Dir{Path: cfg.Upload.Dir}
	ec.Logger = logger
	ec.OnChange = func(ev editor.ChangeEvent) {
		logger.Debug("document changed", "source", ev.Source, "version", ev.Version, "cursor", ev.Cursor)
	}

	logger.Info("starting", "version", mdtoolbar.Version(), "file", path)
	p := tea.NewProgram(model{editor: editor.New(ec), path: path, logger: logger}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func readDoc(path string) (string, error) {
	if path == "" {
		return sample, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}
