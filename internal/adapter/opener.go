package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"github.com/mmcdole/folio/internal/domain"
	"github.com/pkg/browser"
)

func init() {
	// The TUI owns the terminal
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener opens book links in an external program
type Opener struct {
	command string   // configured command, empty for system default
	args    []string // additional arguments before the URL
	logger  *slog.Logger

	// start and openURL are swapped in tests
	start   func(name string, args ...string) error
	openURL func(url string) error
}

var _ domain.Opener = (*Opener)(nil)

// NewOpener creates a new Opener
func NewOpener(command string, args []string, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		command: command,
		args:    args,
		logger:  logger,
		start:   startCommand,
		openURL: browser.OpenURL,
	}
}

func startCommand(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	return exec.Command(name, args...).Start() // Start async, don't wait
}

// Open launches url with the configured command or the system default
func (o *Opener) Open(url string) error {
	if url == "" {
		return fmt.Errorf("no url to open")
	}

	if o.command != "" {
		args := append(append([]string{}, o.args...), url)
		o.logger.Info("opening link", "command", o.command, "url", url)
		if err := o.start(o.command, args...); err != nil {
			return fmt.Errorf("failed to run %s: %w", o.command, err)
		}
		return nil
	}

	o.logger.Info("opening link with system default", "url", url)
	if err := o.openURL(url); err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	return nil
}
