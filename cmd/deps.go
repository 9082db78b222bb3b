package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/xolan/lifetuner/internal/config"
	"github.com/xolan/lifetuner/internal/service"
	"github.com/xolan/lifetuner/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	Services   func(ctx context.Context) (*service.Services, error)
	ConfigPath func() (string, error)
	RunForm    func(f *huh.Form) error
	RunTUI     func(s *service.Services) error
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		Services:   service.NewServices,
		ConfigPath: config.GetConfigPath,
		RunForm:    func(f *huh.Form) error { return f.Run() },
		RunTUI:     tui.Run,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
