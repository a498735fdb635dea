package commands

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/diogo/chatscreen/internal/chat"
	"github.com/diogo/chatscreen/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunChat(ctx context.Context, opts tui.Options) ([]chat.Message, error)
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// TUI is the terminal user interface.
	TUI TUIInterface

	// IsTerminal reports whether stdin is an interactive terminal.
	IsTerminal func() bool

	// RunnerOptions are passed to the line-mode runner.
	RunnerOptions []chat.RunnerOption
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunChat(ctx context.Context, opts tui.Options) ([]chat.Message, error) {
	return tui.RunChat(ctx, opts)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI: &DefaultTUI{},
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}
