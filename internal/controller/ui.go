// Package controller provides the terminal front-ends of fsh: confirmation
// prompts, listings, search results and batch summaries.
package controller

import (
	"context"
	"io"
	"os"
	"strings"

	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Confirmer asks the operator a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// UI defines everything the commands display or ask.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Confirmer
	ReadLine(ctx context.Context, prompt string) (string, error)
	DisplayListing(ctx context.Context, title string, entries []m.Entry, long bool) error
	DisplayMatches(ctx context.Context, matches []m.FileMatches) error
	DisplayBatchResult(ctx context.Context, result m.BatchResult)
	DisplayText(ctx context.Context, text string)
	DisplayError(ctx context.Context, err error)
}

// Mode selects the UI implementation.
type Mode string

// Available Mode values.
const (
	ModeAuto  Mode = "auto"
	ModePlain Mode = "plain"
	ModeTUI   Mode = "tui"
)

// ParseMode maps a configuration value to a Mode, defaulting to ModeAuto.
func ParseMode(value string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModePlain:
		return ModePlain
	case ModeTUI:
		return ModeTUI
	default:
		return ModeAuto
	}
}

// Options tunes NewUI.
type Options struct {
	Mode  Mode
	Color bool
	TTY   bool
}

// NewUI picks a UI for cmd. The TUI prompt is used when requested, or in
// auto mode when the terminal is interactive.
func NewUI(cmd *cobra.Command, opts Options) UI {
	simple := NewSimpleUI(cmd, opts.Color && opts.TTY)

	if opts.Mode == ModeTUI || (opts.Mode == ModeAuto && opts.TTY) {
		return NewTUI(cmd, simple)
	}

	return simple
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// AutoConfirmer answers every question with yes.
type AutoConfirmer struct{}

// Confirm returns true unless ctx is already done.
func (AutoConfirmer) Confirm(ctx context.Context, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return true, nil
}
