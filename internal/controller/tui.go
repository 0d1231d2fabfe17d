package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// ErrConfirmationCancelled is returned when the operator leaves the prompt
// without answering.
var ErrConfirmationCancelled = errors.New("confirmation cancelled")

// TUI implements UI with a Bubble Tea confirmation prompt. Everything else is
// printed the same way as SimpleUI.
type TUI struct {
	*SimpleUI
	cmd *cobra.Command
}

// NewTUI creates a new TUI on top of simple.
func NewTUI(cmd *cobra.Command, simple *SimpleUI) *TUI {
	return &TUI{SimpleUI: simple, cmd: cmd}
}

// Confirm runs a single-key prompt: y or enter for yes, n for no, esc or
// ctrl+c to cancel.
func (t *TUI) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	model := newConfirmModel(prompt, t.colors)

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
	)

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}

		return false, fmt.Errorf("run confirmation prompt: %w", err)
	}

	result, ok := final.(confirmModel)
	if !ok || result.cancelled {
		return false, ErrConfirmationCancelled
	}

	return result.answer, nil
}

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = confirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y/enter", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// confirmModel represents the Bubble Tea model of a yes/no question.
type confirmModel struct {
	prompt    string
	colors    palette
	answer    bool
	done      bool
	cancelled bool
}

func newConfirmModel(prompt string, colors palette) confirmModel {
	return confirmModel{prompt: prompt, colors: colors}
}

func (cm confirmModel) Init() tea.Cmd {
	return nil
}

func (cm confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return cm, nil
	}

	switch {
	case key.Matches(keyMsg, confirmKeys.Yes):
		cm.answer = true
		cm.done = true

		return cm, tea.Quit
	case key.Matches(keyMsg, confirmKeys.No):
		cm.done = true

		return cm, tea.Quit
	case key.Matches(keyMsg, confirmKeys.Cancel):
		cm.cancelled = true
		cm.done = true

		return cm, tea.Quit
	}

	return cm, nil
}

func (cm confirmModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s >>> %s (Y/n): ", cm.colors.render(cm.colors.confirm, confirmLabel), cm.prompt)

	switch {
	case cm.cancelled:
		b.WriteString("cancelled\n")
	case cm.done && cm.answer:
		b.WriteString("yes\n")
	case cm.done:
		b.WriteString("no\n")
	default:
		fmt.Fprintf(&b, "\n  %s • %s • %s\n",
			helpText(confirmKeys.Yes), helpText(confirmKeys.No), helpText(confirmKeys.Cancel))
	}

	return b.String()
}

func helpText(binding key.Binding) string {
	help := binding.Help()
	return help.Key + ": " + help.Desc
}
