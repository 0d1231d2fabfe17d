package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

const shellPrompt = "> "

// literalArgs lists, per command, the argument positions that are never
// glob-expanded.
var literalArgs = map[string]map[int]bool{
	"grep": {1: true},
}

// runShell reads commands until exit, end of input or interrupt. Every line
// runs on a fresh command tree; errors are reported and the loop goes on.
func runShell(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for {
		line, err := ui.ReadLine(ctx, shellPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				cmd.Println()
				return nil
			}

			return fmt.Errorf("read command: %w", err)
		}

		args, err := shlex.Split(line)
		if err != nil {
			ui.DisplayError(ctx, fmt.Errorf("parse command: %w", err))
			continue
		}

		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit", "quit":
			return nil
		case "cd":
			if err := changeDirectory(args[1:]); err != nil {
				ui.DisplayError(ctx, err)
			}

			continue
		}

		args, err = expandArgs(args)
		if err != nil {
			ui.DisplayError(ctx, err)
			continue
		}

		tree := newCommandTree()
		tree.SetIn(cmd.InOrStdin())
		tree.SetOut(cmd.OutOrStdout())
		tree.SetErr(cmd.ErrOrStderr())
		tree.SilenceErrors = true
		tree.SetArgs(args)

		if err := tree.ExecuteContext(ctx); err != nil {
			ui.DisplayError(ctx, err)
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

// changeDirectory implements the cd builtin. Without an argument it goes to
// the home directory.
func changeDirectory(args []string) error {
	if len(args) > 1 {
		return errors.New("cd: too many arguments")
	}

	target := ""
	if len(args) == 1 {
		target = args[0]
	}

	if target == "" || target == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cd: %w", err)
		}

		target = home
	}

	if err := os.Chdir(target); err != nil {
		return fmt.Errorf("cd: %w", err)
	}

	return nil
}

// expandArgs replaces glob arguments with the paths they match. A pattern
// matching nothing is passed through unchanged.
func expandArgs(args []string) ([]string, error) {
	keep := literalArgs[args[0]]
	expanded := make([]string, 0, len(args))
	expanded = append(expanded, args[0])

	position := 0

	for _, arg := range args[1:] {
		if strings.HasPrefix(arg, "-") {
			expanded = append(expanded, arg)
			continue
		}

		position++

		if keep[position] || !hasGlobMeta(arg) {
			expanded = append(expanded, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}

		if len(matches) == 0 {
			expanded = append(expanded, arg)
			continue
		}

		expanded = append(expanded, matches...)
	}

	return expanded, nil
}

func hasGlobMeta(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
