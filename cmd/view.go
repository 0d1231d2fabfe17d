package cmd

import (
	"github.com/spf13/cobra"

	"fsh.dev/pkg/fsh/internal/domain"
	m "fsh.dev/pkg/fsh/internal/model"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view REPORT",
		Short: "View a saved batch report",
		Long:  "View a batch report previously written by cp, mv or rm with --report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	registerCommand(newViewCmd)
}
