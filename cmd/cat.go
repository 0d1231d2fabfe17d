package cmd

import (
	"github.com/spf13/cobra"

	"fsh.dev/pkg/fsh/internal/domain"
	m "fsh.dev/pkg/fsh/internal/model"
)

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat FILE",
		Short: "Print a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Cat(cmd.Context(), domain.CatArgs{Path: m.Path(args[0])})
		},
	}
}

func init() {
	registerCommand(newCatCmd)
}
