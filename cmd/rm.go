package cmd

import (
	"github.com/spf13/cobra"

	"fsh.dev/pkg/fsh/internal/domain"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm TARGET...",
		Short: "Remove files and directories",
		Long: `Remove files, symbolic links and directories. Empty directories are removed
directly; non-empty ones need -r and a confirmation (or -y). The filesystem
root and the working directory or any of its parents are never removed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := readBatchFlags(cmd)
			if err != nil {
				return err
			}

			recursive, err := cmd.Flags().GetBool(recursiveFlagName)
			if err != nil {
				return err
			}

			return workflow.Remove(cmd.Context(), domain.RemoveArgs{
				Targets:   parsePaths(args),
				Recursive: recursive,
				Yes:       batch.yes,
				Report:    batch.report,
			})
		},
	}

	cmd.Flags().BoolP(recursiveFlagName, "r", false, "remove directories and their contents")
	configureBatchFlags(cmd)

	return cmd
}

func init() {
	registerCommand(newRmCmd)
}
