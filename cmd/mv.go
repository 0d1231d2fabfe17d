package cmd

import (
	"github.com/spf13/cobra"

	"fsh.dev/pkg/fsh/internal/domain"
)

func newMvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mv SOURCE... DESTINATION",
		Short: "Move or rename files and directories",
		Long: `Move one or more sources to DESTINATION. With several sources DESTINATION
must be an existing directory. Directories move with their contents.
Replacing an existing file or directory asks first unless -y is given.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := readBatchFlags(cmd)
			if err != nil {
				return err
			}

			paths := parsePaths(args)

			return workflow.Move(cmd.Context(), domain.MoveArgs{
				Sources:     paths[:len(paths)-1],
				Destination: paths[len(paths)-1],
				Yes:         batch.yes,
				Report:      batch.report,
			})
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	registerCommand(newMvCmd)
}
