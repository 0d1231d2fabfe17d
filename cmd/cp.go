package cmd

import (
	"github.com/spf13/cobra"

	"fsh.dev/pkg/fsh/internal/domain"
	m "fsh.dev/pkg/fsh/internal/model"
)

func newCpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cp SOURCE... DESTINATION",
		Short: "Copy files and directories",
		Long: `Copy one or more sources to DESTINATION. With several sources DESTINATION
must be an existing directory. Directories are only copied with -r and are
merged into an existing directory of the same name. Overwriting asks first
unless -y is given.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := readBatchFlags(cmd)
			if err != nil {
				return err
			}

			recursive, err := cmd.Flags().GetBool(recursiveFlagName)
			if err != nil {
				return err
			}

			paths := parsePaths(args)

			return workflow.Copy(cmd.Context(), domain.CopyArgs{
				Sources:     paths[:len(paths)-1],
				Destination: paths[len(paths)-1],
				Recursive:   recursive,
				Yes:         batch.yes,
				Report:      batch.report,
			})
		},
	}

	cmd.Flags().BoolP(recursiveFlagName, "r", false, "copy directories recursively")
	configureBatchFlags(cmd)

	return cmd
}

func init() {
	registerCommand(newCpCmd)
}

type batchFlags struct {
	yes    bool
	report m.Path
}

// configureBatchFlags adds the flags shared by cp, mv and rm.
func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP(yesFlagName, "y", false, "answer yes to every confirmation")
	cmd.Flags().String(reportFlagName, "", "write a YAML summary of the batch to this file")
}

func readBatchFlags(cmd *cobra.Command) (batchFlags, error) {
	yes, err := cmd.Flags().GetBool(yesFlagName)
	if err != nil {
		return batchFlags{}, err
	}

	report, err := cmd.Flags().GetString(reportFlagName)
	if err != nil {
		return batchFlags{}, err
	}

	return batchFlags{yes: yes, report: m.Path(report)}, nil
}
