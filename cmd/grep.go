package cmd

import (
	"github.com/spf13/cobra"

	"fsh.dev/pkg/fsh/internal/domain"
	m "fsh.dev/pkg/fsh/internal/model"
)

func newGrepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grep PATTERN PATH",
		Short: "Search files for a regular expression",
		Long: `Print the lines of PATH matching PATTERN. With -r, PATH must be a directory
and every readable text file below it is searched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recursive, err := cmd.Flags().GetBool(recursiveFlagName)
			if err != nil {
				return err
			}

			ignoreCase, err := cmd.Flags().GetBool(ignoreCaseFlag)
			if err != nil {
				return err
			}

			return workflow.Grep(cmd.Context(), domain.GrepArgs{
				Pattern:    args[0],
				Path:       m.Path(args[1]),
				Recursive:  recursive,
				IgnoreCase: ignoreCase,
			})
		},
	}

	cmd.Flags().BoolP(recursiveFlagName, "r", false, "search directories recursively")
	cmd.Flags().BoolP(ignoreCaseFlag, "i", false, "ignore case distinctions")

	return cmd
}

func init() {
	registerCommand(newGrepCmd)
}
