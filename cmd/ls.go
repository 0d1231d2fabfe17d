package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fsh.dev/pkg/fsh/internal/domain"
	m "fsh.dev/pkg/fsh/internal/model"
)

func newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [PATH]",
		Short: "List a directory",
		Long: `List the entries of PATH (default: the working directory). Hidden entries
are shown with -a; -l prints permissions, size and modification time.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			long, err := cmd.Flags().GetBool(longFlagName)
			if err != nil {
				return err
			}

			path := m.Path(".")
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				Path: path,
				All:  viper.GetBool(lsAllKey),
				Long: long,
			})
		},
	}

	cmd.Flags().BoolP(longFlagName, "l", false, "use the long listing format")
	cmd.Flags().BoolP(allFlagName, "a", viper.GetBool(lsAllKey), "show hidden entries")
	bindFlagToConfig(cmd.Flags().Lookup(allFlagName), lsAllKey)

	return cmd
}

func init() {
	registerCommand(newLsCmd)
}
