package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const develVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version of fsh and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("fsh %s built with %s\n", buildVersion(), runtime.Version())
		},
	}
}

// buildVersion reports the module version stamped by the go tool, or
// (devel) for local builds.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return develVersion
	}

	return info.Main.Version
}

func init() {
	registerCommand(newVersionCmd)
}
