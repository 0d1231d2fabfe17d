// Package cmd provides the root command and CLI setup for fsh.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fsh.dev/pkg/fsh/internal/adapter"
	"fsh.dev/pkg/fsh/internal/controller"
	"fsh.dev/pkg/fsh/internal/domain"
	m "fsh.dev/pkg/fsh/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var fsAdapter adapter.FSAdapter
var archiveAdapter adapter.ArchiveAdapter
var reportStore adapter.ReportStore
var guard domain.PathGuard
var ops domain.MutationOps
var coordinator domain.Coordinator
var lister domain.Lister
var searcher domain.Searcher
var archiver domain.Archiver
var workflow domain.Workflow
var ui controller.UI

// verboseFlag forces debug logging for the current invocation.
var verboseFlag bool

// subcommands holds the constructor of every registered subcommand so the
// interactive shell can build a fresh command tree for each line.
var subcommands []func() *cobra.Command

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.Options{
		Mode:  controller.ParseMode(viper.GetString(uiModeKey)),
		Color: viper.GetBool(uiColorKey),
		TTY:   controller.IsTTY(os.Stdout),
	})
	fsAdapter = adapter.NewLocalFSAdapter()
	archiveAdapter = adapter.NewLocalArchiveAdapter(viper.GetInt(archiveLevelKey))
	reportStore = adapter.NewReportStore()
	guard = domain.NewPathGuard(fsAdapter)
	ops = domain.NewMutationOps(fsAdapter, guard)
	coordinator = domain.NewCoordinator(fsAdapter, ops)
	lister = domain.NewLister(fsAdapter)
	searcher = domain.NewSearcher(fsAdapter, domain.SearchOptions{
		Workers:    viper.GetInt(grepWorkersKey),
		SkipBinary: viper.GetBool(grepSkipBinaryKey),
	})
	archiver = domain.NewArchiver(fsAdapter, archiveAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		coordinator,
		lister,
		searcher,
		archiver,
	)
}

const rootLongDescription = `fsh is a small interactive file shell. It copies, moves, removes, lists,
searches and archives files, asking before anything destructive.

Run it without arguments to start the interactive prompt, or pass a single
command such as "fsh cp -r src backup".`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "fsh",
		Short:        "Interactive file shell",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}

			return runShell(cmd)
		},
	}
}

// registerCommand adds the command built by newCmd to the root command and
// remembers the constructor for the interactive shell.
func registerCommand(newCmd func() *cobra.Command) {
	subcommands = append(subcommands, newCmd)
	rootCmd.AddCommand(newCmd())
}

// newCommandTree builds a fresh root command carrying every subcommand.
func newCommandTree() *cobra.Command {
	root := newRootCmd()
	root.RunE = func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	}

	configureRootFlags(root)

	for _, newCmd := range subcommands {
		root.AddCommand(newCmd())
	}

	return root
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func initLogging() {
	configureLogger("", viper.GetBool(logVerboseKey))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(initLogging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
