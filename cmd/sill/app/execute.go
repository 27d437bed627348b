package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/etalab/sill-data/cmd/sill/cmd/build"
	"github.com/etalab/sill-data/cmd/sill/cmd/csv"
	"github.com/etalab/sill-data/cmd/sill/cmd/validate"
	"github.com/etalab/sill-data/pkg/logging"
)

// Execute runs the sill CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sill",
		Short:   "SILL catalog data builder",
		Version: a.version,
		Long: `Sill compiles the tables of the Socle Interministériel de Logiciels
Libres into the documents published with the catalog.

It reads software.json, referent.json, softwareReferent.json and
service.json from the data directory and writes compiled JSON documents
and CSV exports.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.sill.yaml or $HOME/.sill.yaml)")
	flags.BoolP("verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.String("data-dir", "", "directory holding the input tables (default \"data\")")
	flags.String("build-dir", "", "output directory (default is <data-dir>/build)")

	rootCmd.SetVersionTemplate("sill {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It applies the global
// flags on top of the loaded configuration and rebuilds the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if flags.Changed("config") {
		config, err := LoadConfigFile(mustGetString(cmd, "config"))
		if err != nil {
			return err
		}
		a.config = config
	}

	if flags.Changed("data-dir") {
		a.config.DataDir = mustGetString(cmd, "data-dir")
	}
	if flags.Changed("build-dir") {
		a.config.BuildDir = mustGetString(cmd, "build-dir")
	}

	a.config.UpdateFromFlags(
		mustGetBool(cmd, "verbose"),
		mustGetBool(cmd, "quiet"),
		mustGetBool(cmd, "no-color"),
		mustGetString(cmd, "log-level"),
	)

	if !a.fixedLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
		logging.SetDefault(logger)
	}

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(build.NewCommand(a))
	rootCmd.AddCommand(csv.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("sill %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
