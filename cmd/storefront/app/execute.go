package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/storefront/internal/cmd/globals"
	"github.com/agentstation/storefront/internal/shell"
	"github.com/agentstation/storefront/pkg/logging"
)

// Execute runs the storefront CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "storefront",
		Short:   "Storefront catalog browser",
		Version: a.version,
		Long: `Storefront browses a product catalog from the terminal.

Each command mounts one storefront view: it shows a loading indicator,
fetches what the view needs from the catalog API, and prints either the
populated page or the error message.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "views",
		Title: "View Commands:",
	})

	globals.AddFlags(rootCmd)

	rootCmd.SetVersionTemplate("storefront {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It reloads configuration
// so explicitly set flags take precedence over env vars and config files.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(globals.ConfigFile(cmd), cmd.Flags())
	if err != nil {
		return err
	}
	a.config = config

	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	a.logger.Debug().
		Str("api_url", a.config.APIURL).
		Str("config_file", a.config.ConfigFile).
		Msg("Configuration loaded")

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError writes err to w. A failed view already painted its message,
// so it only sets the exit status.
func reportError(w io.Writer, err error) {
	if err == nil || shell.IsViewError(err) {
		return
	}
	_, _ = io.WriteString(w, err.Error()+"\n")
}
