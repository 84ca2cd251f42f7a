package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panekit/panekit/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders coded errors with their hint and doc link.
func formatError(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Format()
	}
	return fmt.Sprintf("\033[31mError:\033[0m %s\n", err)
}

func newRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "panekit",
		Short: "Serve server-side components to a thin browser client",
		Long: `panekit mirrors server-side component state to the browser.

Each component type has a synchronization peer that registers the
client script library rendering it. The server serves those libraries
and streams one server message per synchronization pass.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "Directory containing panekit.json")

	rootCmd.AddCommand(
		serveCmd(&configDir),
		servicesCmd(&configDir),
		errorsCmd(),
		versionCmd(),
	)
	return rootCmd
}
