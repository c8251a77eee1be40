// Package cmd provides the Cobra commands of qb.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qualzed/qb/internal/cli"
	"github.com/qualzed/qb/internal/domain/build"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "qb",
		Short: "A small tabbed web browser with voice search",
		Long: `qb - a small tabbed web browser built on GTK4 and WebKitGTK.

Run 'qb' or 'qb browse [url]' to open the browser window. The other
subcommands read the same history log and settings from the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the version shown by --version. Call before Execute.
func SetBuildInfo(info build.Info) {
	rootCmd.Version = info.String()
}

// GetApp returns the initialized app.
func GetApp() *cli.App {
	return app
}

// browseCmd documents the GUI entry point; main handles it before cobra runs.
var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Launch the browser window",
	Long: `Launch the GTK4 browser window.

If a URL is given, the first tab opens it. Otherwise it opens the home page.

Examples:
  qb browse
  qb browse example.com`,
	Args: cobra.MaximumNArgs(1),
	Run:  func(*cobra.Command, []string) {},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
