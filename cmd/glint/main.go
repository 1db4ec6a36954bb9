package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/glint-dev/glint/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬  ┬┌┐┌┌┬┐
  │ ┬│  ││││ │
  └─┘┴─┘┴┘└┘ ┴
`

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "glint",
		Short: "Live views over a document index",
		Long: `Glint renders reactive views over a continuously-mutating
document index.

Point it at a YAML snapshot of documents and it serves them as live
HTML: every index change re-renders and pushes over WebSocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}
}

// printBanner prints the glint ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}
