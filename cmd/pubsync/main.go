// Package main provides the pubsync CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// configPath optionally points at a YAML file overriding the
	// compiled-in settings.
	configPath string

	// jsonOutput switches command output to JSON for CI consumption.
	jsonOutput bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubsync",
	Short: "Sync the lab's publication list from Google Scholar",
	Long: `pubsync scrapes the group's Google Scholar profile and regenerates
the recent-publications block inside the papers page.

Publications from the cutoff year onward are fetched page by page, grouped
by year, rendered as HTML, and spliced between marker comments in
papers/index.html. Everything outside the markers is left untouched. Each
run recomputes the whole block; nothing is cached between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML file overriding the built-in settings")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit JSON output instead of human-readable text")
	rootCmd.Version = Version
}
