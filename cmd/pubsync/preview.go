package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/algo-cancer/algo-cancer.github.io/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the generated publications block without touching any file",
	Long: `Crawl the Scholar profile and print what an update would splice in.

With --json, the scraped publications are printed as JSON records instead
of the rendered HTML block.

Examples:
  pubsync preview
  pubsync preview --json`,
	Args: cobra.NoArgs,
	Run:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) {
	pubs, cfg := crawlPublications()
	if len(pubs) == 0 {
		reportEmptyCrawl(cfg)
		os.Exit(ExitNoPublications)
	}

	if jsonOutput {
		outputJSON(pubs)
		return
	}
	fmt.Println(render.Fragment(pubs, layoutFromConfig(cfg)))
}
