package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/algo-cancer/algo-cancer.github.io/internal/config"
	"github.com/algo-cancer/algo-cancer.github.io/internal/render"
	"github.com/algo-cancer/algo-cancer.github.io/internal/scholar"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Regenerate the publications block in the papers page",
	Long: `Crawl the Scholar profile and rewrite the generated block in place.

The target file must already contain either the generated-block markers or
the fallback anchor line; otherwise the run fails without writing anything.

Exit codes: 0 on success, 2 when the crawl found no publications (the file
is left untouched), 3 when neither markers nor anchor are present.

Examples:
  pubsync update
  pubsync update --config pubsync.yml --json`,
	Args: cobra.NoArgs,
	Run:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	pubs, cfg := crawlPublications()
	if len(pubs) == 0 {
		reportEmptyCrawl(cfg)
		os.Exit(ExitNoPublications)
	}

	fragment := render.Fragment(pubs, layoutFromConfig(cfg))

	current, err := os.ReadFile(cfg.Target)
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", cfg.Target, err)
	}

	updated, err := render.Splice(string(current), fragment, targetsFromConfig(cfg))
	if err != nil {
		var anchorErr *render.AnchorNotFoundError
		if errors.As(err, &anchorErr) {
			exitWithError(ExitNoSpliceTarget, "%s: %v", cfg.Target, err)
		}
		exitWithError(ExitError, "%v", err)
	}

	if err := os.WriteFile(cfg.Target, []byte(updated), 0o644); err != nil {
		exitWithError(ExitError, "writing %s: %v", cfg.Target, err)
	}

	if jsonOutput {
		outputJSON(UpdateResponse{Inserted: len(pubs), CutoffYear: cfg.CutoffYear, Target: cfg.Target})
	} else {
		fmt.Printf("Inserted %d publications (>= %d) into %s.\n", len(pubs), cfg.CutoffYear, cfg.Target)
	}
}

// crawlPublications loads configuration and runs the full crawl. Any
// failure exits the process; zero publications is the caller's call.
func crawlPublications() ([]scholar.Publication, config.Config) {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	cfg.FromEnv()

	client := scholar.NewClient(scholar.WithBaseURL(cfg.BaseURL))
	pubs, err := client.CrawlAll(context.Background(), cfg.User, cfg.PageSize, cfg.CutoffYear)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return pubs, cfg
}

func reportEmptyCrawl(cfg config.Config) {
	if jsonOutput {
		outputJSON(UpdateResponse{Inserted: 0, CutoffYear: cfg.CutoffYear})
	} else {
		fmt.Println("No publications fetched.")
	}
}

func layoutFromConfig(cfg config.Config) render.Layout {
	return render.Layout{
		MarkerStart: cfg.MarkerStart,
		MarkerEnd:   cfg.MarkerEnd,
		ChunkSize:   cfg.ChunkSize,
	}
}

func targetsFromConfig(cfg config.Config) render.Targets {
	return render.Targets{
		MarkerStart: cfg.MarkerStart,
		MarkerEnd:   cfg.MarkerEnd,
		Anchor:      cfg.Anchor,
	}
}
