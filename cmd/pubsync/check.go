package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/algo-cancer/algo-cancer.github.io/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the papers page can accept a generated block",
	Long: `Inspect the target file and report which splice path an update would
take: replacing an existing marker-delimited block, or inserting a new one
before the anchor line. No network access.

Exits 3 when neither markers nor anchor are present.`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	data, err := os.ReadFile(cfg.Target)
	if err != nil {
		exitWithError(ExitError, "reading %s: %v", cfg.Target, err)
	}

	status := classifySpliceTarget(string(data), cfg)
	if status == "" {
		exitWithError(ExitNoSpliceTarget, "%s contains neither the generated-block markers nor the anchor %q", cfg.Target, cfg.Anchor)
	}

	if jsonOutput {
		outputJSON(CheckResponse{Status: status, Target: cfg.Target})
		return
	}
	switch status {
	case "markers":
		fmt.Printf("%s: markers found; an update will replace the generated block.\n", cfg.Target)
	case "anchor":
		fmt.Printf("%s: anchor found; an update will insert a new generated block.\n", cfg.Target)
	}
}

// classifySpliceTarget reports which insertion path an update would take
// for the document: "markers", "anchor", or "" when neither is present.
func classifySpliceTarget(doc string, cfg config.Config) string {
	if strings.Contains(doc, cfg.MarkerStart) && strings.Contains(doc, cfg.MarkerEnd) {
		return "markers"
	}
	if strings.Contains(doc, cfg.Anchor) {
		return "anchor"
	}
	return ""
}
