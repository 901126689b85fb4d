// Package main provides the vecverify CLI entry point.
package main

import (
	"os"

	"github.com/embedlab/vecverify/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vecverify",
	Short: "Embedding vector diagnostics",
	Long: `vecverify validates numeric embedding vectors without involving a
vector store.

It checks dimensionality, NaN/Infinity presence, L2 norm, value range and
all-zero degeneracy for every record in a JSON or JSONL embeddings file, and
self-tests those checks against a deterministic mock embedding generator.
All commands output JSON by default for easy integration with other tools.

Run with no arguments to check the configured embeddings file and then run
the generator self-test.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	// A missing input file is a notice, not a failure: the self-test below
	// still exercises the validator.
	if _, err := os.Stat(cfg.Input); err == nil {
		if err := checkFile(cfg, cfg.Input); err != nil {
			return err
		}
	} else if humanOutput {
		outputHuman("Skipping check: %s not found\n\n", cfg.Input)
	}

	return runSelftestWith(cfg)
}

// mustLoadConfig loads tool configuration, or exits with an error.
// A .env file can hold VECVERIFY_CONFIG; a missing .env is ignored.
func mustLoadConfig() *config.Config {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}
