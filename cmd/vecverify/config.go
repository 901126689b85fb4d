package main

import (
	"github.com/embedlab/vecverify/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration",
	Long:  `Show the resolved configuration, including defaults for unset fields.`,
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

// ConfigResult is the response for the config command.
type ConfigResult struct {
	Path        string   `json:"path"`
	Input       string   `json:"input"`
	Dimensions  int      `json:"dimensions"`
	SampleTexts []string `json:"sample_texts"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	result := ConfigResult{
		Path:        config.Path(),
		Input:       cfg.Input,
		Dimensions:  cfg.Dimensions,
		SampleTexts: cfg.SampleTexts,
	}

	if humanOutput {
		outputHuman("Config: %s\nInput: %s\nDimensions: %d\nSample texts: %d\n",
			result.Path, result.Input, result.Dimensions, len(result.SampleTexts))
		return nil
	}
	return outputJSON(result)
}
