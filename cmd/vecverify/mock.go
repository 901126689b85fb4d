package main

import (
	"github.com/embedlab/vecverify/internal/embedding"
	"github.com/embedlab/vecverify/internal/validate"
	"github.com/spf13/cobra"
)

// mockDimensions overrides the configured dimensionality for the mock command.
var mockDimensions int

func init() {
	mockCmd.Flags().IntVar(&mockDimensions, "dimensions", 0, "Vector dimensions (default from config)")
	rootCmd.AddCommand(mockCmd)
}

var mockCmd = &cobra.Command{
	Use:   "mock <text>",
	Short: "Generate a deterministic mock embedding",
	Long: `Generate a deterministic mock embedding for the given text.

The output is reproducible: the same text and dimensions always produce the
same vector. Useful as a fixture source when testing validation pipelines.`,
	Args: cobra.ExactArgs(1),
	RunE: runMock,
}

// MockResult is the response for the mock command.
type MockResult struct {
	Text       string    `json:"text"`
	Model      string    `json:"model"`
	Dimensions int       `json:"dimensions"`
	Norm       float64   `json:"norm"`
	Vector     []float64 `json:"vector"`
}

func runMock(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	dims := cfg.Dimensions
	if mockDimensions > 0 {
		dims = mockDimensions
	}

	vector := embedding.MockVector(args[0], dims)
	result := MockResult{
		Text:       args[0],
		Model:      embedding.MockModelName,
		Dimensions: len(vector),
		Norm:       validate.Norm(vector),
		Vector:     vector,
	}

	if humanOutput {
		outputHuman("Mock embedding for %q\nDimensions: %d, Norm: %.6g\n",
			truncateString(result.Text, LabelMaxLen), result.Dimensions, result.Norm)
		return nil
	}
	return outputJSON(result)
}
