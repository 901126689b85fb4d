package main

import (
	"context"
	"fmt"
	"math"

	"github.com/embedlab/vecverify/internal/config"
	"github.com/embedlab/vecverify/internal/embedding"
	"github.com/embedlab/vecverify/internal/storage"
	"github.com/spf13/cobra"
)

// DeterminismProbe is the fixed text generated twice for the reproducibility
// check.
const DeterminismProbe = "test text"

func init() {
	rootCmd.AddCommand(selftestCmd)
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Exercise the validator against mock embeddings",
	Long: `Generate deterministic mock embeddings for the configured sample texts,
validate each one, and verify that generation is reproducible: the same
text must yield bit-identical vectors on repeated calls.`,
	Args: cobra.NoArgs,
	RunE: runSelftest,
}

// SelftestResult is the response for the selftest command.
type SelftestResult struct {
	Status        string         `json:"status"`
	Model         string         `json:"model"`
	Dimensions    int            `json:"dimensions"`
	Samples       []RecordResult `json:"samples"`
	Deterministic bool           `json:"deterministic"`

	// Drift is the summed absolute per-element difference between two
	// generations of the probe text. Zero when deterministic.
	Drift float64 `json:"drift"`
}

func runSelftest(cmd *cobra.Command, args []string) error {
	return runSelftestWith(mustLoadConfig())
}

func runSelftestWith(cfg *config.Config) error {
	provider := embedding.NewMockProvider(cfg.Dimensions)
	ctx := context.Background()

	result := SelftestResult{
		Status:     "ok",
		Model:      provider.ModelName(),
		Dimensions: provider.Dimensions(),
		Samples:    []RecordResult{},
	}

	for i, text := range cfg.SampleTexts {
		emb, err := provider.Embed(ctx, text)
		if err != nil {
			exitWithError(ExitError, "generating mock embedding: %v", err)
		}

		rr := validateRecord(i, storage.Record{Text: text, Embedding: emb.Vector}, cfg.Dimensions)
		if !rr.Valid {
			result.Status = "issues"
		}
		result.Samples = append(result.Samples, rr)
	}

	first := embedding.MockVector(DeterminismProbe, cfg.Dimensions)
	second := embedding.MockVector(DeterminismProbe, cfg.Dimensions)
	result.Deterministic = len(first) == len(second)
	for i := range first {
		if first[i] != second[i] {
			result.Deterministic = false
			result.Drift += math.Abs(first[i] - second[i])
		}
	}
	if !result.Deterministic {
		result.Status = "issues"
	}

	if humanOutput {
		printSelftestHuman(result)
		return nil
	}
	return outputJSON(result)
}

// printSelftestHuman prints self-test results in human-readable format.
func printSelftestHuman(result SelftestResult) {
	fmt.Printf("Self-test: %s, %d dimensions\n\n", result.Model, result.Dimensions)

	for _, rr := range result.Samples {
		label := truncateString(rr.Text, LabelMaxLen)
		if rr.Valid {
			fmt.Printf("  [OK]   Mock embedding for %q\n", label)
			fmt.Printf("         Dimensions: %d, Norm: %.6g, Range: [%.6g, %.6g]\n\n",
				rr.Dimensions, rr.Norm, rr.Min, rr.Max)
		} else {
			fmt.Printf("  [WARN] Mock embedding for %q\n", label)
			for _, issue := range rr.Issues {
				fmt.Printf("         - %s\n", issue.Message)
			}
			fmt.Println()
		}
	}

	if result.Deterministic {
		fmt.Println("Mock embeddings are deterministic")
	} else {
		fmt.Printf("Mock embeddings are NOT deterministic (total difference: %.10f)\n", result.Drift)
	}
}
