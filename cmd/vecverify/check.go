package main

import (
	"fmt"

	"github.com/embedlab/vecverify/internal/config"
	"github.com/embedlab/vecverify/internal/storage"
	"github.com/embedlab/vecverify/internal/validate"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate embeddings in a JSON or JSONL file",
	Long: `Validate every embedding record in a JSON or JSONL file.

Each record's vector is checked for dimensionality, NaN/Infinity values,
L2 norm near 1.0, value range and all-zero degeneracy. Records with a
missing text or embedding field are counted as invalid without running the
vector checks. Without an argument the configured input file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status  string         `json:"status"`
	File    string         `json:"file"`
	Records int            `json:"records"`
	Valid   int            `json:"valid"`
	Invalid int            `json:"invalid"`
	Results []RecordResult `json:"results"`
}

// RecordResult reports validation of a single record.
type RecordResult struct {
	Index      int              `json:"index"`
	Text       string           `json:"text,omitempty"`
	Valid      bool             `json:"valid"`
	Dimensions int              `json:"dimensions,omitempty"`
	Norm       float64          `json:"norm,omitempty"`
	Min        float64          `json:"min,omitempty"`
	Max        float64          `json:"max,omitempty"`
	Issues     []validate.Issue `json:"issues,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	path := cfg.Input
	if len(args) == 1 {
		path = args[0]
	}

	return checkFile(cfg, path)
}

func checkFile(cfg *config.Config, path string) error {
	records, err := storage.ReadRecords(path)
	if err != nil {
		exitWithError(ExitDataError, "reading embeddings: %v", err)
	}

	result := buildCheckResult(records, cfg.Dimensions)
	result.File = path

	if humanOutput {
		printCheckHuman(result)
		return nil
	}
	return outputJSON(result)
}

// buildCheckResult validates every record and aggregates the verdict counts.
// Status flips to "issues" when any record is invalid.
func buildCheckResult(records []storage.Record, expectedDim int) CheckResult {
	result := CheckResult{
		Status:  "ok",
		Records: len(records),
		Results: []RecordResult{},
	}

	for i, rec := range records {
		rr := validateRecord(i, rec, expectedDim)
		if rr.Valid {
			result.Valid++
		} else {
			result.Invalid++
		}
		result.Results = append(result.Results, rr)
	}

	if result.Invalid > 0 {
		result.Status = "issues"
	}

	return result
}

// validateRecord applies record-level completeness checks before handing the
// vector to the validator. Incomplete records never reach the validator.
func validateRecord(index int, rec storage.Record, expectedDim int) RecordResult {
	rr := RecordResult{Index: index, Text: rec.Text}

	if rec.Text == "" || len(rec.Embedding) == 0 {
		rr.Issues = []validate.Issue{{
			Kind:    validate.KindIncomplete,
			Message: "Missing 'text' or 'embedding' field",
		}}
		return rr
	}

	valid, issues := validate.Validate(rec.Embedding, expectedDim)
	rr.Valid = valid
	rr.Issues = issues
	rr.Dimensions = len(rec.Embedding)
	rr.Norm = validate.Norm(rec.Embedding)
	rr.Min, rr.Max = validate.MinMax(rec.Embedding)
	return rr
}

// printCheckHuman prints check results in human-readable format.
func printCheckHuman(result CheckResult) {
	fmt.Printf("Checking %s: %d records\n\n", result.File, result.Records)

	for _, rr := range result.Results {
		label := truncateString(rr.Text, LabelMaxLen)
		if rr.Valid {
			fmt.Printf("  [OK]   Entry %d: %q\n", rr.Index+1, label)
			fmt.Printf("         Dimensions: %d, Norm: %.6g, Range: [%.6g, %.6g]\n\n",
				rr.Dimensions, rr.Norm, rr.Min, rr.Max)
		} else {
			fmt.Printf("  [WARN] Entry %d: %q\n", rr.Index+1, label)
			for _, issue := range rr.Issues {
				fmt.Printf("         - %s\n", issue.Message)
			}
			fmt.Println()
		}
	}

	fmt.Printf("Summary: %d valid, %d invalid\n", result.Valid, result.Invalid)
}
