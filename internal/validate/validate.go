// Package validate implements quality checks for embedding vectors.
//
// The checks are loose heuristics meant to catch gross corruption (wrong
// model output, truncated vectors, garbage data) rather than enforce exact
// unit normalization.
package validate

import (
	"fmt"
	"math"
)

// Validation thresholds. The norm window allows ±10% around unit length;
// the value range is generous for any normalized embedding.
const (
	DefaultDimensions = 1024

	NormMin = 0.9
	NormMax = 1.1

	ValueMin = -10.0
	ValueMax = 10.0

	// ZeroEpsilon is the magnitude below which an element counts as zero
	// for the degeneracy check.
	ZeroEpsilon = 1e-6
)

// Kind classifies a validation issue.
type Kind string

const (
	KindDimension Kind = "dimension_mismatch"
	KindNaN       Kind = "nan_value"
	KindInfinite  Kind = "infinite_value"
	KindNorm      Kind = "norm_out_of_range"
	KindRange     Kind = "values_out_of_range"
	KindZero      Kind = "all_zero"

	// KindIncomplete is reported by drivers for records whose vector never
	// reaches the validator (missing text or embedding field).
	KindIncomplete Kind = "incomplete_record"
)

// Issue is a single defect found in a vector.
type Issue struct {
	Kind    Kind   `json:"type"`
	Message string `json:"message"`
}

func (i Issue) String() string { return i.Message }

// Validate checks whether a vector is a plausible normalized embedding.
// All checks run unconditionally; issues accumulate in check order and the
// verdict is valid iff none were found. Any numeric input is acceptable:
// NaN and Infinity are detected, never fatal.
//
// Callers are responsible for coercing raw values to float64 before calling;
// a missing or empty vector is an upstream record error, not a validator
// concern.
func Validate(vector []float64, expectedDim int) (bool, []Issue) {
	var issues []Issue

	if len(vector) != expectedDim {
		issues = append(issues, Issue{
			Kind:    KindDimension,
			Message: fmt.Sprintf("Expected %d dimensions, got %d", expectedDim, len(vector)),
		})
	}

	for i, v := range vector {
		if math.IsNaN(v) {
			issues = append(issues, Issue{
				Kind:    KindNaN,
				Message: fmt.Sprintf("NaN value at index %d", i),
			})
		}
		if math.IsInf(v, 0) {
			issues = append(issues, Issue{
				Kind:    KindInfinite,
				Message: fmt.Sprintf("Infinite value at index %d", i),
			})
		}
	}

	// NaN norms compare false on both bounds and produce no issue, matching
	// the per-index NaN reporting above.
	norm := Norm(vector)
	if norm < NormMin || norm > NormMax {
		issues = append(issues, Issue{
			Kind:    KindNorm,
			Message: fmt.Sprintf("Norm is %.6g, expected ~1.0 (normalized)", norm),
		})
	}

	if len(vector) > 0 {
		min, max := MinMax(vector)
		if min < ValueMin || max > ValueMax {
			issues = append(issues, Issue{
				Kind:    KindRange,
				Message: fmt.Sprintf("Values out of reasonable range: [%.6g, %.6g]", min, max),
			})
		}
	}

	allZero := true
	for _, v := range vector {
		if math.Abs(v) >= ZeroEpsilon {
			allZero = false
			break
		}
	}
	if allZero {
		issues = append(issues, Issue{
			Kind:    KindZero,
			Message: "All values are zero (or very close to zero)",
		})
	}

	return len(issues) == 0, issues
}

// Norm returns the L2 norm of a vector. The empty vector has norm 0.
func Norm(vector []float64) float64 {
	var sum float64
	for _, v := range vector {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// MinMax returns the smallest and largest elements of a vector.
// Returns (0, 0) for an empty vector.
func MinMax(vector []float64) (float64, float64) {
	if len(vector) == 0 {
		return 0, 0
	}
	min, max := vector[0], vector[0]
	for _, v := range vector[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
