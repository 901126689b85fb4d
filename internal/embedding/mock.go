package embedding

import (
	"context"
	"math"
)

// MockModelName identifies mock-generated embeddings in reports.
const MockModelName = "mock-deterministic"

// MockProvider generates deterministic pseudo-embeddings without a model.
// The same text and dimensions always produce bit-identical vectors, which
// makes it suitable as a fixture source for validation self-tests. The
// vectors carry no semantic content.
type MockProvider struct {
	dimensions int
}

// NewMockProvider creates a mock provider emitting vectors of the given
// dimensionality.
func NewMockProvider(dimensions int) *MockProvider {
	return &MockProvider{dimensions: dimensions}
}

// Embed generates a deterministic embedding for the given text.
func (p *MockProvider) Embed(_ context.Context, text string) (Embedding, error) {
	return Embedding{Vector: MockVector(text, p.dimensions)}, nil
}

// ModelName returns the mock model identifier.
func (p *MockProvider) ModelName() string { return MockModelName }

// Dimensions returns the configured vector dimensions.
func (p *MockProvider) Dimensions() int { return p.dimensions }

var _ Provider = (*MockProvider)(nil)

// MockVector maps text to a reproducible, approximately unit-norm vector.
// No randomness and no time-based state: two calls with the same arguments
// yield bit-identical results. Non-positive dimensions yield an empty
// vector.
func MockVector(text string, dimensions int) []float64 {
	if dimensions <= 0 {
		return []float64{}
	}

	vector := make([]float64, dimensions)

	// Spread character values across the vector; characters that map to the
	// same slot accumulate.
	pos := 0
	for _, r := range text {
		idx := pos % dimensions
		charVal := int(r) % 255
		vector[idx] += float64(charVal) / 255.0 * 0.1
		pos++
	}

	// Add variation from a cheap text hash so distinct texts diverge. This
	// term is nonzero for most indices, so the result is never degenerate.
	textHash := 0
	for _, r := range text {
		textHash += int(r)
	}
	for j := range vector {
		vector[j] += float64((j+textHash)%100) / 1000.0
	}

	normalize(vector)

	return vector
}

// normalize scales a vector to unit L2 length in place.
// A zero vector is left unchanged to avoid division by zero.
func normalize(vector []float64) {
	var sum float64
	for _, v := range vector {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vector {
		vector[i] /= norm
	}
}
