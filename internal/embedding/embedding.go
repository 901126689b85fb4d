// Package embedding provides embedding vector types and deterministic mock
// generation.
package embedding

// Embedding represents a vector embedding of text.
type Embedding struct {
	Vector []float64 // JSON-decoded values kept at full width
}

// Dimensions returns the dimensionality of the embedding.
func (e Embedding) Dimensions() int {
	return len(e.Vector)
}
