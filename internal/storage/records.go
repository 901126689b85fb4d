// Package storage reads embedding records from JSON and JSONL files.
package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// MaxLineCapacity is the maximum buffer size for reading JSONL lines
// (1MB per line). A 1024-dimension embedding serializes well below this.
const MaxLineCapacity = 1024 * 1024

// Record pairs a free-text label with its embedding vector. Embedding values
// are decoded from raw JSON numbers to float64 here, at the system boundary;
// the validator never performs type coercion itself.
type Record struct {
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
}

// ReadRecords loads records from path. A document whose first non-space byte
// is '[' is parsed as a single JSON array of records; anything else is
// treated as JSONL, one record per line.
func ReadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parsing records file: %w", err)
		}
		return records, nil
	}

	return readJSONL(data)
}

func readJSONL(data []byte) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(bytes.NewReader(data))

	// Increase buffer size for long lines
	buf := make([]byte, MaxLineCapacity)
	scanner.Buffer(buf, MaxLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	return records, nil
}
