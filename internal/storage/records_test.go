package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestReadRecords_JSONArray(t *testing.T) {
	content := `[
  {"text": "warrior", "embedding": [0.6, 0.8]},
  {"text": "character", "embedding": [1.0, 0.0]}
]`
	path := writeFixture(t, "embeddings.json", content)

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ReadRecords() returned %d records, want 2", len(records))
	}

	if records[0].Text != "warrior" {
		t.Errorf("Text = %q, want warrior", records[0].Text)
	}
	if len(records[0].Embedding) != 2 || records[0].Embedding[0] != 0.6 || records[0].Embedding[1] != 0.8 {
		t.Errorf("Embedding = %v, want [0.6 0.8]", records[0].Embedding)
	}
}

func TestReadRecords_JSONArrayLeadingWhitespace(t *testing.T) {
	path := writeFixture(t, "embeddings.json", "\n  \t[{\"text\":\"a\",\"embedding\":[1]}]")

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("ReadRecords() returned %d records, want 1", len(records))
	}
}

func TestReadRecords_JSONL(t *testing.T) {
	content := `{"text":"warrior","embedding":[0.6,0.8]}

{"text":"character","embedding":[1.0,0.0]}
`
	path := writeFixture(t, "embeddings.jsonl", content)

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ReadRecords() returned %d records, want 2 (blank lines skipped)", len(records))
	}
	if records[1].Text != "character" {
		t.Errorf("Text = %q, want character", records[1].Text)
	}
}

func TestReadRecords_MissingFields(t *testing.T) {
	content := `[
  {"text": "no embedding"},
  {"embedding": [0.6, 0.8]},
  {"text": "empty", "embedding": []}
]`
	path := writeFixture(t, "embeddings.json", content)

	records, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("ReadRecords() returned %d records, want 3", len(records))
	}

	if len(records[0].Embedding) != 0 {
		t.Errorf("record 0 embedding = %v, want empty", records[0].Embedding)
	}
	if records[1].Text != "" {
		t.Errorf("record 1 text = %q, want empty", records[1].Text)
	}
	if len(records[2].Embedding) != 0 {
		t.Errorf("record 2 embedding = %v, want empty", records[2].Embedding)
	}
}

func TestReadRecords_NonExistentFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("ReadRecords() expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadRecords() error = %v, want wrapped not-exist", err)
	}
}

func TestReadRecords_MalformedJSON(t *testing.T) {
	path := writeFixture(t, "embeddings.json", `[{"text": "broken"`)

	_, err := ReadRecords(path)
	if err == nil {
		t.Fatal("ReadRecords() expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("error = %v, want parsing error", err)
	}
}

func TestReadRecords_MalformedJSONLLine(t *testing.T) {
	content := `{"text":"ok","embedding":[1]}
{broken}
`
	path := writeFixture(t, "embeddings.jsonl", content)

	_, err := ReadRecords(path)
	if err == nil {
		t.Fatal("ReadRecords() expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want line 2 parse error", err)
	}
}
