// internal/output/json_test.go
package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/valeran/harvester/internal/record"
)

func TestJSONWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	writer, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}

	records := []record.Record{
		record.CatalogItem{ID: "p1", URL: "https://x/1", Image: "", Name: "One", Price: "$1"},
	}
	if err := writer.Write(record.CatalogItem{}.Headers(), records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var rows []map[string]string
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0]["name"] != "One" {
		t.Errorf("Expected name 'One', got %q", rows[0]["name"])
	}
	if rows[0]["image"] != record.Placeholder {
		t.Errorf("Expected placeholder for empty image, got %q", rows[0]["image"])
	}
}

func TestJSONWriter_EmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	writer, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}
	if err := writer.Write(record.CatalogItem{}.Headers(), nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	writer.Close()

	data, _ := os.ReadFile(path)
	var rows []map[string]string
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("Expected empty array, got %d rows", len(rows))
	}
}
