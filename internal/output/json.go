// internal/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/valeran/harvester/internal/record"
)

// JSONWriter writes the harvest as a JSON array of flat objects.
type JSONWriter struct {
	out    io.Writer
	closer io.Closer
}

// NewJSONWriter creates a JSON writer targeting the given file. An empty
// path or "-" writes to stdout.
func NewJSONWriter(filename string) (*JSONWriter, error) {
	if filename == "" || filename == "-" {
		return &JSONWriter{out: os.Stdout}, nil
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create JSON file: %w", err)
	}

	return &JSONWriter{out: file, closer: file}, nil
}

// Write emits one object per record, keyed by the schema headers.
func (w *JSONWriter) Write(headers []string, records []record.Record) error {
	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		values := rec.Values()
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			}
		}
		rows = append(rows, row)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if _, err := w.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	return nil
}

// Close closes the underlying file, if any.
func (w *JSONWriter) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
