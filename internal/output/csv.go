// internal/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/valeran/harvester/internal/record"
)

// CSVWriter writes the harvest as a delimited file with a fixed header row.
type CSVWriter struct {
	writer  *csv.Writer
	closers []io.Closer
}

// NewCSVWriter creates a CSV writer targeting the given file. An empty path
// or "-" writes to stdout. Delimiter zero means comma; encoding names a
// non-UTF-8 text encoding for the emitted bytes.
func NewCSVWriter(filename string, delimiter rune, encoding string) (*CSVWriter, error) {
	var out io.Writer
	var closers []io.Closer

	if filename == "" || filename == "-" {
		out = os.Stdout
	} else {
		if dir := filepath.Dir(filename); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		file, err := os.Create(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to create CSV file: %w", err)
		}
		out = file
		closers = append(closers, file)
	}

	encoded, encCloser, err := newEncodedWriter(out, encoding)
	if err != nil {
		for _, c := range closers {
			c.Close()
		}
		return nil, err
	}
	if encCloser != nil {
		// Prepend so the encoder flushes before the file closes.
		closers = append([]io.Closer{encCloser}, closers...)
	}

	csvWriter := csv.NewWriter(encoded)
	if delimiter != 0 {
		csvWriter.Comma = delimiter
	}

	return &CSVWriter{
		writer:  csvWriter,
		closers: closers,
	}, nil
}

// Write emits the header row followed by one row per record.
func (w *CSVWriter) Write(headers []string, records []record.Record) error {
	if err := w.writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, rec := range records {
		if err := w.writer.Write(rec.Values()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}

	return nil
}

// Close flushes the encoder, if any, and closes the underlying file.
func (w *CSVWriter) Close() error {
	var firstErr error
	for _, c := range w.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
