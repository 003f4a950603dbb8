// internal/output/excel.go
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/valeran/harvester/internal/record"
)

const excelSheet = "Records"

// ExcelWriter writes the harvest as a single-sheet xlsx workbook.
type ExcelWriter struct {
	filename string
}

// NewExcelWriter creates an Excel writer targeting the given file.
func NewExcelWriter(filename string) (*ExcelWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("excel output requires a file path")
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return &ExcelWriter{filename: filename}, nil
}

// Write builds the workbook with a header row and one row per record, then
// saves it.
func (w *ExcelWriter) Write(headers []string, records []record.Record) error {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(excelSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	file.DeleteSheet("Sheet1")

	if err := w.writeRow(file, 1, headers); err != nil {
		return err
	}

	for i, rec := range records {
		if err := w.writeRow(file, i+2, rec.Values()); err != nil {
			return err
		}
	}

	if err := file.SaveAs(w.filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// writeRow fills one worksheet row starting at column A.
func (w *ExcelWriter) writeRow(file *excelize.File, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := file.SetCellValue(excelSheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

// Close is a no-op; the workbook is saved by Write.
func (w *ExcelWriter) Close() error {
	return nil
}
