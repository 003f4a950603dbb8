// internal/output/types.go

// Package output serializes the final harvested collection. The harvest
// engine hands over the complete ordered sequence once; writers never see a
// partially-populated run.
package output

import (
	"github.com/valeran/harvester/internal/record"
)

// Format identifies an output backend.
type Format string

// Supported output formats.
const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatExcel    Format = "excel"
	FormatDatabase Format = "database"
	FormatMongoDB  Format = "mongodb"
)

// Writer serializes one complete harvest result. Write receives the schema
// header row and the ordered records; record values arrive with the
// placeholder policy already applied by record.Record.Values.
type Writer interface {
	Write(headers []string, records []record.Record) error
	Close() error
}

// Config collects sink settings independent of the configuration package.
type Config struct {
	Format    Format
	File      string
	Delimiter rune
	Encoding  string

	// Database format
	Driver string
	DSN    string
	Table  string

	// MongoDB format
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
}
