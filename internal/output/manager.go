// internal/output/manager.go
package output

import (
	"fmt"

	"github.com/valeran/harvester/internal/config"
	"github.com/valeran/harvester/internal/record"
)

// Manager dispatches the final harvest result to the configured sink.
type Manager struct {
	config *Config
}

// NewManager creates an output manager from the run configuration.
func NewManager(cfg *config.OutputConfig) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("output configuration is required")
	}

	var delimiter rune
	if cfg.Delimiter != "" {
		delimiter = []rune(cfg.Delimiter)[0]
	}

	return &Manager{
		config: &Config{
			Format:          Format(cfg.Format),
			File:            cfg.File,
			Delimiter:       delimiter,
			Encoding:        cfg.Encoding,
			Driver:          cfg.Driver,
			DSN:             cfg.DSN,
			Table:           cfg.Table,
			MongoURI:        cfg.MongoURI,
			MongoDatabase:   cfg.MongoDatabase,
			MongoCollection: cfg.MongoCollection,
		},
	}, nil
}

// GetWriter returns the writer for the configured format.
func (m *Manager) GetWriter() (Writer, error) {
	switch m.config.Format {
	case FormatCSV:
		return NewCSVWriter(m.config.File, m.config.Delimiter, m.config.Encoding)
	case FormatJSON:
		return NewJSONWriter(m.config.File)
	case FormatExcel:
		return NewExcelWriter(m.config.File)
	case FormatDatabase:
		return NewDatabaseWriter(m.config.Driver, m.config.DSN, m.config.Table)
	case FormatMongoDB:
		return NewMongoWriter(m.config.MongoURI, m.config.MongoDatabase, m.config.MongoCollection)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", m.config.Format)
	}
}

// Write serializes the complete harvest result using the configured format.
func (m *Manager) Write(headers []string, records []record.Record) error {
	writer, err := m.GetWriter()
	if err != nil {
		return fmt.Errorf("failed to get writer: %w", err)
	}

	if err := writer.Write(headers, records); err != nil {
		writer.Close()
		return err
	}

	return writer.Close()
}
