// internal/config/config.go
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultUserAgent masquerades as a desktop browser; some catalog sites
// reject obvious bot identifiers.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(filename string) (*HarvestConfig, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration filename cannot be empty")
	}

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %v", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes loads configuration from YAML bytes.
func LoadFromBytes(data []byte) (*HarvestConfig, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("configuration data cannot be empty")
	}

	// Substitute environment variables
	expanded := os.ExpandEnv(string(data))

	var config HarvestConfig
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %v", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	return &config, nil
}

// LoadFromReader loads configuration from an io.Reader.
func LoadFromReader(reader io.Reader) (*HarvestConfig, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader cannot be nil")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read from reader: %v", err)
	}

	return LoadFromBytes(data)
}

// applyDefaults applies default values to the configuration.
func applyDefaults(config *HarvestConfig) {
	if config.Concurrency == 0 {
		config.Concurrency = 4
	}

	if config.Headers == nil {
		config.Headers = map[string]string{}
	}
	if _, ok := config.Headers["User-Agent"]; !ok {
		config.Headers["User-Agent"] = defaultUserAgent
	}

	if config.Output.Format == "" {
		config.Output.Format = "csv"
	}
	if config.Output.Delimiter == "" {
		config.Output.Delimiter = ","
	}

	if config.Metrics.Enabled && config.Metrics.Addr == "" {
		config.Metrics.Addr = ":9090"
	}
}

// Validate checks the configuration for consistency.
func (c *HarvestConfig) Validate() error {
	switch c.Mode {
	case ModeCatalog:
		if len(c.Catalog.URLs) == 0 {
			return fmt.Errorf("catalog mode requires at least one URL")
		}
	case ModeDirectory:
		if c.Directory.BaseURL == "" {
			return fmt.Errorf("directory mode requires base_url")
		}
		if c.Directory.PageSize <= 0 {
			return fmt.Errorf("page_size must be greater than 0, got %d", c.Directory.PageSize)
		}
		if c.Directory.StartPage < 0 {
			return fmt.Errorf("start_page cannot be negative, got %d", c.Directory.StartPage)
		}
	case "":
		return fmt.Errorf("mode is required")
	default:
		return fmt.Errorf("unsupported mode: %s", c.Mode)
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency cannot be negative, got %d", c.Concurrency)
	}

	return c.validateOutput()
}

// validateOutput checks sink-specific settings.
func (c *HarvestConfig) validateOutput() error {
	switch c.Output.Format {
	case "csv", "json":
		// File may be empty (stdout)
	case "excel":
		if c.Output.File == "" {
			return fmt.Errorf("excel output requires a file")
		}
	case "database":
		if c.Output.Driver == "" || c.Output.DSN == "" || c.Output.Table == "" {
			return fmt.Errorf("database output requires driver, dsn and table")
		}
		switch c.Output.Driver {
		case "sqlite3", "postgres", "mysql":
		default:
			return fmt.Errorf("unsupported database driver: %s", c.Output.Driver)
		}
	case "mongodb":
		if c.Output.MongoURI == "" || c.Output.MongoDatabase == "" || c.Output.MongoCollection == "" {
			return fmt.Errorf("mongodb output requires mongo_uri, mongo_database and mongo_collection")
		}
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}

	if len(c.Output.Delimiter) > 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Output.Delimiter)
	}

	return nil
}
