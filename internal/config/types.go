// internal/config/types.go

// Package config provides configuration types and loading for harvester.
// It defines the settings for a harvest run: the source mode, page
// descriptors or API parameters, request headers, concurrency and the
// output sink.
package config

// Mode selects which harvest pipeline a run executes.
const (
	ModeCatalog   = "catalog"
	ModeDirectory = "directory"
)

// HarvestConfig is the root configuration for one harvest run.
type HarvestConfig struct {
	// Name identifies this configuration
	Name string `yaml:"name" json:"name"`

	// Description provides human-readable information about this config
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Mode selects the pipeline: "catalog" or "directory"
	Mode string `yaml:"mode" json:"mode"`

	// Headers sent with every request
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`

	// Concurrency is the catalog-mode worker pool size
	Concurrency int `yaml:"concurrency,omitempty" json:"concurrency,omitempty"`

	// Catalog settings, used when Mode is "catalog"
	Catalog CatalogConfig `yaml:"catalog,omitempty" json:"catalog,omitempty"`

	// Directory settings, used when Mode is "directory"
	Directory DirectoryConfig `yaml:"directory,omitempty" json:"directory,omitempty"`

	// Output configuration
	Output OutputConfig `yaml:"output" json:"output"`

	// Metrics configuration
	Metrics MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty"`
}

// CatalogConfig defines a catalog-mode harvest.
type CatalogConfig struct {
	// URLs is the fixed set of listing pages to visit
	URLs []string `yaml:"urls" json:"urls"`

	// ItemSelector overrides the CSS selector for item nodes
	ItemSelector string `yaml:"item_selector,omitempty" json:"item_selector,omitempty"`
}

// DirectoryConfig defines a directory-mode harvest.
type DirectoryConfig struct {
	// BaseURL is the base domain of the discovery API
	BaseURL string `yaml:"base_url" json:"base_url"`

	// PageSize is the number of entities requested per listing page
	PageSize int `yaml:"page_size" json:"page_size"`

	// StartPage is the page index the offset cursor starts at
	StartPage int `yaml:"start_page,omitempty" json:"start_page,omitempty"`
}

// OutputConfig defines where and how the harvested records are written.
type OutputConfig struct {
	// Format of the output (csv, json, excel, database, mongodb)
	Format string `yaml:"format" json:"format"`

	// File path for file-based formats; "-" writes to stdout
	File string `yaml:"file,omitempty" json:"file,omitempty"`

	// Delimiter for delimited formats
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`

	// Encoding for text output (e.g. "latin1"); defaults to UTF-8
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`

	// Driver for the database format (sqlite3, postgres, mysql)
	Driver string `yaml:"driver,omitempty" json:"driver,omitempty"`

	// DSN is the database connection string
	DSN string `yaml:"dsn,omitempty" json:"dsn,omitempty"`

	// Table receives the records for the database format
	Table string `yaml:"table,omitempty" json:"table,omitempty"`

	// MongoURI is the connection string for the mongodb format
	MongoURI string `yaml:"mongo_uri,omitempty" json:"mongo_uri,omitempty"`

	// MongoDatabase holds the target collection
	MongoDatabase string `yaml:"mongo_database,omitempty" json:"mongo_database,omitempty"`

	// MongoCollection receives the records
	MongoCollection string `yaml:"mongo_collection,omitempty" json:"mongo_collection,omitempty"`
}

// MetricsConfig defines the optional monitoring endpoint.
type MetricsConfig struct {
	// Enabled turns the endpoint on
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Addr is the listen address (default ":9090")
	Addr string `yaml:"addr,omitempty" json:"addr,omitempty"`
}
