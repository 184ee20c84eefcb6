package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "lead-harvester/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// OutputFormat selects the lead file format.
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// HarvestConfig holds settings for a harvest run.
type HarvestConfig struct {
	// Pages is the number of result pages to request, starting at 1 (default 5).
	Pages int `json:"pages" yaml:"pages" mapstructure:"pages"`

	// PerPage is the page size sent with every search (default 100).
	PerPage int `json:"per_page" yaml:"per_page" mapstructure:"per_page"`

	// Output is the destination file (default "chef_leads.csv").
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Format selects the output format: csv, json, or yaml. Empty means
	// infer from the Output extension, falling back to csv.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// StoreConfig holds settings for the optional lead archive.
type StoreConfig struct {
	// DSN is a SQLite file path or a postgres:// URL. Empty disables archiving.
	DSN string `json:"dsn" yaml:"dsn" mapstructure:"dsn"`
}

// Config is the full lead-harvester configuration as read from the config
// file and environment.
type Config struct {
	// APIKey is the static Apollo API key sent as a bearer token.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL is the Apollo API root (default "https://api.apollo.io/v1").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	HTTP    HTTPConfig    `json:"http" yaml:"http" mapstructure:"http"`
	Harvest HarvestConfig `json:"harvest" yaml:"harvest" mapstructure:"harvest"`
	Store   StoreConfig   `json:"store" yaml:"store" mapstructure:"store"`
}
