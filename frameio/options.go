// Package frameio reads and writes frames: delimited text, JSON documents,
// HTML tables, pickled (gob) binaries and go-gota DataFrames. Local paths
// and http(s) URLs are both accepted as sources.
package frameio

import (
	"net/http"

	"github.com/go-logr/logr"
)

// DefaultNAValues are the tokens read as the null marker unless overridden.
func DefaultNAValues() []string { return []string{"", "NA", "NULL", "NaN"} }

// Config holds the reader settings. It is built from Options on every call;
// there is no package-level default to mutate.
type Config struct {
	Delimiter        rune
	HasHeader        bool
	Names            []string
	NAValues         []string
	ColumnNAValues   map[string][]string
	IndexColumn      string
	TrimLeadingSpace bool
	Logger           logr.Logger
	Client           *http.Client
}

type Option func(*Config)

func newConfig(opts []Option) *Config {
	cfg := &Config{
		Delimiter: ',',
		HasHeader: true,
		NAValues:  DefaultNAValues(),
		Logger:    logr.Discard(),
		Client:    http.DefaultClient,
	}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

func WithDelimiter(d rune) Option {
	return func(c *Config) { c.Delimiter = d }
}

func WithHeader(hasHeader bool) Option {
	return func(c *Config) { c.HasHeader = hasHeader }
}

// WithNames sets the column names. The input is then taken to have no
// header row; add WithHeader(true) to skip one anyway.
func WithNames(names ...string) Option {
	return func(c *Config) {
		c.Names = names
		c.HasHeader = false
	}
}

// WithNAValues replaces the sentinel set.
func WithNAValues(values ...string) Option {
	return func(c *Config) { c.NAValues = values }
}

// WithColumnNAValues adds sentinels that apply to one column only, on top
// of the global set.
func WithColumnNAValues(values map[string][]string) Option {
	return func(c *Config) { c.ColumnNAValues = values }
}

// WithIndexColumn uses the named column as the row index.
func WithIndexColumn(name string) Option {
	return func(c *Config) { c.IndexColumn = name }
}

func WithTrimLeadingSpace() Option {
	return func(c *Config) { c.TrimLeadingSpace = true }
}

func WithLogger(l logr.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func WithHTTPClient(cl *http.Client) Option {
	return func(c *Config) { c.Client = cl }
}
