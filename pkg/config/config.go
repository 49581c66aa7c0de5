// Package config provides configuration management for GNlineage.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Dump: dir, names_file, nodes_file, root_id
//   - Output: format
//   - Server: port, cache_size
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Lineage.Short, Lineage.WithCommon (per-invocation)
//   - WithProgress
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNLINEAGE_ prefix with underscores for nesting:
//
//	GNLINEAGE_DUMP_DIR=/data/taxdump
//	GNLINEAGE_OUTPUT_FORMAT=tsv
//	GNLINEAGE_SERVER_PORT=8080
//	GNLINEAGE_LOG_LEVEL=info
package config

import (
	"path/filepath"
)

// Config represents the complete GNlineage configuration.
type Config struct {
	// Dump contains locations of NCBI taxonomy dump files.
	Dump DumpConfig `mapstructure:"dump" yaml:"dump"`

	// Lineage contains per-invocation settings of lineage resolution.
	Lineage LineageConfig `mapstructure:"lineage" yaml:"lineage"`

	// Output contains settings for rendering results.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Server contains settings of the web front end.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// WithProgress shows progress bars while dump files are loaded.
	WithProgress bool

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DumpConfig points to names.dmp and nodes.dmp files.
type DumpConfig struct {
	// Dir is the directory that contains dump files.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// NamesFile is the file with name records. Relative paths are
	// resolved against Dir.
	NamesFile string `mapstructure:"names_file" yaml:"names_file"`

	// NodesFile is the file with node records. Relative paths are
	// resolved against Dir.
	NodesFile string `mapstructure:"nodes_file" yaml:"nodes_file"`

	// RootID is the identifier of the self-parented root node.
	RootID string `mapstructure:"root_id" yaml:"root_id"`
}

// LineageConfig contains runtime settings of lineage resolution.
type LineageConfig struct {
	// Short removes nodes flagged as hidden from lineages.
	Short bool `mapstructure:"short" yaml:"short"`

	// WithCommon requests the last common node of all queries.
	WithCommon bool `mapstructure:"with_common" yaml:"with_common"`
}

// OutputConfig contains settings of result rendering.
type OutputConfig struct {
	// Format can be 'text', 'html', 'csv', 'tsv', 'compact' or 'pretty'.
	Format string `mapstructure:"format" yaml:"format"`
}

// ServerConfig contains settings of the web front end.
type ServerConfig struct {
	// Port is the TCP port the server listens on.
	Port int `mapstructure:"port" yaml:"port"`

	// CacheSize is the number of resolved lineages kept in memory.
	CacheSize int `mapstructure:"cache_size" yaml:"cache_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Dump: DumpConfig{
			Dir:       ".",
			NamesFile: "names.dmp",
			NodesFile: "nodes.dmp",
			RootID:    "1",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Port:      8080,
			CacheSize: 10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		WithProgress: true,
	}

	return res
}

// NamesPath returns the path to the names dump file.
func (d DumpConfig) NamesPath() string {
	return dumpPath(d.Dir, d.NamesFile)
}

// NodesPath returns the path to the nodes dump file.
func (d DumpConfig) NodesPath() string {
	return dumpPath(d.Dir, d.NodesFile)
}

func dumpPath(dir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
