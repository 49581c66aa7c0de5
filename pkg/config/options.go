package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDumpDir sets the directory containing names.dmp and nodes.dmp.
func OptDumpDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dump Directory", s) {
			c.Dump.Dir = s
		}
	}
}

// OptDumpNamesFile sets the names dump file, relative to the dump
// directory unless the path is absolute.
func OptDumpNamesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Names File", s) {
			c.Dump.NamesFile = s
		}
	}
}

// OptDumpNodesFile sets the nodes dump file, relative to the dump
// directory unless the path is absolute.
func OptDumpNodesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Nodes File", s) {
			c.Dump.NodesFile = s
		}
	}
}

// OptDumpRootID sets the identifier of the root node.
func OptDumpRootID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Root ID", s) {
			c.Dump.RootID = s
		}
	}
}

// OptLineageShort removes hidden nodes from lineages.
// Runtime-only field - not in ToOptions().
func OptLineageShort(b bool) Option {
	return func(c *Config) {
		c.Lineage.Short = b
	}
}

// OptLineageWithCommon requests the last common node of all queries.
// Runtime-only field - not in ToOptions().
func OptLineageWithCommon(b bool) Option {
	return func(c *Config) {
		c.Lineage.WithCommon = b
	}
}

// OptOutputFormat sets the output format.
// Valid values: "text", "html", "csv", "tsv", "compact", "pretty".
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptServerPort sets the port of the web front end.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptServerCacheSize sets how many resolved lineages the web front end
// keeps in memory.
func OptServerCacheSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Cache Size", i) {
			c.Server.CacheSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptWithProgress toggles progress bars during dump loading.
// Runtime-only field - not in ToOptions().
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
