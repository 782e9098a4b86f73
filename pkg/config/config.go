// Package config provides configuration management for the WCVP toolkit.
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
//   - Archive: url, timeout, use_cache, progress
//   - Database: host, port, user, password, database, ssl_mode
//   - Export: batch_size, sqlite_path
//   - Server: port
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Archive.Refresh, Archive.Path (per-command)
//   - Export.Force (export command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use WCVP_ prefix with underscores for nesting:
//
//	WCVP_ARCHIVE_URL=https://example.org/wcvp.zip
//	WCVP_DATABASE_HOST=localhost
//	WCVP_LOG_LEVEL=info
//	WCVP_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete WCVP toolkit configuration.
type Config struct {
	// Archive describes where and how to get the WCVP release.
	Archive ArchiveConfig `mapstructure:"archive" yaml:"archive"`

	// Database contains PostgreSQL connection settings used by export.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Export contains settings for writing a dataset to a database.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	// Server contains settings of the HTTP API.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ArchiveConfig describes the source of the WCVP zip archive.
type ArchiveConfig struct {
	// URL of the WCVP release archive.
	URL string `mapstructure:"url" yaml:"url"`

	// Timeout limits the download in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// UseCache keeps a downloaded archive in the cache directory and reuses
	// it on later runs.
	UseCache bool `mapstructure:"use_cache" yaml:"use_cache"`

	// Progress shows a progress bar during download.
	Progress bool `mapstructure:"progress" yaml:"progress"`

	// Path points to a local archive. When set, the network is not used.
	// Runtime-only field.
	Path string `mapstructure:"-" yaml:"-"`

	// Refresh forces a new download even if a cached archive exists.
	// Runtime-only field.
	Refresh bool `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// ExportConfig contains settings of the export command.
type ExportConfig struct {
	// BatchSize is the number of names written per batch.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// SQLitePath is the file created by SQLite export.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	// Force recreates PostgreSQL tables instead of migrating them.
	// Runtime-only field.
	Force bool `mapstructure:"-" yaml:"-"`
}

// ServerConfig contains settings of the HTTP API.
type ServerConfig struct {
	// Port the API listens on.
	Port int `mapstructure:"port" yaml:"port"`
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
		Archive: ArchiveConfig{
			URL:      DefaultArchiveURL,
			Timeout:  600,
			UseCache: true,
			Progress: true,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "wcvp",
			SSLMode:  "disable",
		},
		Export: ExportConfig{
			BatchSize:  50_000,
			SQLitePath: "wcvp.sqlite",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
