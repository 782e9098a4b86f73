package config

import (
	"path/filepath"
)

const (
	// DefaultArchiveURL is the location of the latest WCVP release at Kew.
	DefaultArchiveURL = "https://sftp.kew.org/pub/data-repositories/WCVP/wcvp.zip"
)

var (
	// AppName is used in generating file system paths.
	AppName = "wcvp"

	// ArchiveFile is the name of the cached archive.
	ArchiveFile = "wcvp.zip"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/wcvp by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/wcvp by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/wcvp/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/wcvp/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ArchiveCachePath returns the location of the cached WCVP archive.
// Returns ~/.cache/wcvp/wcvp.zip by default.
func ArchiveCachePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), ArchiveFile)
}
