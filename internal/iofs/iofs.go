// Package iofs prepares the directories and files the toolkit keeps in the
// home directory.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/wcvp/pkg/config"
)

// ConfigYAML is the documented config file created on the first run.
//
//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, cache and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes ConfigYAML unless the config file exists.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}

// ClearCache removes the cached archive. A missing cache is not an error.
func ClearCache(homeDir string) error {
	path := config.ArchiveCachePath(homeDir)
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return RemoveFileError(path, err)
	}
	return nil
}
