package iofs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/gnames/wcvp/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs verifies all directories are created and repeated calls
// succeed.
func TestEnsureDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	tmpDir := t.TempDir()

	for range 2 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "wcvp"),
		filepath.Join(tmpDir, ".cache", "wcvp"),
		filepath.Join(tmpDir, ".local", "share", "wcvp", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
	}
}

// TestEnsureDirs_FileInTheWay verifies the error when a file blocks a
// directory.
func TestEnsureDirs_FileInTheWay(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, ".config"), nil, 0644)
	require.NoError(t, err)

	err = EnsureDirs(tmpDir)
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
}

// TestEnsureConfigFile verifies the template is written once and an
// edited config survives.
func TestEnsureConfigFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	require.NoError(t, EnsureConfigFile(tmpDir))
	path := config.ConfigFilePath(tmpDir)
	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(bs))

	edited := []byte("server:\n  port: 9000\n")
	require.NoError(t, os.WriteFile(path, edited, 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	bs, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, edited, bs)
}

// TestConfigYAMLDefaults verifies the template matches default values.
func TestConfigYAMLDefaults(t *testing.T) {
	cfg := config.New()
	var res config.Config
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &res))

	assert.Equal(t, cfg.Archive.URL, res.Archive.URL)
	assert.Equal(t, cfg.Archive.Timeout, res.Archive.Timeout)
	assert.Equal(t, cfg.Archive.UseCache, res.Archive.UseCache)
	assert.Equal(t, cfg.Database, res.Database)
	assert.Equal(t, cfg.Export.BatchSize, res.Export.BatchSize)
	assert.Equal(t, cfg.Export.SQLitePath, res.Export.SQLitePath)
	assert.Equal(t, cfg.Server, res.Server)
	assert.Equal(t, cfg.Log, res.Log)
}

// TestClearCache verifies the cached archive is removed.
func TestClearCache(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	require.NoError(t, ClearCache(tmpDir), "missing cache is fine")

	path := config.ArchiveCachePath(tmpDir)
	require.NoError(t, os.WriteFile(path, []byte("zip"), 0644))
	require.NoError(t, ClearCache(tmpDir))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestErrors(t *testing.T) {
	orig := errors.New("permission denied")
	tests := []struct {
		err  error
		code gn.ErrorCode
	}{
		{CreateDirError("/a", orig), errcode.CreateDirError},
		{CopyFileError("/b", orig), errcode.CopyFileError},
		{RemoveFileError("/c", orig), errcode.RemoveFileError},
		{ReadFileError("/d", orig), errcode.ReadFileError},
	}
	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, v.code, gnErr.Code)
		assert.ErrorIs(t, gnErr.Err, orig)
	}
}
