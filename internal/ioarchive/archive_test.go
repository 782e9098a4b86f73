package ioarchive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/internal/iotesting"
	"github.com/gnames/wcvp/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func code(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	return gnErr.Code
}

// TestOpen_ReadEntries verifies both WCVP entries are readable.
func TestOpen_ReadEntries(t *testing.T) {
	data := iotesting.Archive(t, iotesting.Fixture{})

	arc, err := Open(data)
	require.NoError(t, err)
	assert.Equal(t, len(data), arc.Size())
	assert.ElementsMatch(t,
		[]string{MetadataEntry, NamesEntry}, arc.Entries())

	names, err := arc.ReadEntry(NamesEntry)
	require.NoError(t, err)
	assert.Equal(t, iotesting.DefaultNames(), string(names))

	readme, err := arc.ReadEntry(MetadataEntry)
	require.NoError(t, err)
	assert.NotEmpty(t, readme)
}

// TestOpen_Invalid verifies garbage bytes are rejected.
func TestOpen_Invalid(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not a zip")} {
		arc, err := Open(data)
		assert.Nil(t, arc)
		require.Error(t, err)
		assert.Equal(t, errcode.ArchiveError, code(t, err))
	}
}

// TestReadEntry_Missing verifies absent entries are archive errors.
func TestReadEntry_Missing(t *testing.T) {
	data := iotesting.Archive(t, iotesting.Fixture{
		Omit: []string{NamesEntry},
	})
	arc, err := Open(data)
	require.NoError(t, err)

	_, err = arc.ReadEntry(NamesEntry)
	require.Error(t, err)
	assert.Equal(t, errcode.ArchiveError, code(t, err))
	assert.Equal(t, []any{NamesEntry}, err.(*gn.Error).Vars)
}

// TestFromFile reads an archive from disk.
func TestFromFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	ctx := context.Background()
	path := iotesting.WriteArchive(t, iotesting.Archive(t, iotesting.Fixture{}))

	arc, err := FromFile(ctx, path)
	require.NoError(t, err)
	assert.Len(t, arc.Entries(), 2)

	_, err = FromFile(ctx, filepath.Join(t.TempDir(), "none.zip"))
	require.Error(t, err)
	assert.Equal(t, errcode.ReadFileError, code(t, err))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = FromFile(cancelled, path)
	require.Error(t, err)
	assert.Equal(t, errcode.ReadFileError, code(t, err))
	assert.ErrorIs(t, err.(*gn.Error).Err, context.Canceled)
}

// TestFromURL downloads an archive and keeps it in cache.
func TestFromURL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	data := iotesting.Archive(t, iotesting.Fixture{})
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write(data)
		}))
	defer srv.Close()

	ctx := context.Background()
	cache := filepath.Join(t.TempDir(), "cache", "wcvp.zip")

	arc, err := FromURL(ctx, srv.URL, OptCachePath(cache))
	require.NoError(t, err)
	assert.Equal(t, len(data), arc.Size())
	assert.Equal(t, int32(1), hits.Load())

	saved, err := os.ReadFile(cache)
	require.NoError(t, err)
	assert.Equal(t, data, saved)

	_, err = FromURL(ctx, srv.URL, OptCachePath(cache))
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "second call uses cache")

	_, err = FromURL(ctx, srv.URL, OptCachePath(cache), OptRefresh(true))
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

// TestFromURL_Errors verifies transport failures are network errors.
func TestFromURL_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/slow" {
				time.Sleep(200 * time.Millisecond)
			}
			http.NotFound(w, r)
		}))
	defer srv.Close()

	ctx := context.Background()

	_, err := FromURL(ctx, srv.URL+"/wcvp.zip")
	require.Error(t, err)
	assert.Equal(t, errcode.NetworkError, code(t, err))
	assert.Equal(t, []any{http.StatusNotFound, srv.URL + "/wcvp.zip"},
		err.(*gn.Error).Vars)

	_, err = FromURL(ctx, srv.URL+"/slow", OptTimeout(20*time.Millisecond))
	require.Error(t, err)
	assert.Equal(t, errcode.NetworkError, code(t, err))
	assert.ErrorIs(t, err.(*gn.Error).Err, context.DeadlineExceeded)

	_, err = FromURL(ctx, "http://[::1]:namedport")
	require.Error(t, err)
	assert.Equal(t, errcode.NetworkError, code(t, err))
}
