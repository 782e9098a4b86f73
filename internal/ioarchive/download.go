package ioarchive

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
)

type fetcher struct {
	timeout   time.Duration
	progress  bool
	cachePath string
	refresh   bool
}

// Option changes how FromURL gets the archive.
type Option func(*fetcher)

// OptTimeout limits the whole download. Zero means no limit.
func OptTimeout(d time.Duration) Option {
	return func(f *fetcher) {
		f.timeout = d
	}
}

// OptProgress shows a progress bar on STDERR during download.
func OptProgress(b bool) Option {
	return func(f *fetcher) {
		f.progress = b
	}
}

// OptCachePath sets a file where the downloaded archive is kept. If the
// file already exists it is used instead of the network.
func OptCachePath(path string) Option {
	return func(f *fetcher) {
		f.cachePath = path
	}
}

// OptRefresh ignores an existing cached archive and downloads a new one.
func OptRefresh(b bool) Option {
	return func(f *fetcher) {
		f.refresh = b
	}
}

// FromURL downloads and opens an archive.
func FromURL(
	ctx context.Context,
	url string,
	opts ...Option,
) (*Archive, error) {
	data, err := Download(ctx, url, opts...)
	if err != nil {
		return nil, err
	}
	return Open(data)
}

// Download returns the raw bytes of the archive at url, using the cache
// when it is configured.
func Download(
	ctx context.Context,
	url string,
	opts ...Option,
) ([]byte, error) {
	var f fetcher
	for _, opt := range opts {
		opt(&f)
	}

	if f.cachePath != "" && !f.refresh {
		data, err := os.ReadFile(f.cachePath)
		if err == nil {
			slog.Info("Using cached WCVP archive", "path", f.cachePath)
			return data, nil
		}
		if !os.IsNotExist(err) {
			slog.Warn("Cannot read cached archive", "path", f.cachePath, "error", err)
		}
	}

	data, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}

	if f.cachePath != "" {
		if err = saveCache(f.cachePath, data); err != nil {
			return nil, err
		}
		slog.Info("Saved WCVP archive", "path", f.cachePath)
	}
	return data, nil
}

func (f fetcher) get(ctx context.Context, url string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NetworkError(url, err)
	}

	start := time.Now()
	slog.Info("Downloading WCVP archive", "url", url)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, NetworkError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, StatusError(url, resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if f.progress && resp.ContentLength > 0 {
		bar := pb.Full.Start64(resp.ContentLength)
		bar.Set("prefix", "Downloading WCVP ")
		bar.Set(pb.Bytes, true)
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
		body = bar.NewProxyReader(resp.Body)
	}

	res, err := io.ReadAll(body)
	if err != nil {
		return nil, NetworkError(url, err)
	}

	slog.Info("Downloaded WCVP archive",
		"bytes", len(res),
		"duration", time.Since(start).String(),
	)
	if f.progress {
		gn.Info("Downloaded <em>%s</em>", humanize.Bytes(uint64(len(res))))
	}
	return res, nil
}

func saveCache(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CacheWriteError(path, err)
	}

	tmp, err := os.CreateTemp(dir, ".wcvp-*.zip")
	if err != nil {
		return CacheWriteError(path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return CacheWriteError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return CacheWriteError(path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return CacheWriteError(path, err)
	}
	return nil
}
