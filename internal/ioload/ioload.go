// Package ioload builds a Dataset from a WCVP archive.
//
// Metadata extraction and record parsing run concurrently. Both have to
// succeed, otherwise no Dataset is returned.
package ioload

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wcvp/internal/ioarchive"
	"github.com/gnames/wcvp/internal/iometadata"
	"github.com/gnames/wcvp/internal/iorecords"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/gnames/wcvp/pkg/metadata"
	"golang.org/x/sync/errgroup"
)

// Loader reads WCVP archives according to configuration.
type Loader struct {
	cfg *config.Config
}

// New creates a Loader.
func New(cfg *config.Config) *Loader {
	return &Loader{cfg: cfg}
}

// Load uses Archive.Path when it is set and the network otherwise.
func (l *Loader) Load(ctx context.Context) (*dataset.Dataset, error) {
	if l.cfg.Archive.Path != "" {
		return l.FromFile(ctx, l.cfg.Archive.Path)
	}
	return l.FromNetwork(ctx)
}

// FromFile loads a dataset from a local archive.
func (l *Loader) FromFile(
	ctx context.Context,
	path string,
) (*dataset.Dataset, error) {
	arc, err := ioarchive.FromFile(ctx, path)
	if err != nil {
		return nil, cancelled(ctx, err)
	}
	return l.FromArchive(ctx, arc)
}

// FromNetwork downloads the archive from Archive.URL and loads a dataset.
func (l *Loader) FromNetwork(ctx context.Context) (*dataset.Dataset, error) {
	arc, err := ioarchive.FromURL(ctx, l.cfg.Archive.URL, l.fetchOptions()...)
	if err != nil {
		return nil, cancelled(ctx, err)
	}
	return l.FromArchive(ctx, arc)
}

// Fetch downloads the archive into the cache without loading it. It
// returns the path of the cached file.
func (l *Loader) Fetch(ctx context.Context) (string, error) {
	path := config.ArchiveCachePath(l.cfg.HomeDir)
	opts := append(l.fetchOptions(),
		ioarchive.OptCachePath(path),
		ioarchive.OptRefresh(l.cfg.Archive.Refresh),
	)
	data, err := ioarchive.Download(ctx, l.cfg.Archive.URL, opts...)
	if err != nil {
		return "", err
	}
	if _, err = ioarchive.Open(data); err != nil {
		return "", err
	}
	return path, nil
}

// FromArchive extracts metadata and records from an opened archive.
func (l *Loader) FromArchive(
	ctx context.Context,
	arc *ioarchive.Archive,
) (*dataset.Dataset, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, LoadCancelledError(0, err)
	}

	var meta metadata.Metadata
	var ix *dataset.Index

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data, err := arc.ReadEntry(ioarchive.MetadataEntry)
		if err != nil {
			return err
		}
		meta, err = iometadata.Read(data)
		return err
	})

	g.Go(func() error {
		data, err := arc.ReadEntry(ioarchive.NamesEntry)
		if err != nil {
			return err
		}
		ix, err = dataset.BuildIndex(cancellable(gctx, iorecords.Parse(data)))
		return err
	})

	if err := g.Wait(); err != nil {
		err = cancelled(ctx, err)
		slog.Error("Cannot load WCVP archive", "error", err)
		return nil, err
	}

	res := dataset.New(meta, ix, dataset.OptJobsNumber(l.cfg.JobsNumber))
	l.report(res, time.Since(start))
	return res, nil
}

func (l *Loader) fetchOptions() []ioarchive.Option {
	res := []ioarchive.Option{
		ioarchive.OptTimeout(time.Duration(l.cfg.Archive.Timeout) * time.Second),
		ioarchive.OptProgress(l.cfg.Archive.Progress),
	}
	if l.cfg.Archive.UseCache && l.cfg.HomeDir != "" {
		res = append(res,
			ioarchive.OptCachePath(config.ArchiveCachePath(l.cfg.HomeDir)),
			ioarchive.OptRefresh(l.cfg.Archive.Refresh),
		)
	}
	return res
}

func (l *Loader) report(d *dataset.Dataset, dur time.Duration) {
	meta := d.Metadata()
	slog.Info("Loaded WCVP dataset",
		"version", meta.Version.Number(),
		"extracted", meta.Extracted.Format(time.DateOnly),
		"records", d.Len(),
		"duration", dur.String(),
	)

	dups := d.Duplicates()
	if dups.IDs > 0 || dups.PowoIDs > 0 {
		slog.Warn("Duplicate keys were overwritten",
			"plant_name_id", dups.IDs,
			"powo_id", dups.PowoIDs,
		)
	}
	if err := d.Verify(); err != nil {
		slog.Warn("Row count does not match README",
			"rows", meta.Rows,
			"records", d.Len(),
		)
	}

	if l.cfg.Archive.Progress {
		gn.Info("Loaded <em>%s</em> names of WCVP %s in %s",
			humanize.Comma(int64(d.Len())),
			meta.Version,
			gnfmt.TimeString(dur.Seconds()),
		)
	}
}
