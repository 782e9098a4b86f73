package ioexport

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnuuid"
	"github.com/gnames/wcvp/internal/ioarchive"
	"github.com/gnames/wcvp/internal/iodb"
	"github.com/gnames/wcvp/internal/ioload"
	"github.com/gnames/wcvp/internal/iotesting"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/gnames/wcvp/pkg/errcode"
	"github.com/gnames/wcvp/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(t *testing.T, cfg *config.Config) *dataset.Dataset {
	t.Helper()
	arc, err := ioarchive.Open(iotesting.Archive(t, iotesting.Fixture{}))
	require.NoError(t, err)

	d, err := ioload.New(cfg).FromArchive(context.Background(), arc)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d
}

func quiet(cfg *config.Config) *config.Config {
	cfg.Update([]config.Option{
		config.OptArchiveProgress(false),
		config.OptJobsNumber(2),
	})
	return cfg
}

func TestPgInsertSQL(t *testing.T) {
	res := pgInsertSQL(schema.Release{})
	assert.Equal(t,
		"INSERT INTO wcvp_releases (version, extracted, declared_rows, records, "+
			"duplicate_ids, duplicate_powo_ids, exported_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7)",
		res,
	)
}

func TestNames(t *testing.T) {
	d := testDataset(t, quiet(config.New()))

	var rows []schema.Name
	for n := range names(d) {
		rows = append(rows, n)
	}
	require.Len(t, rows, 3)

	assert.Equal(t, 200, rows[1].PlantNameID)
	require.NotNil(t, rows[1].Canonical)
	assert.Equal(t, "Bellis perennis", *rows[1].Canonical)
	assert.Equal(t, gnuuid.New("Bellis perennis"), rows[1].CanonicalID.UUID)
	assert.Equal(t, gnuuid.New("Bellis perennis L."), rows[1].NameStringID)

	// early exit
	for range names(d) {
		break
	}
}

func TestSQLiteExport(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wcvp.sqlite")
	cfg := quiet(config.New())
	cfg.Update([]config.Option{config.OptExportSQLitePath(path)})
	d := testDataset(t, cfg)

	exp := NewSQLite(cfg)
	require.NoError(t, exp.Export(ctx, d))
	// second export replaces the file
	require.NoError(t, exp.Export(ctx, d))

	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer sqlDB.Close()

	var count int
	err = sqlDB.QueryRow("SELECT count(*) FROM wcvp_names").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var version, records int
	err = sqlDB.QueryRow(
		"SELECT version, records FROM wcvp_releases",
	).Scan(&version, &records)
	require.NoError(t, err)
	assert.Equal(t, 15, version)
	assert.Equal(t, 3, records)

	var canonical, nameID string
	var rank sql.NullString
	err = sqlDB.QueryRow(
		`SELECT canonical, name_string_id, taxon_rank
		   FROM wcvp_names WHERE plant_name_id = 200`,
	).Scan(&canonical, &nameID, &rank)
	require.NoError(t, err)
	assert.Equal(t, "Bellis perennis", canonical)
	assert.Equal(t, gnuuid.New("Bellis perennis L.").String(), nameID)
	assert.Equal(t, "Species", rank.String)

	var synonyms int
	err = sqlDB.QueryRow(
		`SELECT count(*) FROM wcvp_names
		  WHERE accepted_plant_name_id = '200' AND taxon_status = 'Synonym'`,
	).Scan(&synonyms)
	require.NoError(t, err)
	assert.Equal(t, 1, synonyms)
}

func TestSQLiteExport_BadPath(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test")
	}
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "wcvp.sqlite")
	cfg := quiet(config.New())
	cfg.Update([]config.Option{config.OptExportSQLitePath(path)})
	d := testDataset(t, cfg)

	err := NewSQLite(cfg).Export(context.Background(), d)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ExportSQLiteError, gnErr.Code)
}

func TestPostgresExport_NotConnected(t *testing.T) {
	cfg := quiet(config.New())
	d := testDataset(t, cfg)

	err := NewPostgres(cfg, iodb.NewPgxOperator()).Export(context.Background(), d)
	require.Error(t, err)
	assert.Equal(t, errcode.DBNotConnectedError, err.(*gn.Error).Code)
}

func TestPostgresExport(t *testing.T) {
	op, cfg := iotesting.Operator(t)
	ctx := context.Background()
	quiet(cfg)
	cfg.Update([]config.Option{
		config.OptExportBatchSize(2),
		config.OptExportForce(true),
	})
	d := testDataset(t, cfg)

	require.NoError(t, NewPostgres(cfg, op).Export(ctx, d))

	cfg.Update([]config.Option{config.OptExportForce(false)})
	require.NoError(t, NewPostgres(cfg, op).Export(ctx, d), "export replaces rows")

	pool := op.Pool()
	var count int
	err := pool.QueryRow(ctx, "SELECT count(*) FROM wcvp_names").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	err = pool.QueryRow(ctx, "SELECT count(*) FROM wcvp_releases").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var canonical string
	err = pool.QueryRow(ctx,
		"SELECT canonical FROM wcvp_names WHERE plant_name_id = 300",
	).Scan(&canonical)
	require.NoError(t, err)
	assert.Equal(t, "Bellis hortensis", canonical)
}
