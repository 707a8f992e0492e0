package config

import (
	"os"
	"path/filepath"
	"testing"

	"codegap/feature/codegap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "../data/country_region_mapping.csv", cfg.CodeGap.ReferencePath)
	assert.Equal(t, "../data/CITIES_data.csv", cfg.CodeGap.RecordsPath)
	assert.Equal(t, codegap.ReferenceFile, cfg.CodeGap.Reference)
	assert.Equal(t, codegap.DefaultLayout(), cfg.CodeGap.Columns)
	assert.Equal(t, 300, cfg.CodeGap.CacheTTLSeconds)
	assert.Equal(t, "local", cfg.Data.Source)
	assert.Equal(t, "trade-data", cfg.Storage.Bucket)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("CODEGAP_RECORDS_PATH", "/srv/trade.csv")
	t.Setenv("CODEGAP_COLUMNS_IMPORTER", "3")
	t.Setenv("CODEGAP_COLUMNS_ORIGIN_NAME", "Origin")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/srv/trade.csv", cfg.CodeGap.RecordsPath)
	assert.Equal(t, 3, cfg.CodeGap.Columns.Importer)
	assert.Equal(t, "Origin", cfg.CodeGap.Columns.OriginName)
	assert.Equal(t, 8, cfg.CodeGap.Columns.Exporter)
	assert.True(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "CODEGAP_REFERENCE=database\nDATABASE_NAME=cites\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))

	// godotenv writes into the process environment; restore it afterwards.
	t.Setenv("CODEGAP_REFERENCE", "")
	t.Setenv("DATABASE_NAME", "")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, codegap.ReferenceDatabase, cfg.CodeGap.Reference)
	assert.Equal(t, "cites", cfg.Database.Name)
}
