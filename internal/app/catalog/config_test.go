package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "retail-catalog", cfg.App.Name)
	require.Equal(t, "rub", cfg.Catalog.Currency)
	require.True(t, cfg.Catalog.ConfirmPriceDecrease)
	require.Empty(t, cfg.Catalog.SeedPath)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, "none", cfg.Telemetry.Exporter)
}

func TestLoadConfig_File(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	require.Equal(t, "catalog-test", cfg.App.Name)
	require.Equal(t, "usd", cfg.Catalog.Currency)
	require.False(t, cfg.Catalog.ConfirmPriceDecrease)
	require.Equal(t, "seed.yaml", cfg.Catalog.SeedPath)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "none", cfg.Telemetry.Exporter)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_CATALOG_CURRENCY", "eur")
	t.Setenv("CATALOG_LOG_LEVEL", "warn")
	t.Setenv("CATALOG_TELEMETRY_EXPORTER", "stdout")

	cfg, err := LoadConfig(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	require.Equal(t, "eur", cfg.Catalog.Currency)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "stdout", cfg.Telemetry.Exporter)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("telemetry:\n  exporter: zipkin\n"), 0o600))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "telemetry.exporter")

	t.Setenv("CATALOG_LOG_FORMAT", "xml")
	_, err = LoadConfig(filepath.Join("testdata", "catalog.yaml"))
	require.ErrorContains(t, err, "log.format")
}
