package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "servi-search")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("SEARCH_DEBOUNCE_MS", "")
	t.Setenv("PENDING_SELECTION_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, CatalogSourceFile, cfg.Catalog.Source)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.DebounceWindow)
	assert.Equal(t, "/solicitudes/nueva", cfg.Selection.RequestFlowPath)
	assert.Equal(t, "/auth", cfg.Selection.AuthRedirectPath)
	assert.Equal(t, 15*time.Minute, cfg.Selection.PendingTTL)
	assert.False(t, cfg.Database.Configured())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("CATALOG_WATCH", "true")
	t.Setenv("SEARCH_DEBOUNCE_MS", "150")
	t.Setenv("PENDING_SELECTION_TTL", "2m")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "marketplace")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.DebounceWindow)
	assert.Equal(t, 2*time.Minute, cfg.Selection.PendingTTL)
	assert.True(t, cfg.Database.Configured())
}

func TestLoad_Invalid(t *testing.T) {
	setRequired(t)
	t.Setenv("CATALOG_SOURCE", "s3")
	t.Setenv("SEARCH_DEBOUNCE_MS", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidEnv))
	assert.Contains(t, err.Error(), "CATALOG_SOURCE")
	assert.Contains(t, err.Error(), "SEARCH_DEBOUNCE_MS")
}
