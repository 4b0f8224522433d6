package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Ada")
	cfg.Profile.Currency = "EUR"
	cfg.Import.DefaultCategory = "essential"
	cfg.Import.DefaultSubcategory = "housing"

	path := filepath.Join(t.TempDir(), "moneta.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Profile.Name, got.Profile.Name)
	assert.Equal(t, "EUR", got.Profile.Currency)
	assert.Equal(t, "essential", got.Import.DefaultCategory)
	assert.Equal(t, "housing", got.Import.DefaultSubcategory)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Ada")

	assert.Equal(t, "Ada", cfg.Profile.Name)
	assert.Equal(t, "USD", cfg.Profile.Currency)
	assert.Equal(t, "discretionary", cfg.Import.DefaultCategory)
	assert.Equal(t, "entertainment", cfg.Import.DefaultSubcategory)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
