package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load(nil)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "en", cfg.Catalog.Locale)
	assert.Empty(t, cfg.Catalog.Fixture)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CATALOG_ENV", "production")
	t.Setenv("CATALOG_LOCALE", "sv")
	t.Setenv("CATALOG_FIXTURE", "/tmp/catalog.yaml")

	cfg := Load(nil)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "sv", cfg.Catalog.Locale)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.Catalog.Fixture)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("CATALOG_LOCALE", "sv")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--locale", "de", "--log-level", "debug"}))

	cfg := Load(fs)

	assert.Equal(t, "de", cfg.Catalog.Locale)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestCatalogConfig_Language(t *testing.T) {
	assert.Equal(t, language.Swedish, CatalogConfig{Locale: "sv"}.Language())
	assert.Equal(t, language.English, CatalogConfig{Locale: "not a tag!"}.Language())
	assert.Equal(t, language.English, CatalogConfig{}.Language())
}
