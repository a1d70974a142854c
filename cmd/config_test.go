package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kebabhouse/cmd"
	"kebabhouse/internal/pkg/errs"
	"kebabhouse/internal/pkg/props"
)

func TestConfigFromProps(t *testing.T) {
	t.Run("should default to the in-memory backend", func(t *testing.T) {
		provider := props.NewProviderFromMap(map[string]string{
			"HTTP_PORT": "8080",
		})

		config, err := cmd.ConfigFromProps(provider)
		require.NoError(t, err)
		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, cmd.StorageMemory, config.StorageKind)
		assert.Equal(t, "api", config.FrontEndKind)
		assert.Empty(t, config.RoleCacheRefreshCron)
	})

	t.Run("should require the http port", func(t *testing.T) {
		_, err := cmd.ConfigFromProps(props.NewProviderFromMap(nil))
		assert.ErrorIs(t, err, errs.ErrProperty)
	})

	t.Run("should collect database settings for the postgres backend", func(t *testing.T) {
		provider := props.NewProviderFromMap(map[string]string{
			"HTTP_PORT":    "8080",
			"STORAGE_KIND": cmd.StoragePostgres,
			"DB_HOST":      "localhost",
			"DB_PORT":      "5432",
			"DB_USER":      "kebab",
			"DB_PASSWORD":  "secret",
			"DB_NAME":      "kebabhouse",
			"DB_SSLMODE":   "disable",
		})

		config, err := cmd.ConfigFromProps(provider)
		require.NoError(t, err)
		assert.Equal(t,
			"host=localhost port=5432 user=kebab password=secret dbname=kebabhouse sslmode=disable",
			config.DSN())
	})

	t.Run("should fail when a database setting is missing", func(t *testing.T) {
		provider := props.NewProviderFromMap(map[string]string{
			"HTTP_PORT":    "8080",
			"STORAGE_KIND": cmd.StoragePostgres,
			"DB_HOST":      "localhost",
		})

		_, err := cmd.ConfigFromProps(provider)
		assert.ErrorIs(t, err, errs.ErrProperty)
	})

	t.Run("should require a data path for the file backend", func(t *testing.T) {
		provider := props.NewProviderFromMap(map[string]string{
			"HTTP_PORT":    "8080",
			"STORAGE_KIND": cmd.StorageFile,
		})

		_, err := cmd.ConfigFromProps(provider)
		assert.ErrorIs(t, err, errs.ErrProperty)
	})

	t.Run("should reject an unknown storage kind", func(t *testing.T) {
		provider := props.NewProviderFromMap(map[string]string{
			"HTTP_PORT":    "8080",
			"STORAGE_KIND": "cassette-tape",
		})

		_, err := cmd.ConfigFromProps(provider)
		assert.Error(t, err)
	})
}
