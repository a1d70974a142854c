package props_test

import (
	"testing"

	"kebabhouse/internal/pkg/errs"
	"kebabhouse/internal/pkg/props"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Get(t *testing.T) {
	provider := props.NewProviderFromMap(map[string]string{
		"STORAGE_KIND":   "memory",
		"FRONT_END_KIND": "cli",
		"BLANK":          "   ",
	})

	t.Run("should return the value for a present key", func(t *testing.T) {
		value, err := provider.Get("STORAGE_KIND")

		require.NoError(t, err)
		assert.Equal(t, "memory", value)
	})

	t.Run("should fail with PropertyError for a missing key", func(t *testing.T) {
		_, err := provider.Get("NO_SUCH_KEY")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrProperty)
		assert.Contains(t, err.Error(), "NO_SUCH_KEY")
	})

	t.Run("should treat a blank value as missing", func(t *testing.T) {
		_, err := provider.Get("BLANK")

		require.ErrorIs(t, err, errs.ErrProperty)
	})
}

func TestProvider_GetDefault(t *testing.T) {
	provider := props.NewProviderFromMap(map[string]string{"FRONT_END_KIND": "cli"})

	t.Run("should prefer the configured value", func(t *testing.T) {
		assert.Equal(t, "cli", provider.GetDefault("FRONT_END_KIND", "http"))
	})

	t.Run("should fall back to the default for a missing key", func(t *testing.T) {
		assert.Equal(t, "http", provider.GetDefault("NO_SUCH_KEY", "http"))
	})
}
