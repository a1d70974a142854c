package jobs_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kebabhouse/internal/adapters/out/memstore"
	"kebabhouse/internal/core/application/roles"
	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/jobs"
)

func newProvider(t *testing.T) *roles.Provider {
	t.Helper()

	store := memstore.NewStore()
	repo := memstore.NewRoleRepository(store)

	user, err := account.NewUser(kernel.NewUUID(),
		"Mario", "Rossi", "RSSMRA80A01H501U", "mario@example.com")
	require.NoError(t, err)

	role, err := account.NewCustomerRole(user)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), role))

	provider := roles.NewProvider(repo)
	_, err = provider.Resolve(context.Background(), user)
	require.NoError(t, err)
	return provider
}

func TestJobManager(t *testing.T) {
	logger := slog.Default()

	t.Run("should be a no-op without a refresh schedule", func(t *testing.T) {
		manager := jobs.NewJobManager(newProvider(t), "", logger)

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("should fail to start on a malformed cron expression", func(t *testing.T) {
		manager := jobs.NewJobManager(newProvider(t), "not a cron spec", logger)

		err := manager.StartAll()
		assert.Error(t, err)
	})

	t.Run("should clear the role cache on schedule", func(t *testing.T) {
		provider := newProvider(t)
		require.Equal(t, 1, provider.CachedCount())

		manager := jobs.NewJobManager(provider, "* * * * * *", logger)
		require.NoError(t, manager.StartAll())
		defer manager.StopAll()

		assert.Eventually(t, func() bool {
			return provider.CachedCount() == 0
		}, 3*time.Second, 50*time.Millisecond)
	})
}
