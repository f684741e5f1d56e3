package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() Profile {
	return Profile{
		Email:    "grace@example.com",
		FullName: "Grace Wanjiku",
		Phone:    "+254700123457",
		Category: "plumbing",
		Location: "Westlands",
		Portfolio: []PortfolioItem{
			{Title: "Kitchen sink", Category: "plumbing", CompletedDate: "2025-01-13"},
		},
	}
}

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := NewSQLite(filepath.Join(t.TempDir(), "nested", "groovehire.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestStoreLifecycle(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Load(ctx)
			require.ErrorIs(t, err, ErrProfileNotFound)

			saved, err := store.Save(ctx, sampleProfile())
			require.NoError(t, err)
			assert.NotEmpty(t, saved.ID)
			require.Len(t, saved.Portfolio, 1)
			assert.NotEmpty(t, saved.Portfolio[0].ID)

			loaded, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, saved, loaded)

			loaded.Portfolio = append(loaded.Portfolio, PortfolioItem{Title: "Water heater"})
			updated, err := store.Save(ctx, loaded)
			require.NoError(t, err)
			assert.Equal(t, saved.ID, updated.ID)
			assert.Equal(t, saved.Portfolio[0].ID, updated.Portfolio[0].ID)
			assert.Len(t, updated.Portfolio, 2)

			require.NoError(t, store.Delete(ctx))
			_, err = store.Load(ctx)
			require.ErrorIs(t, err, ErrProfileNotFound)
			require.NoError(t, store.Delete(ctx))
		})
	}
}

func TestSaveNormalizesNilPortfolio(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := store.Save(ctx, Profile{Email: "a@b.c"})
			require.NoError(t, err)

			loaded, err := store.Load(ctx)
			require.NoError(t, err)
			assert.NotNil(t, loaded.Portfolio)
			assert.Empty(t, loaded.Portfolio)
		})
	}
}
