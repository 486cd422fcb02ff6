package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwex-demo/internal/db"
	"dwex-demo/internal/domain"
	"dwex-demo/internal/shell/theme"
)

func TestPreferenceRepo_GetSetDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPreferenceRepo(db.OpenTestSQLite(t))

	_, ok, err := repo.Get(ctx, "client-a", "dwex-theme-mode")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "client-a", "dwex-theme-mode", "dark"))
	require.NoError(t, repo.Set(ctx, "client-a", "dwex-theme-mode", "light"))
	require.NoError(t, repo.Set(ctx, "client-b", "dwex-theme-mode", "dark"))

	v, ok, err := repo.Get(ctx, "client-a", "dwex-theme-mode")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", v, "upsert replaces the value")

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, repo.Delete(ctx, "client-a"))
	_, ok, err = repo.Get(ctx, "client-a", "dwex-theme-mode")
	require.NoError(t, err)
	assert.False(t, ok)

	v, _, err = repo.Get(ctx, "client-b", "dwex-theme-mode")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestPreferenceRepo_SetValidation(t *testing.T) {
	t.Parallel()
	repo := NewPreferenceRepo(db.OpenTestSQLite(t))

	err := repo.Set(context.Background(), "", "k", "v")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestClientStore_BacksTheme(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewPreferenceRepo(db.OpenTestSQLite(t))

	svc := theme.NewService(ctx, ForClient(repo, "client-a"), nil)
	require.NoError(t, svc.SetMode(ctx, domain.ThemeDark))
	require.NoError(t, svc.SetColor(ctx, domain.ColorRed))

	reloaded := theme.NewService(ctx, ForClient(repo, "client-a"), nil)
	assert.Equal(t, domain.ThemeDark, reloaded.Mode())
	assert.Equal(t, domain.ColorRed, reloaded.Color())

	other := theme.NewService(ctx, ForClient(repo, "client-b"), nil)
	assert.Equal(t, domain.ThemeSystem, other.Mode())
	assert.Equal(t, domain.ColorViolet, other.Color())
}

func TestPreferenceRepo_ClosedDatabase(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pools := db.OpenTestSQLite(t)
	repo := NewPreferenceRepo(pools)
	require.NoError(t, pools.Close())

	_, _, err := repo.Get(ctx, "c", "k")
	require.Error(t, err)

	svc := theme.NewService(ctx, ForClient(repo, "c"), nil)
	assert.Equal(t, domain.ThemeSystem, svc.Mode(), "unreadable storage falls back to defaults")
}
