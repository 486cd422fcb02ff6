package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwex-demo/internal/domain"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("storage disabled")
}

func TestNewService_Defaults(t *testing.T) {
	t.Parallel()

	for name, store := range map[string]Store{
		"empty store":   NewMemoryStore(),
		"failing store": failingStore{},
		"nil store":     nil,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			svc := NewService(context.Background(), store, nil)
			assert.Equal(t, domain.ThemeSystem, svc.Mode())
			assert.Equal(t, domain.ColorViolet, svc.Color())
		})
	}
}

func TestNewService_LoadsStoredValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, ModeKey, "dark"))
	require.NoError(t, store.Set(ctx, ColorKey, "green"))

	svc := NewService(ctx, store, nil)
	assert.Equal(t, domain.ThemeDark, svc.Mode())
	assert.Equal(t, domain.ColorGreen, svc.Color())
}

func TestNewService_InvalidStoredValuesFallBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, ModeKey, "sepia"))
	require.NoError(t, store.Set(ctx, ColorKey, "magenta"))

	svc := NewService(ctx, store, nil)
	assert.Equal(t, domain.ThemeSystem, svc.Mode())
	assert.Equal(t, domain.ColorViolet, svc.Color())
}

func TestToggleMode_Cycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(ctx, NewMemoryStore(), nil)
	require.NoError(t, svc.SetMode(ctx, domain.ThemeLight))

	want := []domain.ThemeMode{domain.ThemeDark, domain.ThemeSystem, domain.ThemeLight}
	for _, w := range want {
		svc.ToggleMode(ctx)
		assert.Equal(t, w, svc.Mode())
	}
}

func TestSetters_Persist(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(ctx, store, nil)

	require.NoError(t, svc.SetMode(ctx, domain.ThemeDark))
	require.NoError(t, svc.SetColor(ctx, domain.ColorOrange))

	mode, ok, err := store.Get(ctx, ModeKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", mode)
	color, _, _ := store.Get(ctx, ColorKey)
	assert.Equal(t, "orange", color)

	reloaded := NewService(ctx, store, nil)
	assert.Equal(t, domain.ThemeDark, reloaded.Mode())
	assert.Equal(t, domain.ColorOrange, reloaded.Color())
}

func TestSetters_RejectUnknownValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(ctx, NewMemoryStore(), nil)

	var verr *domain.ValidationError
	require.ErrorAs(t, svc.SetMode(ctx, "sepia"), &verr)
	require.ErrorAs(t, svc.SetColor(ctx, "magenta"), &verr)
	assert.Equal(t, domain.ThemeSystem, svc.Mode())
	assert.Equal(t, domain.ColorViolet, svc.Color())
}

func TestSetMode_FailingStoreKeepsMemoryState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewService(ctx, failingStore{}, nil)
	require.NoError(t, svc.SetMode(ctx, domain.ThemeDark))
	assert.Equal(t, domain.ThemeDark, svc.Mode())
}

func TestApplied(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mode       domain.ThemeMode
		systemDark bool
		wantClass  string
		wantScheme string
	}{
		{name: "light", mode: domain.ThemeLight, systemDark: true, wantClass: "light-theme blue-theme", wantScheme: "light"},
		{name: "dark", mode: domain.ThemeDark, wantClass: "dark-theme blue-theme", wantScheme: "dark"},
		{name: "system dark", mode: domain.ThemeSystem, systemDark: true, wantClass: "dark-theme blue-theme", wantScheme: "dark"},
		{name: "system light", mode: domain.ThemeSystem, wantClass: "light-theme blue-theme", wantScheme: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			svc := NewService(ctx, nil, nil)
			require.NoError(t, svc.SetMode(ctx, tt.mode))
			require.NoError(t, svc.SetColor(ctx, domain.ColorBlue))
			svc.SetSystemDark(tt.systemDark)

			applied := svc.Applied()
			assert.Equal(t, tt.wantClass, applied.Class())
			assert.Equal(t, tt.wantScheme, applied.ColorScheme)
		})
	}
}
