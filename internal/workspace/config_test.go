package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwex-demo/internal/domain"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()

	assert.Equal(t, "/settings", cfg.SettingsRoute)
	assert.Equal(t, "/profile", cfg.ProfileRoute)
	require.Len(t, cfg.Workspaces, 3)
	assert.Equal(t, []string{"sales", "documents", "analytics"},
		[]string{cfg.Workspaces[0].ID, cfg.Workspaces[1].ID, cfg.Workspaces[2].ID})
	assert.Equal(t, "Reports", cfg.Workspaces[2].Label)
	assert.Len(t, cfg.SettingsNav, 5)

	people := cfg.Workspaces[0].NavItems[2]
	assert.True(t, people.Section)
	assert.True(t, people.Divider)
	assert.False(t, people.Navigable())
}

func TestAllNavItems(t *testing.T) {
	t.Parallel()
	items := Default().AllNavItems()
	assert.Len(t, items, 5+4+4+5)
	assert.Equal(t, "/settings/advanced", items[len(items)-1].Route)
}

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no workspaces",
			yaml:    "settings_route: /settings\n",
			wantErr: "at least one workspace",
		},
		{
			name: "duplicate id",
			yaml: `
workspaces:
  - { id: a, label: A, nav: [{ label: X, route: /x }] }
  - { id: a, label: B, nav: [{ label: Y, route: /y }] }
`,
			wantErr: `duplicate id "a"`,
		},
		{
			name:    "missing id",
			yaml:    "workspaces:\n  - { label: A, nav: [] }\n",
			wantErr: "id is required",
		},
		{
			name:    "bad show_on",
			yaml:    "workspaces:\n  - { id: a, label: A, show_on: tablet, nav: [] }\n",
			wantErr: `invalid show_on "tablet"`,
		},
		{
			name:    "relative route",
			yaml:    "workspaces:\n  - { id: a, label: A, nav: [{ label: X, route: x }] }\n",
			wantErr: "must start with /",
		},
		{
			name:    "navigable item without route",
			yaml:    "workspaces:\n  - { id: a, label: A, nav: [{ label: X }] }\n",
			wantErr: "route is required",
		},
		{
			name:    "bad settings route",
			yaml:    "settings_route: settings\nworkspaces:\n  - { id: a, label: A, nav: [] }\n",
			wantErr: "settings_route",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("workspaces:\n  - { id: a, label: A, colour: red, nav: [] }\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestParse_SectionWithoutRouteIsValid(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte(`
workspaces:
  - id: a
    label: A
    nav:
      - { label: Group, section: true }
      - { divider: true }
      - { label: X, route: /x, show_on: mobile }
`))
	require.NoError(t, err)
	assert.False(t, cfg.Workspaces[0].NavItems[1].Navigable())
	assert.Equal(t, domain.ShowOnMobile, cfg.Workspaces[0].NavItems[2].ShowOn)
	assert.Equal(t, "/settings", cfg.SettingsRoute, "defaults applied")
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "workspaces.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Workspaces, 3)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
