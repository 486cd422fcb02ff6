// Package workspace loads and validates the workspace definition that drives
// the shell navigation.
package workspace

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dwex-demo/internal/domain"
)

//go:embed default.yaml
var defaultYAML []byte

// Profile is the signed-in user shown in the toolbar.
type Profile struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
}

// Config is the full workspace definition.
type Config struct {
	SettingsRoute string             `yaml:"settings_route" json:"settings_route"`
	ProfileRoute  string             `yaml:"profile_route" json:"profile_route"`
	Profile       Profile            `yaml:"profile" json:"profile"`
	SettingsNav   []domain.NavItem   `yaml:"settings_nav" json:"settings_nav"`
	Workspaces    []domain.Workspace `yaml:"workspaces" json:"workspaces"`
}

// Default returns the built-in demo configuration.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("workspace: embedded default is invalid: %v", err))
	}
	return cfg
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workspace file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("workspace file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SettingsRoute == "" {
		c.SettingsRoute = "/settings"
	}
	if c.ProfileRoute == "" {
		c.ProfileRoute = "/profile"
	}
}

// Validate checks ids, routes and breakpoint scopes.
func (c *Config) Validate() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for _, r := range []struct{ name, route string }{
		{"settings_route", c.SettingsRoute},
		{"profile_route", c.ProfileRoute},
	} {
		if !strings.HasPrefix(r.route, "/") {
			addf("%s %q must start with /", r.name, r.route)
		}
	}

	if len(c.Workspaces) == 0 {
		addf("at least one workspace is required")
	}
	seen := make(map[string]bool, len(c.Workspaces))
	for i, ws := range c.Workspaces {
		where := fmt.Sprintf("workspaces[%d]", i)
		switch {
		case ws.ID == "":
			addf("%s: id is required", where)
		case seen[ws.ID]:
			addf("%s: duplicate id %q", where, ws.ID)
		}
		seen[ws.ID] = true
		if !ws.ShowOn.Valid() {
			addf("%s: invalid show_on %q", where, ws.ShowOn)
		}
		validateNav(where, ws.NavItems, addf)
	}
	validateNav("settings_nav", c.SettingsNav, addf)

	if len(problems) > 0 {
		return domain.ErrValidation("invalid workspace config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func validateNav(where string, items []domain.NavItem, addf func(string, ...any)) {
	for j, item := range items {
		at := fmt.Sprintf("%s.nav[%d]", where, j)
		if item.Label == "" && !item.Divider {
			addf("%s: label is required", at)
		}
		if !item.ShowOn.Valid() {
			addf("%s: invalid show_on %q", at, item.ShowOn)
		}
		if item.Section || item.Divider {
			continue
		}
		switch {
		case item.Route == "":
			addf("%s: route is required", at)
		case !strings.HasPrefix(item.Route, "/"):
			addf("%s: route %q must start with /", at, item.Route)
		}
	}
}

// AllNavItems returns every workspace nav item followed by the settings items.
func (c *Config) AllNavItems() []domain.NavItem {
	var out []domain.NavItem
	for _, ws := range c.Workspaces {
		out = append(out, ws.NavItems...)
	}
	return append(out, c.SettingsNav...)
}
