// Package theme holds the light/dark mode and accent color preference of a
// client and derives the CSS state applied to the document root.
package theme

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"dwex-demo/internal/domain"
)

// Storage keys.
const (
	StorageKey = "dwex-theme"
	ModeKey    = StorageKey + "-mode"
	ColorKey   = StorageKey + "-color"
)

// Defaults used when nothing valid is stored.
const (
	DefaultMode  = domain.ThemeSystem
	DefaultColor = domain.ColorViolet
)

// Store persists preference values by key.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Applied is the document-root state for the effective theme.
type Applied struct {
	Classes     []string
	ColorScheme string
}

// Class returns the root classes joined for an HTML class attribute.
func (a Applied) Class() string {
	return strings.Join(a.Classes, " ")
}

// Service is the theme state of one client.
type Service struct {
	store  Store
	logger *slog.Logger

	mode       domain.ThemeMode
	color      domain.ThemeColor
	systemDark bool
}

// NewService loads the stored preference. Read failures and invalid stored
// values fall back to the defaults.
func NewService(ctx context.Context, store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{store: store, logger: logger, mode: DefaultMode, color: DefaultColor}
	if store == nil {
		return s
	}
	if v, ok := s.load(ctx, ModeKey); ok && domain.ThemeMode(v).Valid() {
		s.mode = domain.ThemeMode(v)
	}
	if v, ok := s.load(ctx, ColorKey); ok && domain.ThemeColor(v).Valid() {
		s.color = domain.ThemeColor(v)
	}
	return s
}

func (s *Service) load(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("theme preference unavailable", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

// Mode returns the selected mode.
func (s *Service) Mode() domain.ThemeMode { return s.mode }

// Color returns the selected accent color.
func (s *Service) Color() domain.ThemeColor { return s.color }

// SetMode selects a mode and persists the preference.
func (s *Service) SetMode(ctx context.Context, mode domain.ThemeMode) error {
	if !mode.Valid() {
		return domain.ErrValidation("unknown theme mode %q", mode)
	}
	s.mode = mode
	s.save(ctx)
	return nil
}

// SetColor selects an accent color and persists the preference.
func (s *Service) SetColor(ctx context.Context, color domain.ThemeColor) error {
	if !color.Valid() {
		return domain.ErrValidation("unknown theme color %q", color)
	}
	s.color = color
	s.save(ctx)
	return nil
}

// ToggleMode cycles light, dark, system.
func (s *Service) ToggleMode(ctx context.Context) {
	switch s.mode {
	case domain.ThemeLight:
		s.mode = domain.ThemeDark
	case domain.ThemeDark:
		s.mode = domain.ThemeSystem
	default:
		s.mode = domain.ThemeLight
	}
	s.save(ctx)
}

// SetSystemDark records the client's prefers-color-scheme value.
func (s *Service) SetSystemDark(dark bool) { s.systemDark = dark }

// SystemDark returns the last reported system preference.
func (s *Service) SystemDark() bool { return s.systemDark }

// Effective resolves the mode to light or dark.
func (s *Service) Effective() domain.ThemeMode {
	if s.mode == domain.ThemeSystem {
		if s.systemDark {
			return domain.ThemeDark
		}
		return domain.ThemeLight
	}
	return s.mode
}

// Applied returns the root classes and color-scheme for the effective theme.
func (s *Service) Applied() Applied {
	scheme := "light"
	if s.Effective() == domain.ThemeDark {
		scheme = "dark"
	}
	return Applied{
		Classes:     []string{scheme + "-theme", string(s.color) + "-theme"},
		ColorScheme: scheme,
	}
}

// save writes both keys. Failures are logged; the in-memory state stands.
func (s *Service) save(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(ctx, ModeKey, string(s.mode)); err != nil {
		s.logger.Warn("save theme mode", "error", err)
	}
	if err := s.store.Set(ctx, ColorKey, string(s.color)); err != nil {
		s.logger.Warn("save theme color", "error", err)
	}
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
