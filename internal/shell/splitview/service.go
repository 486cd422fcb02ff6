// Package splitview manages the secondary pane shown next to the primary
// page: its content, orientation and size ratio.
package splitview

import (
	"log/slog"
	"math"

	"dwex-demo/internal/domain"
	"dwex-demo/internal/router"
)

// Ratio bounds for the primary pane, in percent.
const (
	MinRatio     = 20.0
	MaxRatio     = 80.0
	DefaultRatio = 50.0
)

// Resolver finds the component declared for a path.
type Resolver interface {
	Resolve(path string) (router.Match, bool)
}

// OpenOptions adjusts Open. Zero fields leave the current value unchanged.
type OpenOptions struct {
	Orientation domain.SplitOrientation
	Title       string
}

// State is a snapshot of the split view.
type State struct {
	Active      bool                    `json:"active"`
	Orientation domain.SplitOrientation `json:"orientation"`
	Component   domain.ComponentRef     `json:"component,omitempty"`
	Path        string                  `json:"path,omitempty"`
	Ratio       float64                 `json:"ratio"`
	Title       string                  `json:"title,omitempty"`
}

// Service holds one client's split view. Callers serialize access.
type Service struct {
	routes Resolver
	logger *slog.Logger

	active      bool
	orientation domain.SplitOrientation
	component   domain.ComponentRef
	path        string
	ratio       float64
	title       string
}

// NewService creates an inactive, vertical split view at a 50/50 ratio.
func NewService(routes Resolver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		routes:      routes,
		logger:      logger,
		orientation: domain.SplitVertical,
		ratio:       DefaultRatio,
	}
}

// Open shows component in the secondary pane, replacing any current content.
func (s *Service) Open(component domain.ComponentRef, opts OpenOptions) {
	s.component = component
	s.path = ""
	if opts.Orientation != "" {
		s.orientation = opts.Orientation
	}
	if opts.Title != "" {
		s.title = opts.Title
	}
	s.active = true
}

// OpenRoute shows the page declared for path. The pane title is the route's
// title, or the path itself when the route declares none. Unknown paths are
// ignored.
func (s *Service) OpenRoute(path string, orientation domain.SplitOrientation) {
	m, ok := s.routes.Resolve(path)
	if !ok {
		s.logger.Debug("split: no component for path", "path", path)
		return
	}
	title := m.Title
	if title == "" {
		title = path
	}
	s.Open(m.Component, OpenOptions{Orientation: orientation, Title: title})
	s.path = "/" + m.Path
}

// Close returns to single-pane mode.
func (s *Service) Close() {
	s.active = false
	s.component = ""
	s.path = ""
	s.title = ""
}

// SetOrientation sets the layout direction.
func (s *Service) SetOrientation(o domain.SplitOrientation) {
	s.orientation = o
}

// ToggleOrientation flips between vertical and horizontal.
func (s *Service) ToggleOrientation() {
	if s.orientation == domain.SplitVertical {
		s.orientation = domain.SplitHorizontal
		return
	}
	s.orientation = domain.SplitVertical
}

// SetSplitRatio stores ratio clamped to [MinRatio, MaxRatio]. NaN is
// ignored.
func (s *Service) SetSplitRatio(ratio float64) {
	if math.IsNaN(ratio) {
		return
	}
	s.ratio = max(MinRatio, min(MaxRatio, ratio))
}

// ResetRatio restores an even split.
func (s *Service) ResetRatio() {
	s.ratio = DefaultRatio
}

// State returns the current split view.
func (s *Service) State() State {
	return State{
		Active:      s.active,
		Orientation: s.orientation,
		Component:   s.component,
		Path:        s.path,
		Ratio:       s.ratio,
		Title:       s.title,
	}
}

// IsActive reports whether the secondary pane is open.
func (s *Service) IsActive() bool { return s.active }

// Orientation returns the pane layout.
func (s *Service) Orientation() domain.SplitOrientation { return s.orientation }

// Ratio returns the primary pane's share in percent.
func (s *Service) Ratio() float64 { return s.ratio }
