// Package keys maps keyboard combinations to shell actions.
package keys

import (
	"strings"
	"sync"
)

// Action names a shell operation a shortcut can trigger.
type Action string

const (
	ActionCloseTab          Action = "close-tab"
	ActionCloseOtherTabs    Action = "close-other-tabs"
	ActionTogglePin         Action = "toggle-pin"
	ActionToggleSplit       Action = "toggle-split"
	ActionToggleOrientation Action = "toggle-orientation"
	ActionResetRatio        Action = "reset-ratio"
	ActionToggleSidenav     Action = "toggle-sidenav"
	ActionToggleTheme       Action = "toggle-theme"
	ActionToggleSettings    Action = "toggle-settings"
)

// Shortcut binds a key combination to an action.
type Shortcut struct {
	Key         string `json:"key"`
	Ctrl        bool   `json:"ctrl,omitempty"`
	Shift       bool   `json:"shift,omitempty"`
	Alt         bool   `json:"alt,omitempty"`
	Meta        bool   `json:"meta,omitempty"`
	Action      Action `json:"action"`
	Description string `json:"description,omitempty"`
}

// Combo renders the shortcut as e.g. "Alt+Shift+W".
func (s Shortcut) Combo() string {
	var parts []string
	if s.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if s.Meta {
		parts = append(parts, "Meta")
	}
	if s.Alt {
		parts = append(parts, "Alt")
	}
	if s.Shift {
		parts = append(parts, "Shift")
	}
	return strings.Join(append(parts, strings.ToUpper(s.Key)), "+")
}

// Event is a keydown reported by the browser. Target is the tag name of the
// focused element.
type Event struct {
	Key    string `json:"key"`
	Ctrl   bool   `json:"ctrl"`
	Shift  bool   `json:"shift"`
	Alt    bool   `json:"alt"`
	Meta   bool   `json:"meta"`
	Target string `json:"target"`
}

// Registry is an ordered list of shortcuts.
type Registry struct {
	mu        sync.RWMutex
	shortcuts []Shortcut
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends s. Earlier registrations win on conflicting combos.
func (r *Registry) Register(s Shortcut) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shortcuts = append(r.shortcuts, s)
}

// Unregister removes every shortcut with exactly this combination.
func (r *Registry) Unregister(key string, ctrl, shift, alt, meta bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.shortcuts[:0]
	for _, s := range r.shortcuts {
		if s.Key == key && s.Ctrl == ctrl && s.Shift == shift && s.Alt == alt && s.Meta == meta {
			continue
		}
		kept = append(kept, s)
	}
	r.shortcuts = kept
}

// Clear removes all shortcuts.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shortcuts = nil
}

// All returns a copy of the registered shortcuts.
func (r *Registry) All() []Shortcut {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Shortcut, len(r.shortcuts))
	copy(out, r.shortcuts)
	return out
}

// Match returns the first shortcut for ev. Key presses inside form fields
// never match.
func (r *Registry) Match(ev Event) (Shortcut, bool) {
	switch strings.ToUpper(ev.Target) {
	case "INPUT", "TEXTAREA", "SELECT":
		return Shortcut{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shortcuts {
		if strings.EqualFold(s.Key, ev.Key) &&
			s.Ctrl == ev.Ctrl && s.Shift == ev.Shift && s.Alt == ev.Alt && s.Meta == ev.Meta {
			return s, true
		}
	}
	return Shortcut{}, false
}

// Defaults returns the built-in shell bindings.
func Defaults() []Shortcut {
	return []Shortcut{
		{Key: "w", Alt: true, Action: ActionCloseTab, Description: "Close tab"},
		{Key: "w", Alt: true, Shift: true, Action: ActionCloseOtherTabs, Description: "Close other tabs"},
		{Key: "p", Alt: true, Action: ActionTogglePin, Description: "Pin or unpin tab"},
		{Key: `\`, Alt: true, Action: ActionToggleSplit, Description: "Toggle split view"},
		{Key: "o", Alt: true, Action: ActionToggleOrientation, Description: "Toggle split orientation"},
		{Key: "0", Alt: true, Action: ActionResetRatio, Description: "Reset split ratio"},
		{Key: "b", Alt: true, Action: ActionToggleSidenav, Description: "Toggle navigation"},
		{Key: "t", Alt: true, Action: ActionToggleTheme, Description: "Cycle theme mode"},
		{Key: ",", Alt: true, Action: ActionToggleSettings, Description: "Toggle settings"},
	}
}

// NewDefaultRegistry returns a registry loaded with Defaults.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range Defaults() {
		r.Register(s)
	}
	return r
}
