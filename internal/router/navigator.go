package router

import (
	"sync"

	"dwex-demo/internal/domain"
)

// historyLimit caps how many past navigations a Recorder keeps.
const historyLimit = 64

// Recorder is a Navigator that remembers the last requested target until the
// transport layer takes it and performs the actual navigation.
type Recorder struct {
	mu      sync.Mutex
	pending string
	history []string
}

var _ domain.Navigator = (*Recorder)(nil)

// Navigate records path as the pending navigation. A later call replaces an
// earlier one that has not been taken yet.
func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = path
	r.history = append(r.history, path)
	if len(r.history) > historyLimit {
		r.history = r.history[len(r.history)-historyLimit:]
	}
}

// Take returns and clears the pending navigation.
func (r *Recorder) Take() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.pending
	r.pending = ""
	return p, p != ""
}

// History returns the most recent navigations, oldest first.
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}
