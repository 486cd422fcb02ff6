package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs a sweep every minute.
const DefaultSweepSchedule = "@every 1m"

// Reaper sweeps idle sessions on a cron schedule.
type Reaper struct {
	cron    *cron.Cron
	manager *Manager
	logger  *slog.Logger
}

// NewReaper validates schedule and prepares a Reaper for m.
func NewReaper(m *Manager, schedule string, logger *slog.Logger) (*Reaper, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	r := &Reaper{cron: cron.New(), manager: m, logger: logger}
	if _, err := r.cron.AddFunc(schedule, r.sweep); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return r, nil
}

func (r *Reaper) sweep() {
	r.manager.Sweep(r.manager.now())
}

// Start begins running sweeps in the background.
func (r *Reaper) Start() {
	r.cron.Start()
	r.logger.Info("session reaper started")
}

// Stop halts the schedule and waits for a running sweep to finish.
func (r *Reaper) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("session reaper stopped")
}

// Next returns the next scheduled sweep time, or the zero time when the
// reaper is not running.
func (r *Reaper) Next() time.Time {
	entries := r.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
