// Package autosave keeps a remote copy of an edited resume eventually
// consistent with local changes. Edits are debounced over a quiet period so
// at most one save request leaves per settled burst of typing, and at most
// one save is ever in flight.
package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resume-builder/internal/model"
)

// DefaultDelay is the quiet period after the last edit before a save fires.
const DefaultDelay = 3 * time.Second

// SaveFunc persists a document snapshot.
type SaveFunc func(ctx context.Context, data model.ResumeData) error

// NotifyFunc receives non-fatal user-facing notices (the toast surface).
type NotifyFunc func(title, message string)

type state int

const (
	stateIdle state = iota
	statePending
	stateSaving
)

// Saver is the draft synchronizer. State transitions:
//
//	edit            -> PendingSave (deadline reset)
//	deadline, Pending -> Saving
//	save done       -> Idle, or PendingSave again if edits arrived meanwhile
//	deadline, Saving  -> dropped (never a second in-flight save)
type Saver struct {
	save   SaveFunc
	notify NotifyFunc
	delay  time.Duration

	mu        sync.Mutex
	st        state
	gen       uint64
	timer     *time.Timer
	latest    model.ResumeData
	dirty     bool
	lastSaved time.Time
}

// NewSaver builds a Saver around the given save function. A non-positive
// delay falls back to DefaultDelay. notify may be nil.
func NewSaver(save SaveFunc, delay time.Duration, notify NotifyFunc) *Saver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Saver{save: save, notify: notify, delay: delay}
}

// Change records the latest document state and (re)starts the quiet-period
// timer. Empty drafts are never scheduled. An edit arriving while a save is
// in flight does not interrupt it; a fresh quiet period starts once the
// save completes.
func (s *Saver) Change(data model.ResumeData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = data

	if !data.HasContent() {
		s.cancelTimerLocked()
		if s.st == statePending {
			s.st = stateIdle
		}
		return
	}

	if s.st == stateSaving {
		s.dirty = true
		return
	}
	s.st = statePending
	s.armLocked()
}

// Flush cancels any pending timer and saves the current snapshot
// immediately. If a save is already in flight the call is a no-op.
func (s *Saver) Flush() {
	s.mu.Lock()
	s.cancelTimerLocked()
	if s.st == stateSaving {
		s.mu.Unlock()
		return
	}
	s.st = stateSaving
	s.dirty = false
	snap := s.latest
	s.mu.Unlock()

	s.finish(s.save(context.Background(), snap))
}

// Stop cancels any pending save without waiting for an in-flight one.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTimerLocked()
	if s.st == statePending {
		s.st = stateIdle
	}
}

// LastSaved reports when the last successful save completed; zero if none.
func (s *Saver) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// Saving reports whether a save is currently in flight.
func (s *Saver) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st == stateSaving
}

func (s *Saver) armLocked() {
	s.cancelTimerLocked()
	s.gen++
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() { s.onDeadline(gen) })
}

func (s *Saver) cancelTimerLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Saver) onDeadline(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.st != statePending {
		// rescheduled or already saving: this deadline is stale
		s.mu.Unlock()
		return
	}
	s.st = stateSaving
	s.dirty = false
	snap := s.latest
	s.mu.Unlock()

	s.finish(s.save(context.Background(), snap))
}

func (s *Saver) finish(err error) {
	failed := err != nil
	s.mu.Lock()
	if failed {
		slog.Warn("auto-save failed", "error", err)
	} else {
		s.lastSaved = time.Now()
	}
	if s.dirty {
		s.dirty = false
		s.st = statePending
		s.armLocked()
	} else {
		s.st = stateIdle
	}
	s.mu.Unlock()

	if failed && s.notify != nil {
		s.notify("Auto-save Failed", "Your changes could not be saved automatically. Please try saving manually.")
	}
}
