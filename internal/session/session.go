// Package session owns the single live snapshot and glues the pure reducer
// to a storage provider: load applies the day rollover before anything
// else, every dispatched intent is written through, and persistence
// failures are logged without ever blocking a mutation.
package session

import (
	"errors"

	"github.com/julianstephens/bloom/internal/engine"
	"github.com/julianstephens/bloom/internal/logger"
	"github.com/julianstephens/bloom/internal/models"
	"github.com/julianstephens/bloom/internal/storage"
)

type Session struct {
	store storage.Provider
	eng   *engine.Engine
	state models.AppState
}

// Open loads the persisted snapshot, applies the day-rollover correction,
// and persists the corrected snapshot. A missing store seeds fresh state;
// a corrupt store is logged and also falls back to a fresh seed. Open
// never fails on bad data, only on a broken engine/provider wiring.
func Open(store storage.Provider, eng *engine.Engine) *Session {
	state, err := store.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrNotInitialized) {
			logger.Warn("Could not load snapshot, starting fresh", "error", err)
		}
		state = engine.Seed(eng.Now())
	}

	state = engine.Rollover(state, eng.Now())

	s := &Session{store: store, eng: eng, state: state}
	s.persist()
	return s
}

// State returns the current snapshot. Callers treat it as read-only; all
// mutation goes through Dispatch.
func (s *Session) State() models.AppState {
	return s.state
}

// Engine exposes the session's engine for entry construction.
func (s *Session) Engine() *engine.Engine {
	return s.eng
}

// Dispatch applies an intent and writes the result through to storage.
func (s *Session) Dispatch(intent engine.Intent) models.AppState {
	s.state = s.eng.Apply(s.state, intent)
	s.persist()
	return s.state
}

// Reset discards all state, clears the persisted copy, and seeds fresh
// state so a subsequent load cannot resurrect old data.
func (s *Session) Reset() models.AppState {
	if err := s.store.Clear(); err != nil {
		logger.Warn("Failed to clear persisted snapshot", "error", err)
	}
	s.state = s.eng.Apply(s.state, engine.ResetAppState{})
	s.persist()
	return s.state
}

func (s *Session) Close() error {
	return s.store.Close()
}

// persist is best-effort: storage failure must never crash the mutation
// path.
func (s *Session) persist() {
	if err := s.store.Save(s.state); err != nil {
		logger.Warn("Failed to persist snapshot", "error", err)
	}
}
