// Package store holds the single authoritative snapshot of the anonymization
// session: the input text, the in-flight flag, the last error, and the last
// successful result. Dependents subscribe and are notified synchronously on
// every mutation, so they always read a consistent, current snapshot.
//
// Write ownership is by protocol: the UI input binding is the only writer of
// InputText; the lifecycle controller is the only writer of IsLoading, Error,
// and Result. The RWMutex exists because the controller runs inside a request
// goroutine while the UI event loop reads concurrently.
package store

import (
	"sync"

	"github.com/studiowebux/anonctl/internal/api"
)

// Snapshot is one consistent view of the session state. Error is empty when
// no error is being surfaced; Result is nil until a request has succeeded.
type Snapshot struct {
	InputText string
	IsLoading bool
	Error     string
	Result    *api.AnonymizeResult
}

// Listener receives the full snapshot after every mutation.
type Listener func(Snapshot)

// Store is the process-wide state container. The zero value is not usable;
// create one with New.
type Store struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	listeners []Listener
}

// New creates an empty store: no input, not loading, no error, no result.
func New() *Store {
	return &Store{}
}

// Subscribe registers a listener called synchronously after each mutation.
// Listeners receive a copy of the snapshot and must not call mutators.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// InputText returns the current input text.
func (s *Store) InputText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.InputText
}

// IsLoading reports whether a request is outstanding.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.IsLoading
}

// Error returns the last surfaced error message, empty when none.
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Error
}

// Result returns the last successful result, nil when none.
func (s *Store) Result() *api.AnonymizeResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Result
}

// SetInputText sets the input text. Owned by the UI input binding.
func (s *Store) SetInputText(text string) {
	s.mu.Lock()
	s.snapshot.InputText = text
	s.notifyLocked()
}

// SetLoading sets the in-flight flag and nothing else.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.snapshot.IsLoading = loading
	s.notifyLocked()
}

// SetError sets the surfaced error message and nothing else.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	s.snapshot.Error = msg
	s.notifyLocked()
}

// SetResult sets the last successful result and nothing else. The previous
// result stays visible until this is called, so a pending attempt shows the
// stale result rather than a blank view.
func (s *Store) SetResult(result *api.AnonymizeResult) {
	s.mu.Lock()
	s.snapshot.Result = result
	s.notifyLocked()
}

// Begin is the single-flight gate: it atomically checks the in-flight flag
// and, when no request is outstanding, enters the pending state by setting
// IsLoading and clearing Error in one critical section. It returns false
// when a request is already outstanding, in which case nothing changes and
// no notification fires.
func (s *Store) Begin() bool {
	s.mu.Lock()
	if s.snapshot.IsLoading {
		s.mu.Unlock()
		return false
	}
	s.snapshot.IsLoading = true
	s.snapshot.Error = ""
	s.notifyLocked()
	return true
}

// notifyLocked snapshots the state, releases the lock, and invokes every
// listener with the copy. Must be called with the write lock held; it
// unlocks on behalf of the caller so listeners never run under the lock.
func (s *Store) notifyLocked() {
	snapshot := s.snapshot
	listeners := s.listeners
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(snapshot)
	}
}
