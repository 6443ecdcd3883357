package handlers

import (
	"sync"

	"hela/internal/integration"
	"hela/internal/store"
)

// Session holds the per-user domain state: the in-memory store and the
// integration state machine. Sessions live for the lifetime of the process.
type Session struct {
	Store        *store.Store
	Integrations *integration.Manager
}

// Registry lazily creates and caches one Session per user ID.
type Registry struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	newSession func() *Session
}

// NewRegistry creates a registry. newSession builds the initial state for a
// user seen for the first time.
func NewRegistry(newSession func() *Session) *Registry {
	return &Registry{
		sessions:   make(map[string]*Session),
		newSession: newSession,
	}
}

// Session returns the user's session, creating it on first access.
func (r *Registry) Session(userID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		return s
	}
	s := r.newSession()
	r.sessions[userID] = s
	return s
}
