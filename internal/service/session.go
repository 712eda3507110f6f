package service

import (
	"sync"

	"homewise/internal/model"
)

// DefaultSessionID is used for callers that do not supply a session.
const DefaultSessionID = "default"

// MergeContext folds newly extracted filters into the session context.
// Field-wise: a non-nil new value replaces the old one, a nil value
// preserves it. A query that mentions a new city must replace the previous
// city; a query that omits the city must keep it.
func MergeContext(current, extracted model.Filters) model.Filters {
	merged := current
	if extracted.Location != nil {
		merged.Location = extracted.Location
	}
	if extracted.BHK != nil {
		merged.BHK = extracted.BHK
	}
	if extracted.BudgetMin != nil {
		merged.BudgetMin = extracted.BudgetMin
	}
	if extracted.BudgetMax != nil {
		merged.BudgetMax = extracted.BudgetMax
	}
	return merged
}

// SessionStore keeps one conversation context per session, so concurrent
// sessions cannot corrupt each other's filters. Contexts live for the
// process lifetime.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]model.Filters
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]model.Filters)}
}

func normalizeSession(id string) string {
	if id == "" {
		return DefaultSessionID
	}
	return id
}

// Get returns the current context for a session; an unknown session yields
// an empty context.
func (s *SessionStore) Get(id string) model.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[normalizeSession(id)]
}

// Update merges extracted filters into the session context, stores the
// result, and returns it.
func (s *SessionStore) Update(id string, extracted model.Filters) model.Filters {
	key := normalizeSession(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := MergeContext(s.sessions[key], extracted)
	s.sessions[key] = merged
	return merged
}

// Reset clears a session's context.
func (s *SessionStore) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, normalizeSession(id))
}
