package auth

import "sync"

// Session is the process-local record of who is currently
// authenticated. It starts in the loading state and leaves it when
// bootstrap (or an explicit login) settles the answer.
//
// All transitions are whole-value replacements; there is no partial
// mutation of the user snapshot.
type Session struct {
	mu            sync.RWMutex
	user          *User
	authenticated bool
	loading       bool
}

// NewSession creates a Session in the loading state.
func NewSession() *Session {
	return &Session{loading: true}
}

// SetUser replaces the user snapshot. The session is authenticated
// exactly when a user is present.
func (s *Session) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		s.authenticated = false
		return
	}
	u := *user
	s.user = &u
	s.authenticated = true
}

// MarkLoading flips the loading flag.
func (s *Session) MarkLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Clear resets the session to the unauthenticated, settled state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	s.loading = false
}

// User returns a copy of the current user snapshot, or nil.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user snapshot is held.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// IsLoading reports whether bootstrap is still in flight.
func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
