package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// SessionState is an immutable snapshot of the current login session.
type SessionState struct {
	SessionID string
	Operator  *domain.OperatorMaster
	Project   *domain.ProjectMaster
	LoginTime time.Time
}

// IsLoggedIn reports whether the snapshot represents an active session.
func (s SessionState) IsLoggedIn() bool {
	return s.Operator != nil && s.Project != nil
}

// IsAdmin reports whether the logged-in operator has the admin role.
func (s SessionState) IsAdmin() bool {
	return s.Operator != nil && s.Operator.IsAdmin()
}

// Session owns the current operator/project state for one application run.
// Consumers read point-in-time snapshots or subscribe to change
// notifications; there is no ambient mutable state to observe.
type Session struct {
	mu          sync.RWMutex
	state       SessionState
	subscribers []func(SessionState)
}

// NewSession creates an empty (logged-out) session holder
func NewSession() *Session {
	return &Session{}
}

// Start records a successful login and notifies subscribers
func (s *Session) Start(operator *domain.OperatorMaster, project *domain.ProjectMaster) SessionState {
	s.mu.Lock()
	s.state = SessionState{
		SessionID: uuid.NewString(),
		Operator:  operator,
		Project:   project,
		LoginTime: time.Now(),
	}
	state := s.state
	subs := append([]func(SessionState){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
	return state
}

// End clears the session and notifies subscribers
func (s *Session) End() {
	s.mu.Lock()
	s.state = SessionState{}
	state := s.state
	subs := append([]func(SessionState){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Snapshot returns the current session state
func (s *Session) Snapshot() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a callback invoked on every session change
func (s *Session) Subscribe(fn func(SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
