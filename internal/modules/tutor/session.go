package tutor

import "sync"

// Store keeps chat histories in memory, keyed by session id. Sessions from
// different users are independent; history never survives a process restart
// and is never written anywhere.
type Store struct {
	mu       sync.Mutex
	sessions map[string][]ChatMessage
}

func NewStore() *Store {
	return &Store{sessions: make(map[string][]ChatMessage)}
}

// History returns a copy of the session's messages.
func (s *Store) History(sessionID string) []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.sessions[sessionID]
	out := make([]ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// Append adds messages to a session, creating it on first use.
func (s *Store) Append(sessionID string, msgs ...ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], msgs...)
}

// Len returns the number of messages in a session.
func (s *Store) Len(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions[sessionID])
}

// Reset drops a session.
func (s *Store) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
