// Package assistant is the routing core: it turns a user's natural-language
// message into either a conversational reply or a validated tool invocation.
//
// The pipeline is Chat (provider round trip) -> ParseResponse (strict decode
// into the closed response union) -> Dispatcher (availability check, argv
// build, execution, run recording). Each stage fails with a typed error a
// transport can render; no stage is fatal to the message loop.
package assistant

import (
	"sync"
	"time"

	"kalibot/model"
)

// Store keeps bounded per-user conversation history. When a user's history
// exceeds the cap, the oldest entries are dropped first.
type Store struct {
	mu         sync.Mutex
	maxEntries int
	histories  map[int64][]model.Message
}

// NewStore creates a store keeping at most maxEntries messages per user.
// A non-positive cap disables history entirely.
func NewStore(maxEntries int) *Store {
	return &Store{
		maxEntries: maxEntries,
		histories:  make(map[int64][]model.Message),
	}
}

// Append records one message for the user, evicting the oldest entries when
// over the cap.
func (s *Store) Append(userID int64, role, content string) {
	if s.maxEntries <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	h := append(s.histories[userID], model.Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	if len(h) > s.maxEntries {
		h = h[len(h)-s.maxEntries:]
	}
	s.histories[userID] = h
}

// Recent returns a copy of the user's history, oldest first.
func (s *Store) Recent(userID int64) []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.histories[userID]
	out := make([]model.Message, len(h))
	copy(out, h)
	return out
}

// Len reports how many messages are stored for the user.
func (s *Store) Len(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.histories[userID])
}

// Clear drops the user's history.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.histories, userID)
}
