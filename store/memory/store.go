// Package memory provides an in-memory history store for unit testing and
// single-node deployments.
package memory

import (
	"context"
	"sync"

	profilecallback "github.com/hokumski/profilecallback"
	"github.com/hokumski/profilecallback/history"
)

// compile-time interface check.
var _ history.Store = (*Store)(nil)

// Store is an in-memory implementation of history.Store.
type Store struct {
	mu sync.RWMutex

	lastEmails map[string]string           // keyed by user ID
	entries    map[string][]*history.Entry // keyed by user ID, newest first

	closed bool
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		lastEmails: make(map[string]string),
		entries:    make(map[string][]*history.Entry),
	}
}

// Ping reports whether the store is still open.
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return profilecallback.ErrStoreClosed
	}
	return nil
}

// Close marks the store as closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// SetLastEmail records the most recent email for a user.
func (s *Store) SetLastEmail(_ context.Context, userID, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return profilecallback.ErrStoreClosed
	}
	s.lastEmails[userID] = email
	return nil
}

// LastEmail returns the recorded email for a user.
func (s *Store) LastEmail(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", profilecallback.ErrStoreClosed
	}
	email, ok := s.lastEmails[userID]
	if !ok {
		return "", profilecallback.ErrLastEmailNotFound
	}
	return email, nil
}

// AppendEmail appends one history entry, keeping newest first.
func (s *Store) AppendEmail(_ context.Context, e *history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return profilecallback.ErrStoreClosed
	}
	s.entries[e.UserID] = append([]*history.Entry{e}, s.entries[e.UserID]...)
	return nil
}

// ListEmails returns a user's entries newest-first.
func (s *Store) ListEmails(_ context.Context, userID string, opts history.ListOpts) ([]*history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, profilecallback.ErrStoreClosed
	}
	return applyPagination(s.entries[userID], opts.Offset, opts.Limit), nil
}

// applyPagination applies offset and limit to a slice.
func applyPagination(items []*history.Entry, offset, limit int) []*history.Entry {
	if offset >= len(items) {
		return nil
	}
	if offset > 0 {
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
