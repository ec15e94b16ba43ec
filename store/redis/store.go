// Package redis provides a Redis-backed history store.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	profilecallback "github.com/hokumski/profilecallback"
	"github.com/hokumski/profilecallback/history"
)

// Key prefixes. Last emails are plain string keys; history is a per-user
// list of JSON entries with the newest entry at the head.
const (
	keyLastEmail = "pcb:lastemail:" // + user ID
	keyHistory   = "pcb:emailhist:" // + user ID
)

// compile-time interface check.
var _ history.Store = (*Store)(nil)

// Store implements history.Store on Redis.
type Store struct {
	rdb goredis.UniversalClient
}

// New creates a Redis store over an existing client.
func New(rdb goredis.UniversalClient) *Store {
	return &Store{rdb: rdb}
}

// Ping checks Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// SetLastEmail records the most recent email for a user.
func (s *Store) SetLastEmail(ctx context.Context, userID, email string) error {
	if err := s.rdb.Set(ctx, keyLastEmail+userID, email, 0).Err(); err != nil {
		return fmt.Errorf("history/redis: set last email: %w", err)
	}
	return nil
}

// LastEmail returns the recorded email for a user.
func (s *Store) LastEmail(ctx context.Context, userID string) (string, error) {
	email, err := s.rdb.Get(ctx, keyLastEmail+userID).Result()
	if errors.Is(err, goredis.Nil) {
		return "", profilecallback.ErrLastEmailNotFound
	}
	if err != nil {
		return "", fmt.Errorf("history/redis: get last email: %w", err)
	}
	return email, nil
}

// AppendEmail pushes one history entry onto the head of the user's list.
func (s *Store) AppendEmail(ctx context.Context, e *history.Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("history/redis: marshal entry: %w", err)
	}
	if err := s.rdb.LPush(ctx, keyHistory+e.UserID, raw).Err(); err != nil {
		return fmt.Errorf("history/redis: append entry: %w", err)
	}
	return nil
}

// ListEmails returns a user's entries newest-first.
func (s *Store) ListEmails(ctx context.Context, userID string, opts history.ListOpts) ([]*history.Entry, error) {
	stop := int64(-1)
	if opts.Limit > 0 {
		stop = int64(opts.Offset + opts.Limit - 1)
	}

	raws, err := s.rdb.LRange(ctx, keyHistory+userID, int64(opts.Offset), stop).Result()
	if err != nil {
		return nil, fmt.Errorf("history/redis: list entries: %w", err)
	}

	entries := make([]*history.Entry, 0, len(raws))
	for _, raw := range raws {
		var e history.Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("history/redis: decode entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, nil
}
