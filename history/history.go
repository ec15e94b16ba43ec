// Package history records email changes observed on lifecycle events.
//
// Recording is best-effort and sits outside the delivery path: a store
// failure never affects callback dispatch.
package history

import (
	"context"
	"time"

	"github.com/hokumski/profilecallback/id"
)

// Entry is one recorded email change.
type Entry struct {
	// ID is the unique TypeID for this entry.
	ID id.ID `json:"id"`

	// UserID is the host identifier of the subject user.
	UserID string `json:"user_id"`

	// Email is the address the user changed to.
	Email string `json:"email"`

	// PreviousEmail is the address before the change, when known.
	PreviousEmail string `json:"previous_email,omitempty"`

	// EventKind names the lifecycle event that carried the change.
	EventKind string `json:"event_kind"`

	// At is when the change was observed, in UTC.
	At time.Time `json:"at"`
}

// ListOpts paginates history listing. A zero Limit means no limit.
type ListOpts struct {
	Offset int
	Limit  int
}

// Store persists last-known emails and email-change history.
type Store interface {
	// SetLastEmail records the most recent email for a user.
	SetLastEmail(ctx context.Context, userID, email string) error

	// LastEmail returns the recorded email for a user, or
	// profilecallback.ErrLastEmailNotFound when none is recorded.
	LastEmail(ctx context.Context, userID string) (string, error)

	// AppendEmail appends one history entry for the entry's user.
	AppendEmail(ctx context.Context, e *Entry) error

	// ListEmails returns a user's entries newest-first.
	ListEmails(ctx context.Context, userID string, opts ListOpts) ([]*Entry, error)

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close closes the store.
	Close() error
}
