package profilecallback

import "errors"

// Sentinel errors returned by listener operations.
var (
	// ErrNoUserLookup is returned when a Listener is created without a
	// user profile lookup.
	ErrNoUserLookup = errors.New("profilecallback: user lookup is required")

	// ErrLastEmailNotFound is returned when no last email is recorded
	// for a user.
	ErrLastEmailNotFound = errors.New("profilecallback: last email not found")

	// ErrStoreClosed is returned when a history store operation is
	// attempted after the store is closed.
	ErrStoreClosed = errors.New("profilecallback: history store is closed")
)
