// Package user defines the host-side profile lookup the payload builder
// consumes. The host owns the user model; the listener only reads the
// fields that end up in notifications.
package user

import "context"

// Profile is the subset of the host's user model needed for notifications.
type Profile struct {
	Email     string
	FirstName string
	LastName  string

	// Attributes holds multi-valued custom attributes such as "locale"
	// and "phone".
	Attributes map[string][]string
}

// Attribute returns the first value of a multi-valued attribute, or ""
// when the attribute is absent or empty.
func (p *Profile) Attribute(name string) string {
	if vs := p.Attributes[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Lookup resolves user profiles by host user ID. Implementations return
// (nil, nil) when the user does not exist, e.g. an already-deleted account.
type Lookup interface {
	Lookup(ctx context.Context, userID string) (*Profile, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, userID string) (*Profile, error)

// Lookup calls f.
func (f LookupFunc) Lookup(ctx context.Context, userID string) (*Profile, error) {
	return f(ctx, userID)
}
