// Package id defines TypeID-based identifiers for listener-owned entities.
//
// IDs are K-sortable (UUIDv7-based), globally unique, and URL-safe in the
// format "prefix_suffix".
package id

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// Prefix identifies the entity type encoded in a TypeID.
type Prefix string

// Prefix constants for listener entity types.
const (
	// PrefixHistory identifies email-change history entries.
	PrefixHistory Prefix = "eh"
)

// ID is a prefix-qualified, globally unique, sortable identifier.
type ID struct {
	inner typeid.TypeID
	valid bool
}

// Nil is the zero-value ID.
var Nil ID

// New generates a new globally unique ID with the given prefix.
// It panics if prefix is not a valid TypeID prefix (programming error).
func New(prefix Prefix) ID {
	tid, err := typeid.Generate(string(prefix))
	if err != nil {
		panic(fmt.Sprintf("id: invalid prefix %q: %v", prefix, err))
	}
	return ID{inner: tid, valid: true}
}

// Parse parses a TypeID string (e.g. "eh_01h455vb4pex5vsknk084sn02q").
func Parse(s string) (ID, error) {
	if s == "" {
		return Nil, fmt.Errorf("id: parse %q: empty string", s)
	}
	tid, err := typeid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("id: parse %q: %w", s, err)
	}
	return ID{inner: tid, valid: true}, nil
}

// String returns the canonical "prefix_suffix" form, or "" for Nil.
func (id ID) String() string {
	if !id.valid {
		return ""
	}
	return id.inner.String()
}

// Prefix returns the entity type prefix encoded in the ID.
func (id ID) Prefix() Prefix {
	if !id.valid {
		return ""
	}
	return Prefix(id.inner.Prefix())
}

// IsNil reports whether the ID is the zero value.
func (id ID) IsNil() bool { return !id.valid }

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*id = Nil
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// NewHistoryID generates a new unique history entry ID.
func NewHistoryID() ID { return New(PrefixHistory) }

// ParseHistoryID parses a string and validates the history prefix.
func ParseHistoryID(s string) (ID, error) {
	parsed, err := Parse(s)
	if err != nil {
		return Nil, err
	}
	if parsed.Prefix() != PrefixHistory {
		return Nil, fmt.Errorf("id: expected prefix %q, got %q", PrefixHistory, parsed.Prefix())
	}
	return parsed, nil
}
