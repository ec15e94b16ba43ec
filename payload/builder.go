// Package payload builds the canonical JSON notification relayed to
// callback endpoints.
package payload

import (
	"context"
	"fmt"
	"time"

	"github.com/hokumski/profilecallback/event"
	"github.com/hokumski/profilecallback/strcase"
	"github.com/hokumski/profilecallback/user"
)

// dateFormat is the fixed UTC layout of the Date field.
const dateFormat = "2006-01-02 15:04:05"

// Profile attribute names read when seeding the optional payload fields.
const (
	attrLocale = "locale"
	attrPhone  = "phone"
)

// Builder produces notification payloads for lifecycle events.
type Builder struct {
	users user.Lookup
	now   func() time.Time
}

// NewBuilder creates a payload builder over the given profile lookup.
// A nil now defaults to time.Now.
func NewBuilder(users user.Lookup, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{users: users, now: now}
}

// Build returns the canonical JSON payload for one event, for example:
//
//	{"Type":"UPDATE_PROFILE","Id":"b14bd453-...","Date":"2026-08-31 10:00:00",
//	 "Email":"user@server.com","FirstName":"First","LastName":"Last"}
//
// When the subject cannot be resolved (e.g. the account is already
// deleted), only Type, Id and IsUserMissing are emitted. Event details can
// override the profile values through "updated_*" keys; Locale and Phone
// appear only when their final value is non-empty.
func (b *Builder) Build(ctx context.Context, kind event.Kind, userID string, details map[string]string) (string, error) {
	var w objectWriter
	w.Field("Type", string(kind))
	w.Field("Id", userID)

	profile, err := b.users.Lookup(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("payload: lookup user %s: %w", userID, err)
	}
	if profile == nil {
		// The ID is everything we can still report.
		w.Field("IsUserMissing", "true")
		return w.String(), nil
	}

	w.Field("Date", b.now().UTC().Format(dateFormat))
	w.Field("Email", profile.Email)
	w.Field("FirstName", override(details, "FirstName", profile.FirstName))
	w.Field("LastName", override(details, "LastName", profile.LastName))
	if locale := override(details, "Locale", profile.Attribute(attrLocale)); locale != "" {
		w.Field("Locale", locale)
	}
	if phone := override(details, "Phone", profile.Attribute(attrPhone)); phone != "" {
		w.Field("Phone", phone)
	}
	return w.String(), nil
}

// override applies the event-detail override for a payload field. The
// detail key is derived as "updated_" + snake_case(field) and wins over
// the profile value whenever present, even when empty.
func override(details map[string]string, field, current string) string {
	if v, ok := details["updated_"+strcase.ToSnakeCase(field)]; ok {
		return v
	}
	return current
}
