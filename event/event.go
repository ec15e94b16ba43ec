// Package event defines the host lifecycle events observed by the listener.
package event

// Kind identifies a lifecycle event variant. The values double as the
// "Type" field of the notification payload.
type Kind string

// Lifecycle event kinds relayed to callback endpoints.
const (
	KindUpdateProfile        Kind = "UPDATE_PROFILE"
	KindVerifyEmail          Kind = "VERIFY_EMAIL"
	KindDeleteAccount        Kind = "DELETE_ACCOUNT"
	KindCustomRequiredAction Kind = "CUSTOM_REQUIRED_ACTION"

	// KindVerifyEmailWithCode is the only custom required action that is
	// relayed; it appears as the detail value of DetailCustomRequiredAction
	// and becomes the payload Type.
	KindVerifyEmailWithCode Kind = "VERIFY_EMAIL_WITH_CODE"
)

// Detail keys the host attaches to lifecycle events.
const (
	DetailCustomRequiredAction = "custom_required_action"
	DetailUpdatedEmail         = "updated_email"
	DetailPreviousEmail        = "previous_email"
)

// Event is a user-initiated lifecycle event delivered by the host.
type Event struct {
	// Kind is the host event type.
	Kind Kind

	// UserID is the host identifier of the subject user.
	UserID string

	// Details holds event-specific key/value pairs, including the
	// "updated_*" override fields consumed by the payload builder.
	Details map[string]string
}

// Admin event resource and operation types recognized by the listener.
const (
	ResourceUser    = "USER"
	OperationDelete = "DELETE"
)

// AdminEvent is an administrative operation delivered by the host's admin
// event source.
type AdminEvent struct {
	// ResourceType names the affected resource class, e.g. "USER".
	ResourceType string

	// OperationType names the operation, e.g. "DELETE".
	OperationType string

	// ResourcePath addresses the affected resource, e.g.
	// "users/3fa85f64-5717-4562-b3fc-2c963f66afa6".
	ResourcePath string
}
