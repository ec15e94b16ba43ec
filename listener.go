package profilecallback

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hokumski/profilecallback/dispatch"
	"github.com/hokumski/profilecallback/endpoint"
	"github.com/hokumski/profilecallback/event"
	"github.com/hokumski/profilecallback/history"
	"github.com/hokumski/profilecallback/id"
	"github.com/hokumski/profilecallback/observability"
	"github.com/hokumski/profilecallback/payload"
	"github.com/hokumski/profilecallback/scope"
	"github.com/hokumski/profilecallback/strcase"
	"github.com/hokumski/profilecallback/user"
)

// Listener observes identity lifecycle events and relays canonical JSON
// notifications to the configured callback endpoints.
//
// The endpoint list is resolved once in New and read-only afterwards, so
// a single Listener is safe for concurrent event handling.
type Listener struct {
	config    Config
	configSet bool
	scope     scope.Scope
	endpoints []endpoint.Endpoint
	users     user.Lookup
	history   history.Store
	enforcer  ActionEnforcer

	builder    *payload.Builder
	validator  *payload.Validator
	dispatcher *dispatch.Dispatcher

	metrics *observability.Metrics
	tracer  *observability.Tracer
	logger  *slog.Logger
	now     func() time.Time
}

// ActionEnforcer pushes a required action onto a user after an email
// change is observed.
type ActionEnforcer interface {
	EnforceAction(ctx context.Context, userID, action string) error
}

// ActionEnforcerFunc adapts a function to the ActionEnforcer interface.
type ActionEnforcerFunc func(ctx context.Context, userID, action string) error

// EnforceAction calls f.
func (f ActionEnforcerFunc) EnforceAction(ctx context.Context, userID, action string) error {
	return f(ctx, userID, action)
}

// New creates a new Listener with the given options. A user lookup is
// required; everything else has defaults.
func New(opts ...Option) (*Listener, error) {
	l := &Listener{
		config: DefaultConfig(),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	if l.users == nil {
		return nil, ErrNoUserLookup
	}

	if l.scope != nil {
		// An explicit WithConfig wins over scope-derived settings.
		if !l.configSet {
			l.config = ConfigFromScope(l.scope)
		}
		if l.endpoints == nil {
			l.endpoints = endpoint.Load(l.scope, l.config.ProviderID, l.logger)
		}
	}

	l.wireServices()
	return l, nil
}

// wireServices initializes the internal services after options have been
// applied.
func (l *Listener) wireServices() {
	l.builder = payload.NewBuilder(l.users, l.now)
	l.validator = payload.NewValidator()
	l.dispatcher = dispatch.New(l.logger, l.metrics, l.tracer)
}

// Endpoints returns a copy of the configured callback endpoints in
// delivery order.
func (l *Listener) Endpoints() []endpoint.Endpoint {
	return append([]endpoint.Endpoint(nil), l.endpoints...)
}

// OnEvent handles one user lifecycle event. Delivery is best-effort: all
// failures are logged and swallowed, never surfaced to the host.
func (l *Listener) OnEvent(ctx context.Context, evt *event.Event) {
	kind, ok := classify(evt)
	if !ok {
		return
	}

	l.logger.DebugContext(ctx, "logged lifecycle event",
		"kind", kind,
		"user_id", evt.UserID,
		"details", strcase.ToJSONString(evt.Details),
	)

	l.deliver(ctx, kind, evt.UserID, evt.Details)
	l.trackEmailChange(ctx, evt)
}

// OnAdminEvent translates administrative operations into lifecycle
// notifications. Only deletion of a user resource is relayed: it becomes
// a DELETE_ACCOUNT notification with no detail overrides. The resource
// path must have exactly two segments with a UUID in the second.
func (l *Listener) OnAdminEvent(ctx context.Context, ae *event.AdminEvent) {
	if ae.ResourceType != event.ResourceUser {
		return
	}

	parts := strings.Split(ae.ResourcePath, "/")
	if len(parts) != 2 {
		return
	}
	userID := parts[1]
	if _, err := uuid.Parse(userID); err != nil {
		l.logger.ErrorContext(ctx, "resource path segment is not a UUID", "segment", userID)
		return
	}

	if ae.OperationType != event.OperationDelete {
		return
	}

	l.logger.DebugContext(ctx, "logged admin delete on user", "user_id", userID)
	l.deliver(ctx, event.KindDeleteAccount, userID, nil)
}

// classify maps a host event onto the payload type to relay, or reports
// that the event is ignored.
func classify(evt *event.Event) (event.Kind, bool) {
	switch evt.Kind {
	case event.KindUpdateProfile, event.KindVerifyEmail, event.KindDeleteAccount:
		return evt.Kind, true
	case event.KindCustomRequiredAction:
		// Only one custom action is relayed.
		if evt.Details[event.DetailCustomRequiredAction] == string(event.KindVerifyEmailWithCode) {
			return event.KindVerifyEmailWithCode, true
		}
		return "", false
	default:
		return "", false
	}
}

// deliver builds the payload for one event and fans it out to every
// configured endpoint.
func (l *Listener) deliver(ctx context.Context, kind event.Kind, userID string, details map[string]string) {
	if l.metrics != nil {
		l.metrics.RecordEvent(string(kind))
	}

	body, err := l.builder.Build(ctx, kind, userID, details)
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to build callback payload",
			"kind", kind, "user_id", userID, "error", err)
		return
	}

	if l.config.ValidatePayloads {
		if err := l.validator.Validate(body); err != nil {
			l.logger.ErrorContext(ctx, "payload failed schema validation",
				"kind", kind, "user_id", userID, "error", err)
			return
		}
	}

	outcome := l.dispatcher.Dispatch(ctx, l.endpoints, body)
	if outcome != "" {
		l.logger.DebugContext(ctx, "callback outcome", "outcome", outcome)
	}
}

// trackEmailChange records an observed email change in the history store
// and enforces the configured required action. Best-effort: errors are
// logged, never propagated.
func (l *Listener) trackEmailChange(ctx context.Context, evt *event.Event) {
	updated := evt.Details[event.DetailUpdatedEmail]
	if updated == "" {
		return
	}

	if l.enforcer != nil && l.config.EnforcedEmailChangeAction != "" {
		if err := l.enforcer.EnforceAction(ctx, evt.UserID, l.config.EnforcedEmailChangeAction); err != nil {
			l.logger.ErrorContext(ctx, "failed to enforce required action",
				"user_id", evt.UserID, "action", l.config.EnforcedEmailChangeAction, "error", err)
		}
	}

	if l.history == nil {
		return
	}

	if l.config.SaveLastEmail {
		if err := l.history.SetLastEmail(ctx, evt.UserID, updated); err != nil {
			l.logger.ErrorContext(ctx, "failed to save last email", "user_id", evt.UserID, "error", err)
		}
	}

	if l.config.SaveEmailHistory {
		entry := &history.Entry{
			ID:            id.NewHistoryID(),
			UserID:        evt.UserID,
			Email:         updated,
			PreviousEmail: evt.Details[event.DetailPreviousEmail],
			EventKind:     string(evt.Kind),
			At:            l.now().UTC(),
		}
		if err := l.history.AppendEmail(ctx, entry); err != nil {
			l.logger.ErrorContext(ctx, "failed to append email history", "user_id", evt.UserID, "error", err)
		}
	}
}
