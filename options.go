package profilecallback

import (
	"log/slog"
	"time"

	"github.com/hokumski/profilecallback/endpoint"
	"github.com/hokumski/profilecallback/history"
	"github.com/hokumski/profilecallback/observability"
	"github.com/hokumski/profilecallback/scope"
	"github.com/hokumski/profilecallback/user"
)

// Option configures a Listener instance.
type Option func(*Listener) error

// WithLogger sets the structured logger for the Listener instance.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Listener) error {
		l.logger = logger
		return nil
	}
}

// WithConfig replaces the listener configuration. It takes precedence
// over WithScope: when both are given, scope-derived settings are not
// applied and the scope only supplies the endpoint list.
func WithConfig(cfg Config) Option {
	return func(l *Listener) error {
		if cfg.ProviderID == "" {
			cfg.ProviderID = DefaultProviderID
		}
		l.config = cfg
		l.configSet = true
		return nil
	}
}

// WithUserLookup sets the host-side profile lookup. Required.
func WithUserLookup(users user.Lookup) Option {
	return func(l *Listener) error {
		l.users = users
		return nil
	}
}

// WithEndpoints sets the callback endpoint list explicitly, in delivery
// order.
func WithEndpoints(endpoints ...endpoint.Endpoint) Option {
	return func(l *Listener) error {
		l.endpoints = endpoints
		return nil
	}
}

// WithScope loads listener settings and, unless WithEndpoints was given,
// the callback endpoint list from the host configuration scope. Settings
// read from the scope apply only when WithConfig is absent; an explicit
// config always wins.
func WithScope(sc scope.Scope) Option {
	return func(l *Listener) error {
		l.scope = sc
		return nil
	}
}

// WithHistoryStore sets the store used for email-change tracking. Without
// a store the SaveLastEmail and SaveEmailHistory settings are inert.
func WithHistoryStore(s history.Store) Option {
	return func(l *Listener) error {
		l.history = s
		return nil
	}
}

// WithActionEnforcer sets the collaborator that pushes a required action
// onto users after an email change.
func WithActionEnforcer(e ActionEnforcer) Option {
	return func(l *Listener) error {
		l.enforcer = e
		return nil
	}
}

// WithMetrics enables metric recording.
func WithMetrics(m *observability.Metrics) Option {
	return func(l *Listener) error {
		l.metrics = m
		return nil
	}
}

// WithTracer enables tracing of callback deliveries.
func WithTracer(t *observability.Tracer) Option {
	return func(l *Listener) error {
		l.tracer = t
		return nil
	}
}

// WithNow overrides the clock used for payload timestamps and history
// entries. For tests.
func WithNow(now func() time.Time) Option {
	return func(l *Listener) error {
		l.now = now
		return nil
	}
}
