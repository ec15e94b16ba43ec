package profilecallback

import (
	"strings"

	"github.com/hokumski/profilecallback/scope"
)

// DefaultProviderID is the listener's identifier in the host
// configuration space.
const DefaultProviderID = "profile-callback"

// Config holds the configuration for a Listener instance.
type Config struct {
	// ProviderID is the listener's provider identifier, used when
	// parsing flattened configuration property names.
	ProviderID string

	// EnforcedEmailChangeAction names a required action pushed onto a
	// user after an email change is observed. Empty disables enforcement.
	EnforcedEmailChangeAction string

	// SaveLastEmail records the most recent email per user in the
	// history store.
	SaveLastEmail bool

	// SaveEmailHistory appends a history entry on every observed email
	// change.
	SaveEmailHistory bool

	// ValidatePayloads checks every built payload against the canonical
	// schema before dispatch. A violation drops the event with an error
	// log instead of delivering a malformed notification.
	ValidatePayloads bool
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{ProviderID: DefaultProviderID}
}

// Configuration keys for listener settings beyond the endpoint blocks.
const (
	keyEnforcedAction   = "enforceRequiredActionOnEmailChange"
	keySaveLastEmail    = "saveLastEmail"
	keySaveEmailHistory = "saveEmailHistory"
	keyValidatePayloads = "validatePayloads"
)

// ConfigFromScope reads listener settings from the host configuration
// scope, on top of defaults. Settings resolve through the same two-tier
// lookup as the endpoint blocks, so flattened property names work here
// too.
func ConfigFromScope(sc scope.Scope) Config {
	cfg := DefaultConfig()
	cfg.EnforcedEmailChangeAction = scope.Lookup(sc, cfg.ProviderID, keyEnforcedAction)
	cfg.SaveLastEmail = strings.EqualFold(scope.Lookup(sc, cfg.ProviderID, keySaveLastEmail), "true")
	cfg.SaveEmailHistory = strings.EqualFold(scope.Lookup(sc, cfg.ProviderID, keySaveEmailHistory), "true")
	cfg.ValidatePayloads = strings.EqualFold(scope.Lookup(sc, cfg.ProviderID, keyValidatePayloads), "true")
	return cfg
}
