package endpoint

import (
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/hokumski/profilecallback/scope"
)

// MaxPositional is the highest numeric postfix probed when scanning for
// positionally-numbered callback blocks.
const MaxPositional = 10

// Configuration keys, suffixed with "" (single-endpoint mode) or a
// position number "1".."10".
const (
	keyCallbackTo      = "callbackTo"
	keyTimeout         = "timeout"
	keyAuthHeaderName  = "authHeaderName"
	keyAuthHeaderValue = "authHeaderValue"
)

// Load resolves the ordered callback endpoint list from the configuration
// scope. An unsuffixed "callbackTo" block takes precedence and yields a
// single endpoint; otherwise positions 1..MaxPositional are scanned in
// order, stopping at the first position with no callbackTo value. A gap
// terminates the scan even when later positions exist, so insertion order
// is always delivery order.
//
// A present-but-malformed unsuffixed URL is logged, dropped, and falls
// through to positional scanning.
func Load(sc scope.Scope, providerID string, logger *slog.Logger) []Endpoint {
	if logger == nil {
		logger = slog.Default()
	}

	if ep, ok := load(sc, providerID, "", logger); ok {
		logger.Info("found simple configuration with one callback", "url", ep.URL)
		return []Endpoint{ep}
	}

	var endpoints []Endpoint
	for i := 1; i <= MaxPositional; i++ {
		ep, ok := load(sc, providerID, strconv.Itoa(i), logger)
		if !ok {
			break
		}
		logger.Info("found callback configuration", "position", i, "url", ep.URL)
		endpoints = append(endpoints, ep)
	}
	return endpoints
}

// load reads one callback block. It reports ok=false both when the block
// is absent and when its URL is malformed; a partial config is never kept.
func load(sc scope.Scope, providerID, postfix string, logger *slog.Logger) (Endpoint, bool) {
	raw := scope.Lookup(sc, providerID, keyCallbackTo+postfix)
	if raw == "" {
		return Endpoint{}, false
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Scheme == "" {
		logger.Error("malformed callback URL, dropping endpoint", "url", raw)
		return Endpoint{}, false
	}
	ep := Endpoint{URL: u.String()}

	// Only a positive integer counts as a timeout; anything else means
	// the transport default.
	if ms := scope.LookupInt(sc, providerID, keyTimeout+postfix, 0); ms > 0 {
		ep.Timeout = time.Duration(ms) * time.Millisecond
	}

	// An empty header value can be legal, so only the name gates this.
	if name := scope.Lookup(sc, providerID, keyAuthHeaderName+postfix); name != "" {
		ep.AuthHeaderName = name
		ep.AuthHeaderValue = scope.Lookup(sc, providerID, keyAuthHeaderValue+postfix)
	}

	return ep, true
}
