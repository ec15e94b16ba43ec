// Package endpoint defines webhook callback targets and resolves them from
// the listener's configuration scope.
package endpoint

import "time"

// Endpoint is one configured callback target. Endpoints are built once at
// listener initialization and are read-only afterwards, so a single list
// can be shared across concurrent event handling.
type Endpoint struct {
	// URL is the callback delivery URL.
	URL string

	// Timeout bounds both connection establishment and response read for
	// a delivery. Zero means the transport default applies.
	Timeout time.Duration

	// AuthHeaderName names an optional static header sent with every
	// delivery. When set, AuthHeaderValue is sent verbatim even if empty.
	AuthHeaderName string

	// AuthHeaderValue is the value of the static auth header.
	AuthHeaderValue string
}
