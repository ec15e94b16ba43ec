// Package scope abstracts the host's flat key/value configuration space
// for the listener. Values are read with a two-tier lookup: a direct key
// read first, then a fallback parse over raw property names for hosts
// whose configuration loader flattens hyphenated keys into the property
// name itself.
package scope

import (
	"sort"
	"strconv"
	"strings"
)

// Scope is a read-only view of the listener's configuration block.
type Scope interface {
	// Get returns the value for a key, or "" when absent.
	Get(name string) string

	// PropertyNames returns every raw property name visible in the block.
	PropertyNames() []string
}

// Map is a Scope backed by a plain string map.
type Map map[string]string

// Get returns the value for a key, or "" when absent.
func (m Map) Get(name string) string { return m[name] }

// PropertyNames returns the map keys in sorted order.
func (m Map) PropertyNames() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// propertyPrefix is what one historical host version prepends to flattened
// listener property names.
const propertyPrefix = "kc.spi-eventsListener-"

// Lookup reads a named value from the scope. When the direct read comes
// back empty, the raw property names are scanned for the flattened form
// "kc.spi-eventsListener-<providerID>-<name>-<value>": the name/value pair
// is split at the first dash after stripping the known prefixes, and the
// "(semicolon)" placeholder in values is un-escaped back to ":".
func Lookup(sc Scope, providerID, name string) string {
	if v := sc.Get(name); v != "" {
		return v
	}

	for _, prop := range sc.PropertyNames() {
		p := strings.TrimPrefix(prop, propertyPrefix)
		p = strings.TrimPrefix(p, providerID+"-")

		// The value itself can contain dashes, so only the first one splits.
		key, value, ok := strings.Cut(p, "-")
		if !ok || key != name {
			continue
		}
		return strings.ReplaceAll(value, "(semicolon)", ":")
	}
	return ""
}

// LookupInt reads a named integer value, returning def when the value is
// absent or does not parse.
func LookupInt(sc Scope, providerID, name string, def int) int {
	v := Lookup(sc, providerID, name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
