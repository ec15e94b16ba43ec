package scope

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromFile loads a flat YAML mapping of configuration keys to scalar
// values and returns it as a Map scope. Non-string scalars (e.g. numeric
// timeouts) are read as their string form. Used for running the listener
// outside a host that supplies its own configuration space.
func FromFile(path string) (Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scope: read %s: %w", path, err)
	}

	m := make(map[string]string)
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("scope: parse %s: %w", path, err)
	}
	return Map(m), nil
}
