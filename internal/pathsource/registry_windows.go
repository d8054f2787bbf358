//go:build windows

package pathsource

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const userEnvironmentKey = `Environment`

// Registry reads a path-list value from the current user's persistent
// environment, which is what new shells see on Windows.
type Registry struct {
	Value string
}

// Entries returns the split registry value. A missing key or value yields an
// empty list.
func (r Registry) Entries() ([]string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, userEnvironmentKey, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open HKCU\\%s: %w", userEnvironmentKey, err)
	}
	defer key.Close()
	name := r.Value
	if name == "" {
		name = "Path"
	}
	raw, _, err := key.GetStringValue(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read HKCU\\%s\\%s: %w", userEnvironmentKey, name, err)
	}
	return Split(raw), nil
}

// Default returns the registry source for variable. The lookup is unused on
// Windows because the process environment is not authoritative there.
func Default(_ LookupFunc, variable string) Source {
	return Registry{Value: variable}
}
