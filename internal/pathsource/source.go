// Package pathsource supplies the collaborators the editor talks to: where the
// initial search path comes from and whether a typed path exists.
package pathsource

import (
	"os"
	"path/filepath"
)

// Source returns the initial search path in order.
type Source interface {
	Entries() ([]string, error)
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Env reads a path-list variable from the environment.
type Env struct {
	Lookup LookupFunc
	Var    string
}

// Entries splits the variable on the platform separator. An unset or empty
// variable yields an empty list.
func (e Env) Entries() ([]string, error) {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	raw, ok := lookup(e.varName())
	if !ok {
		return nil, nil
	}
	return Split(raw), nil
}

func (e Env) varName() string {
	if e.Var == "" {
		return "PATH"
	}
	return e.Var
}

// Split breaks a path-list string into entries. Empty segments are kept:
// on POSIX systems they name the current directory, and dropping them would
// change the variable even when nothing was edited.
func Split(raw string) []string {
	return filepath.SplitList(raw)
}

// FSProbe checks existence against the real filesystem.
type FSProbe struct{}

// Exists reports whether path can be stat'ed.
func (FSProbe) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
