//go:build !windows

package pathsource

// Default returns the environment source for variable.
func Default(lookup LookupFunc, variable string) Source {
	return Env{Lookup: lookup, Var: variable}
}
