package gocalc

import "sort"

// Env maps variable names to values. It is not safe for concurrent use;
// Session serialises access when shared.
type Env struct {
	vars map[string]float64
}

func NewEnv() *Env {
	return &Env{
		vars: make(map[string]float64),
	}
}

func (e *Env) Get(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name, replacing any previous binding.
func (e *Env) Set(name string, v float64) {
	e.vars[name] = v
}

func (e *Env) Len() int {
	return len(e.vars)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the current bindings.
func (e *Env) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}
