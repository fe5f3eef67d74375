package shtest

import (
	"fmt"
	"regexp"
)

// Func is a registered test function.
type Func func(*T)

// namePattern is the naming convention shared with script discovery.
var namePattern = regexp.MustCompile(`^test[A-Za-z0-9_]+$`)

// Entry is one registered test.
type Entry struct {
	Name string
	Fn   Func
}

// Registry is an ordered collection of test functions. Registration order is
// execution order.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add registers fn under name. The name must match ^test[A-Za-z0-9_]+$.
// Re-registering a name replaces the function but keeps its first position.
func (r *Registry) Add(name string, fn Func) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("test name %q does not match %s", name, namePattern)
	}
	if i, ok := r.index[name]; ok {
		r.entries[i].Fn = fn
		return nil
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Fn: fn})
	return nil
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns the registered tests in registration order.
func (r *Registry) Entries() []Entry {
	return r.entries
}
