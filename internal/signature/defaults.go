package signature

import "reflect"

// DefaultEntry carries one optional parameter's enclosing index, name, and
// default value (spec.md §3.3).
type DefaultEntry struct {
	Index int
	Name  string
	Value reflect.Value
}

// Defaults owns the default values for every optional parameter of an
// enclosing Signature. Construction (matching a by-name value list against
// the optional parameters' names) is implemented in package bind, which is
// the only place both Signature and the Bind machinery are available without
// an import cycle. That constructor runs its own name, optionality,
// duplicate, coverage and can_convert checks; it does not run the full Bind
// predicate battery.
type Defaults struct {
	Entries []DefaultEntry
	byIndex map[int]reflect.Value
}

// NewDefaults wraps a pre-validated entry list. Callers are expected to be
// package bind's constructor, which has already enforced spec.md §4.5's
// constraints.
func NewDefaults(entries []DefaultEntry) *Defaults {
	d := &Defaults{Entries: entries, byIndex: make(map[int]reflect.Value, len(entries))}
	for _, e := range entries {
		d.byIndex[e.Index] = e.Value
	}
	return d
}

// Get returns the default value bound to parameter index, if any.
func (d *Defaults) Get(index int) (reflect.Value, bool) {
	if d == nil {
		return reflect.Value{}, false
	}
	v, ok := d.byIndex[index]
	return v, ok
}

// Empty reports whether no defaults are carried.
func (d *Defaults) Empty() bool { return d == nil || len(d.Entries) == 0 }
