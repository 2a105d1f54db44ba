package signature

import "reflect"

// PartialEntry carries one already-bound source argument's target index,
// the (possibly empty) name under which it was supplied, and the value
// (spec.md §3.3).
type PartialEntry struct {
	Index int
	Name  string
	Value reflect.Value
}

// Partial owns the values bound to a subset of an enclosing Signature's
// parameters. Its Sig field is the *original* (unmarked) signature: the
// indices embedded in Entries must remain stable across any transformation
// that preserves the signature's shape (spec.md §9's "intrusive state"
// note), so .bind(...) always produces a new Partial with fresh entries
// rather than mutating this one.
type Partial struct {
	Sig     *Signature
	Entries []PartialEntry
	byIndex map[int]PartialEntry
}

// NewPartial wraps a pre-validated entry list against sig. Callers are
// expected to be package bind's constructor/merge-operator code, which has
// already enforced spec.md §4.3/§4.4's constraints (no variadic sources, no
// duplicate targets).
func NewPartial(sig *Signature, entries []PartialEntry) *Partial {
	p := &Partial{Sig: sig, Entries: entries, byIndex: make(map[int]PartialEntry, len(entries))}
	for _, e := range entries {
		p.byIndex[e.Index] = e
	}
	return p
}

// Get returns the partial value bound to parameter index, if any.
func (p *Partial) Get(index int) (PartialEntry, bool) {
	if p == nil {
		return PartialEntry{}, false
	}
	e, ok := p.byIndex[index]
	return e, ok
}

// Covers reports whether index has a partial binding.
func (p *Partial) Covers(index int) bool {
	_, ok := p.Get(index)
	return ok
}

// Empty reports whether no parameters are bound yet.
func (p *Partial) Empty() bool { return p == nil || len(p.Entries) == 0 }

// Unbind returns a fresh Partial over the same signature with no bindings
// (spec.md §6.1's `.unbind()`).
func (p *Partial) Unbind() *Partial {
	return NewPartial(p.Sig, nil)
}
