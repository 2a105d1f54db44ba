package arg

import (
	"fmt"
	"reflect"

	"github.com/funvibe/pycall/internal/argkind"
)

// Generic models the "unconstrained type parameter" sentinel of spec.md
// §4.1: an annotation whose type is not yet fixed. It is write-only — it
// carries a name and kind but no value — until BindType concretises it into
// an ordinary Arg[T] with the same modifiers.
//
// Open Question (spec.md §9) resolved: a Generic may only ever be fixed to
// one concrete type, once. A second BindType call on an already-fixed
// Generic is rejected rather than silently narrowing or widening the first
// choice — see DESIGN.md.
type Generic struct {
	name  string
	kind  argkind.Kind
	fixed reflect.Type
}

// NewGeneric constructs an unconstructible generic annotation for the given
// name and kind (POS or KW, optionally OPT).
func NewGeneric(name string, kind argkind.Kind) Generic {
	return Generic{name: name, kind: kind}
}

func (g Generic) ArgName() string        { return g.name }
func (g Generic) ArgKind() argkind.Kind  { return g.kind }
func (g Generic) ArgType() reflect.Type  { return g.fixed }
func (g Generic) HasValue() bool         { return false }
func (g Generic) ArgValue() reflect.Value {
	panic("arg: Generic has no value until BindType fixes a concrete type")
}
func (g Generic) BoundTo() []Traits { return nil }

// Bind is always an error: an unfixed Generic carries no type to validate a
// bound-to entry's value against, so it must be fixed via BindType first.
func (g Generic) Bind(boundTo ...Traits) (Traits, error) {
	return g, fmt.Errorf("arg: generic %q has no fixed type; call BindType before binding", g.name)
}

// BindType fixes the generic's concrete type exactly once, producing an
// ordinary Arg[T] carrying v as its value and the same name/kind modifiers.
// Calling BindType on an already-fixed Generic is an error: narrowing an
// already-bound generic to a subtype, or rebinding to an unrelated sibling
// type, are both refused — single assignment only (see DESIGN.md Open
// Questions).
func BindType[T any](g Generic, v T) (Arg[T], error) {
	if g.fixed != nil {
		return Arg[T]{}, fmt.Errorf("arg: generic %q already fixed to %s, cannot rebind", g.name, g.fixed)
	}
	return Arg[T]{name: g.name, kind: g.kind, value: v, hasValue: true}, nil
}
