// Package arg implements the Arg<Name,Type> annotation family from spec.md
// §3.2/§4.1: value-carrying wrappers tagging a Go value with a parameter
// name, kind, and (once bound) a list of already-bound values.
//
// Go has no compile-time string literals usable as type parameters, so the
// "Name" half of Arg<Name,Type> is carried as an ordinary struct field set
// by the constructor, not as a type parameter — only the value type is
// generic. The distinction between a positional-only parameter and a
// positional-or-keyword one is carried by the name: an empty name denotes
// the anonymous positional-only parameter of spec.md §3.2; a non-empty name
// on a POS-kind parameter makes it reachable by keyword too, the same way a
// plain Python parameter is addressable either way.
package arg

import (
	"fmt"
	"reflect"

	"github.com/funvibe/pycall/internal/argkind"
	"github.com/funvibe/pycall/internal/sigconfig"
)

// Traits is the polymorphic dispatch point for parameter introspection
// (spec.md §4.1's ArgTraits). Every annotation wrapper, and the default
// wrapping of a plain Go value, implements it.
type Traits interface {
	// ArgName is the parameter name ("" for an anonymous positional-only
	// parameter).
	ArgName() string
	// ArgKind is the four-bit classification.
	ArgKind() argkind.Kind
	// ArgType is the underlying value's static type.
	ArgType() reflect.Type
	// HasValue reports whether a value has been bound (aggregate-initialized
	// at a call site) into this wrapper.
	HasValue() bool
	// ArgValue returns the bound value; HasValue must be true.
	ArgValue() reflect.Value
	// BoundTo returns the ordered sequence of values already assigned to
	// this parameter through prior .bind(...) calls (spec.md glossary).
	BoundTo() []Traits
	// Bind records boundTo as additional prior .bind(...) assignments,
	// validating them against this parameter's own kind (spec.md §4.1),
	// and returns the updated wrapper through the Traits interface so
	// every annotation family member — Arg, ArgsPack, KwargsPack — is
	// reachable through one polymorphic call, per spec.md §4.1's ArgTraits
	// being "the" dispatch point for parameter introspection and binding.
	Bind(boundTo ...Traits) (Traits, error)
}

// Arg is the generic value-carrying annotation wrapper. The zero value is
// not meaningful; use the constructors below.
type Arg[T any] struct {
	name     string
	kind     argkind.Kind
	value    T
	hasValue bool
	boundTo  []Traits
}

// Plain wraps a bare, unannotated value as an anonymous positional-only,
// required parameter — the default ArgTraits classification of spec.md §4.1
// for any value that isn't itself an annotation wrapper.
func Plain[T any](v T) Arg[T] {
	return Arg[T]{kind: argkind.POS, value: v, hasValue: true}
}

// Pos constructs a positional annotation. An empty name yields an anonymous
// positional-only parameter; a non-empty name yields one reachable by
// keyword too (positional-or-keyword, spec.md §3.3(a)).
func Pos[T any](name string, v T) Arg[T] {
	return Arg[T]{name: name, kind: argkind.POS, value: v, hasValue: true}
}

// Kw constructs a keyword-only annotation. name must be non-empty.
func Kw[T any](name string, v T) Arg[T] {
	return Arg[T]{name: name, kind: argkind.KW, value: v, hasValue: true}
}

// Opt marks the receiver as carrying a default (spec.md's `.opt` trailing
// modifier). It is only legal to call on a wrapper that does not already
// carry VAR, matching the §4.1 rule that a transition may only add a
// modifier, never remove one, and optional + variadic is nonsensical.
func (a Arg[T]) Opt() Arg[T] {
	a.kind |= argkind.OPT
	return a
}

// AsKw recasts a positional annotation as keyword-only, recording name if it
// was previously anonymous. This is the `.kw` trailing-modifier transition.
func (a Arg[T]) AsKw(name string) Arg[T] {
	if a.name == "" {
		a.name = name
	}
	a.kind = (a.kind &^ argkind.POS) | argkind.KW
	return a
}

// Validate checks the name invariants of spec.md §3.2: legal identifier
// shape, non-empty for keyword parameters.
func (a Arg[T]) Validate() error {
	if !sigconfig.ValidName(a.name) {
		return fmt.Errorf("arg: invalid parameter name %q", a.name)
	}
	if a.kind.KeywordOnly() && a.name == "" {
		return fmt.Errorf("arg: keyword parameter must have a name")
	}
	return nil
}

func (a Arg[T]) ArgName() string        { return a.name }
func (a Arg[T]) ArgKind() argkind.Kind  { return a.kind }
func (a Arg[T]) ArgType() reflect.Type  { return reflect.TypeOf(a.value) }
func (a Arg[T]) HasValue() bool         { return a.hasValue }
func (a Arg[T]) ArgValue() reflect.Value {
	return reflect.ValueOf(a.value)
}
func (a Arg[T]) BoundTo() []Traits { return a.boundTo }

// Value returns the concrete T carried by the wrapper and whether one was
// ever set.
func (a Arg[T]) Value() (T, bool) { return a.value, a.hasValue }

// Bind attaches boundTo as the wrapper's bound-to list (spec.md glossary),
// recording prior .bind(...) assignments without touching the wrapper's own
// value or kind. A plain Arg never rejects a bound-to entry (unlike
// ArgsPack/KwargsPack, which enforce kind/uniqueness rules on theirs), so
// the error return is always nil; it exists to satisfy Traits.Bind.
func (a Arg[T]) Bind(boundTo ...Traits) (Traits, error) {
	a.boundTo = append(append([]Traits(nil), a.boundTo...), boundTo...)
	return a, nil
}
