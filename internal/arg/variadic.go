package arg

import (
	"reflect"

	"github.com/funvibe/pycall/internal/argkind"
)

// ArgsPack is the *args annotation family member (spec.md §3.2): a
// positional, variadic parameter whose bound-to list may only contain
// positional-only, non-optional, non-variadic entries with pairwise-unique
// names (spec.md §3.2 invariant (b)).
type ArgsPack[T any] struct {
	name    string
	values  []T
	boundTo []Traits
}

// Args constructs a *args annotation, optionally pre-bound with values.
func Args[T any](name string, values ...T) ArgsPack[T] {
	return ArgsPack[T]{name: name, values: values}
}

func (a ArgsPack[T]) ArgName() string       { return a.name }
func (a ArgsPack[T]) ArgKind() argkind.Kind { return argkind.POS | argkind.VAR }
func (a ArgsPack[T]) ArgType() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}
func (a ArgsPack[T]) HasValue() bool          { return len(a.values) > 0 }
func (a ArgsPack[T]) ArgValue() reflect.Value { return reflect.ValueOf(a.values) }
func (a ArgsPack[T]) BoundTo() []Traits       { return a.boundTo }
func (a ArgsPack[T]) Values() []T             { return a.values }

// Bind validates and appends to the bound-to list (spec.md §4.1: zero or
// more positional-only, non-optional, non-variadic values with pairwise
// unique names). Returns through the Traits interface per Traits.Bind; a
// caller that needs the concrete ArgsPack[T] back (e.g. to read Values())
// can type-assert the result.
func (a ArgsPack[T]) Bind(boundTo ...Traits) (Traits, error) {
	seen := make(map[string]bool, len(boundTo))
	for _, t := range boundTo {
		if t.ArgKind().Variadic() || t.ArgKind().Optional() || t.ArgKind().KeywordOnly() {
			return a, errBadArgsBinding(t)
		}
		if t.ArgName() != "" {
			if seen[t.ArgName()] {
				return a, errDuplicateBoundName(t.ArgName())
			}
			seen[t.ArgName()] = true
		}
	}
	a.boundTo = append(append([]Traits(nil), a.boundTo...), boundTo...)
	return a, nil
}

// KwargsPack is the **kwargs annotation family member (spec.md §3.2): a
// keyword, variadic parameter whose bound-to list may only contain keyword
// entries under the same pairwise-uniqueness rule.
type KwargsPack[T any] struct {
	name    string
	values  map[string]T
	boundTo []Traits
}

// Kwargs constructs a **kwargs annotation, optionally pre-bound with values.
func Kwargs[T any](name string, values map[string]T) KwargsPack[T] {
	if values == nil {
		values = map[string]T{}
	}
	return KwargsPack[T]{name: name, values: values}
}

func (a KwargsPack[T]) ArgName() string       { return a.name }
func (a KwargsPack[T]) ArgKind() argkind.Kind { return argkind.KW | argkind.VAR }
func (a KwargsPack[T]) ArgType() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}
func (a KwargsPack[T]) HasValue() bool          { return len(a.values) > 0 }
func (a KwargsPack[T]) ArgValue() reflect.Value { return reflect.ValueOf(a.values) }
func (a KwargsPack[T]) BoundTo() []Traits       { return a.boundTo }
func (a KwargsPack[T]) Values() map[string]T    { return a.values }

// Bind validates and appends to the bound-to list (spec.md §4.1: zero or
// more keyword, non-optional, non-variadic values with pairwise unique
// names). Returns through the Traits interface per Traits.Bind; a caller
// that needs the concrete KwargsPack[T] back (e.g. to read Values()) can
// type-assert the result.
func (a KwargsPack[T]) Bind(boundTo ...Traits) (Traits, error) {
	seen := make(map[string]bool, len(boundTo))
	for _, t := range boundTo {
		if t.ArgKind().Variadic() || t.ArgKind().Optional() || !t.ArgKind().KeywordOnly() {
			return a, errBadKwargsBinding(t)
		}
		if seen[t.ArgName()] {
			return a, errDuplicateBoundName(t.ArgName())
		}
		seen[t.ArgName()] = true
	}
	a.boundTo = append(append([]Traits(nil), a.boundTo...), boundTo...)
	return a, nil
}
