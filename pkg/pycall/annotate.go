// Package pycall is the public surface of the calling-convention engine:
// building a Signature from either an annotated parameter list or a plain
// Go function's reflect.Type, binding call-site arguments against it, and
// carrying partial applications, compositions, and range adaptors over the
// result (spec.md §6).
package pycall

import (
	"github.com/funvibe/pycall/internal/arg"
	"github.com/funvibe/pycall/internal/argkind"
	"github.com/funvibe/pycall/internal/signature"
)

// Traits is the parameter-introspection interface every annotation
// constructor below produces (spec.md §4.1's ArgTraits).
type Traits = arg.Traits

// Sig is a parsed, canonicalized parameter list (spec.md §3.3).
type Sig = signature.Signature

// Plain wraps a bare value as an anonymous, required positional-only
// parameter — the default classification for any value that isn't itself an
// annotation.
func Plain[T any](v T) Traits { return arg.Plain(v) }

// Pos annotates v as positional. An empty name yields positional-only; a
// non-empty name yields positional-or-keyword.
func Pos[T any](name string, v T) Traits { return arg.Pos(name, v) }

// Kw annotates v as keyword-only under name.
func Kw[T any](name string, v T) Traits { return arg.Kw(name, v) }

// Opt marks an already-built annotation as carrying a default elsewhere
// (spec.md's `.opt` trailing modifier). T must match the original
// annotation's value type.
func Opt[T any](a arg.Arg[T]) Traits { return a.Opt() }

// VarArgs annotates a *args parameter, optionally pre-populated.
func VarArgs[T any](name string, values ...T) Traits { return arg.Args(name, values...) }

// VarKwargs annotates a **kwargs parameter, optionally pre-populated.
func VarKwargs[T any](name string, values map[string]T) Traits { return arg.Kwargs(name, values) }

// Generic is an as-yet type-unfixed annotation (spec.md §4.1's
// "unconstrained type parameter" sentinel).
type Generic = arg.Generic

// NewGeneric constructs a Generic annotation of the given name and kind.
func NewGeneric(name string, kind argkind.Kind) Generic { return arg.NewGeneric(name, kind) }

// Fix concretises a Generic into an ordinary Traits carrying v.
func Fix[T any](g Generic, v T) (Traits, error) {
	fixed, err := arg.BindType(g, v)
	return fixed, err
}

// NewSignature parses an explicit annotation list into a Signature (spec.md
// §4.2's closed construction checks).
func NewSignature(params ...Traits) (*Sig, error) {
	return signature.From(params)
}
