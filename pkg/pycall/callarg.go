package pycall

import (
	"reflect"

	"github.com/funvibe/pycall/internal/arg"
	"github.com/funvibe/pycall/internal/bind"
)

// CallArg is one call-site argument: a plain positional value, a named
// keyword value, or a spread of a positional/keyword pack (spec.md §4.6).
type CallArg struct{ source bind.Source }

// Arg wraps a bare value as a positional call-site argument.
func Arg(v any) CallArg { return CallArg{bind.PosSource{Value: arg.Plain(v)}} }

// Named wraps v as a keyword call-site argument under name.
func Named(name string, v any) CallArg {
	return CallArg{bind.KwSource{Name: name, Value: arg.Kw(name, v)}}
}

// Spread unpacks a slice or array as a run of trailing positional arguments
// (spec.md §4.6's `*iterable`).
func Spread(iterable any) CallArg {
	return CallArg{bind.PosPackSource{Iterable: reflect.ValueOf(iterable)}}
}

// SpreadKw unpacks a string-keyed mapping (or a pack.KeyValuer) as a run of
// trailing keyword arguments (spec.md §4.6's `**mapping`).
func SpreadKw(mapping any) CallArg {
	return CallArg{bind.KwPackSource{Mapping: reflect.ValueOf(mapping)}}
}

func toSources(args []CallArg) []bind.Source {
	sources := make([]bind.Source, len(args))
	for i, a := range args {
		sources[i] = a.source
	}
	return sources
}
