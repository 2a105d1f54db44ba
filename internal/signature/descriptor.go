package signature

import (
	"fmt"
	"reflect"

	"github.com/funvibe/pycall/internal/arg"
	"github.com/funvibe/pycall/internal/argkind"
)

// Descriptor is the arg.Traits implementation for a parameter shape
// discovered from source rather than from a live call site: a name and a
// Kind, but no value to report through ArgValue. internal/sigscan builds
// one per parameter it finds in a target package's function signatures —
// the tool-assisted side of spec.md §6.2's collaborator contract, standing
// in for the annotated arg.Traits list a caller that does import pycall
// would write by hand.
type Descriptor struct {
	name string
	kind argkind.Kind
}

// NewDescriptor builds a Descriptor for a discovered parameter.
func NewDescriptor(name string, kind argkind.Kind) Descriptor {
	return Descriptor{name: name, kind: kind}
}

func (d Descriptor) ArgName() string       { return d.name }
func (d Descriptor) ArgKind() argkind.Kind { return d.kind }

// ArgType is always nil: static discovery knows a parameter's source type
// name as text (sigscan.ParamInfo.Type), not a reflect.Type, since the
// target package is never actually loaded as running Go code. canConvert
// treats a nil want type as unconstrained, so a Signature built purely from
// Descriptors still validates call shape (order, arity, names) without
// claiming a type guarantee it cannot back up.
func (d Descriptor) ArgType() reflect.Type { return nil }

func (d Descriptor) HasValue() bool { return false }

func (d Descriptor) ArgValue() reflect.Value {
	panic("signature: Descriptor has no value — it describes a parameter shape discovered from source, not a call site")
}

func (d Descriptor) BoundTo() []arg.Traits { return nil }

// Bind always fails: a Descriptor has no concrete value a bound-to entry
// could be validated against.
func (d Descriptor) Bind(boundTo ...arg.Traits) (arg.Traits, error) {
	return d, fmt.Errorf("signature: descriptor %q has no call site to bind against", d.name)
}
