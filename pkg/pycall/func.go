package pycall

import (
	"fmt"
	"reflect"

	"github.com/funvibe/pycall/internal/arg"
	"github.com/funvibe/pycall/internal/argkind"
	"github.com/funvibe/pycall/internal/bind"
	"github.com/funvibe/pycall/internal/signature"
)

// Func is a Go function together with the Signature spec.md §4.1 says
// should be derived from it, and (once Def was given trailing defaults) the
// Defaults those trailing parameters carry.
type Func struct {
	fn       reflect.Value
	sig      *signature.Signature
	defaults *signature.Defaults
}

// Def introspects f (which must be a func value) and marks its trailing
// len(defaults) non-variadic parameters as optional, each defaulting to the
// corresponding element of defaults, in declaration order. Go's reflect
// parameters carry no names, so every parameter is anonymous (positional-
// only); a variadic Go func's trailing `...T` parameter becomes the *args
// slot.
func Def(f any, defaults ...any) (*Func, error) {
	fn := reflect.ValueOf(f)
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("pycall: Def requires a func, got %s", fn.Kind())
	}
	t := fn.Type()
	n := t.NumIn()
	nFixed := n
	if t.IsVariadic() {
		nFixed = n - 1
	}
	if len(defaults) > nFixed {
		return nil, fmt.Errorf("pycall: %d defaults given for a function with %d non-variadic parameters", len(defaults), nFixed)
	}

	params := make([]arg.Traits, n)
	firstOptional := nFixed - len(defaults)
	for i := 0; i < n; i++ {
		pt := t.In(i)
		kind := argkind.POS
		if t.IsVariadic() && i == n-1 {
			kind |= argkind.VAR
		} else if i >= firstOptional {
			kind |= argkind.OPT
		}
		params[i] = reflectParam{kind: kind, typ: pt}
	}

	sig, err := signature.From(params)
	if err != nil {
		return nil, err
	}

	var ds *signature.Defaults
	if len(defaults) > 0 {
		entries := make([]signature.DefaultEntry, len(defaults))
		for j, d := range defaults {
			idx := firstOptional + j
			entries[j] = signature.DefaultEntry{Index: idx, Value: reflect.ValueOf(d)}
		}
		ds = signature.NewDefaults(entries)
	}

	return &Func{fn: fn, sig: sig, defaults: ds}, nil
}

// Signature returns the derived Signature.
func (f *Func) Signature() *signature.Signature { return f.sig }

// Call binds args against f's Signature (spec.md §4.4's Merge, with no
// partial) and invokes f, returning its results as interface{} values.
func (f *Func) Call(args ...CallArg) ([]any, error) {
	parsed, err := bind.ParseArgs(toSources(args))
	if err != nil {
		return nil, err
	}
	values, err := bind.Merge(f.sig, nil, f.defaults, parsed)
	if err != nil {
		return nil, err
	}
	return f.invoke(values)
}

// invoke converts a Merge result (one reflect.Value per declared parameter,
// in declaration order) into the function's real argument list and calls
// it.
func (f *Func) invoke(values []reflect.Value) ([]any, error) {
	callValues := make([]reflect.Value, len(values))
	for i, v := range values {
		if i == f.sig.ArgsIndex {
			elemType := f.fn.Type().In(i).Elem()
			variadic := v.Interface().([]reflect.Value)
			slice := reflect.MakeSlice(f.fn.Type().In(i), len(variadic), len(variadic))
			for j, e := range variadic {
				slice.Index(j).Set(coerce(e, elemType))
			}
			callValues[i] = slice
			continue
		}
		callValues[i] = coerce(v, f.fn.Type().In(i))
	}

	out := f.fn.Call(callValues)
	results := make([]any, len(out))
	for i, r := range out {
		results[i] = r.Interface()
	}
	return results, nil
}

func coerce(v reflect.Value, want reflect.Type) reflect.Value {
	if !v.IsValid() {
		return reflect.Zero(want)
	}
	if v.Type() == want {
		return v
	}
	if v.Type().ConvertibleTo(want) {
		return v.Convert(want)
	}
	return v
}

// Call introspects f via Def and invokes it with args in one step — the
// free-function convenience form of spec.md §6.1's `Call(f, args...)`.
func Call(f any, args ...CallArg) ([]any, error) {
	fn, err := Def(f)
	if err != nil {
		return nil, err
	}
	return fn.Call(args...)
}

// reflectParam adapts a bare reflect.Type into arg.Traits for a parameter
// with no call-site value yet (used only during Signature construction).
type reflectParam struct {
	kind argkind.Kind
	typ  reflect.Type
}

func (p reflectParam) ArgName() string         { return "" }
func (p reflectParam) ArgKind() argkind.Kind    { return p.kind }
func (p reflectParam) ArgType() reflect.Type    { return p.typ }
func (p reflectParam) HasValue() bool           { return false }
func (p reflectParam) ArgValue() reflect.Value  { panic("pycall: reflected parameter carries no value") }
func (p reflectParam) BoundTo() []arg.Traits    { return nil }
func (p reflectParam) Validate() error          { return nil }
func (p reflectParam) Bind(boundTo ...arg.Traits) (arg.Traits, error) {
	return p, fmt.Errorf("pycall: reflected parameter %q has no call site to bind against", p.ArgName())
}
