package pycall

import (
	"github.com/funvibe/pycall/internal/bind"
	"github.com/funvibe/pycall/internal/signature"
)

// Bound is a function with zero or more of its parameters already fixed
// (spec.md §6.1's `.bind(...)` result). Its zero value is not meaningful;
// obtain one from Func.Partial or Bound.Bind.
type Bound struct {
	f       *Func
	partial *signature.Partial
}

// Partial returns f with no parameters yet fixed — the starting point for a
// chain of .Bind calls.
func (f *Func) Partial() *Bound {
	return &Bound{f: f, partial: signature.NewPartial(f.sig, nil)}
}

// Bind fixes additional scalar parameters (never *args/**kwargs) and
// returns a new Bound; the receiver is left untouched (spec.md §6.1's
// `.bind(...)` is non-mutating).
func (b *Bound) Bind(args ...CallArg) (*Bound, error) {
	p, err := bind.BindOperator(b.partial, toSources(args))
	if err != nil {
		return nil, err
	}
	return &Bound{f: b.f, partial: p}, nil
}

// Unbind returns a fresh Bound over the same underlying Func with every
// fixed parameter cleared (spec.md §6.1's `.unbind()`).
func (b *Bound) Unbind() *Bound {
	return &Bound{f: b.f, partial: b.partial.Unbind()}
}

// Signature returns the original (unmarked) Signature this partial binds
// against — its parameter indices remain stable across Bind/Unbind.
func (b *Bound) Signature() *signature.Signature { return b.f.sig }

// Call supplies the remaining arguments and invokes the underlying
// function, merging this Bound's fixed values with rest and any declared
// defaults (spec.md §4.4/§5).
func (b *Bound) Call(rest ...CallArg) ([]any, error) {
	parsed, err := bind.ParseArgs(toSources(rest))
	if err != nil {
		return nil, err
	}
	values, err := bind.Merge(b.f.sig, b.partial, b.f.defaults, parsed)
	if err != nil {
		return nil, err
	}
	return b.f.invoke(values)
}
