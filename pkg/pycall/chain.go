package pycall

import "fmt"

// Chain composes a sequence of functions left to right, each stage invoked
// via Def/Call so the compose-time validation described in SPEC_FULL.md's
// collaborator contract (a non-invocable link is rejected immediately,
// rather than surfacing as a confusing failure deep inside Invoke) happens
// for every stage, not just the first:
//
//	NewChain(f, g, h).Invoke(x, y) == h(g(f(x, y)))
//
// (spec.md §6.2's function `chain`; spec.md §8 scenario 2 requires f — the
// function given to NewChain — to run first.) Only the first stage may take
// more than one argument; every later stage consumes the single value the
// previous stage produced.
type Chain struct {
	first *Func
	rest  []*Func
}

// NewChain builds a Chain from first (arbitrary arity) followed by rest
// (each consuming the previous stage's single result). Each stage is
// introspected via Def immediately, so a non-func value or an
// unintrospectable signature is rejected at construction, not at Invoke
// time.
func NewChain(first any, rest ...any) (Chain, error) {
	f, err := Def(first)
	if err != nil {
		return Chain{}, fmt.Errorf("pycall: chain stage 0: %w", err)
	}
	c := Chain{first: f}
	for i, r := range rest {
		c, err = c.then(r, i+1)
		if err != nil {
			return Chain{}, err
		}
	}
	return c, nil
}

// Then appends g as the new last stage of the chain (the function most
// recently appended runs last, after everything already present).
func (c Chain) Then(g any) (Chain, error) {
	return c.then(g, len(c.rest)+1)
}

func (c Chain) then(g any, stage int) (Chain, error) {
	fn, err := Def(g)
	if err != nil {
		return Chain{}, fmt.Errorf("pycall: chain stage %d: %w", stage, err)
	}
	return Chain{first: c.first, rest: append(append([]*Func{}, c.rest...), fn)}, nil
}

// Invoke runs the composed chain left to right: first(args...), then every
// later stage applied to the previous stage's single result, in the order
// they were added.
func (c Chain) Invoke(args ...any) (any, error) {
	if c.first == nil {
		return nil, fmt.Errorf("pycall: empty chain has no identity function")
	}

	callArgs := make([]CallArg, len(args))
	for i, a := range args {
		callArgs[i] = Arg(a)
	}

	out, err := c.first.Call(callArgs...)
	if err != nil {
		return nil, err
	}
	v, err := single(out)
	if err != nil {
		return nil, fmt.Errorf("pycall: chain stage 0: %w", err)
	}

	for i, fn := range c.rest {
		out, err := fn.Call(Arg(v))
		if err != nil {
			return nil, err
		}
		v, err = single(out)
		if err != nil {
			return nil, fmt.Errorf("pycall: chain stage %d: %w", i+1, err)
		}
	}
	return v, nil
}

func single(out []any) (any, error) {
	if len(out) != 1 {
		return nil, fmt.Errorf("produced %d results, want exactly 1 to feed the next stage", len(out))
	}
	return out[0], nil
}
