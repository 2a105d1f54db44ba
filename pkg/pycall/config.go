package pycall

import (
	"github.com/funvibe/pycall/internal/bind"
	"github.com/funvibe/pycall/internal/sigconfig"
)

// WithConfig rebuilds f's Defaults from nv.Defaults (each entry supplied by
// name, matched against f's optional parameters — only meaningful when f
// was built from an explicit annotated Signature, since a reflect-derived
// Func's parameters carry no names) and returns a Bound pre-filled from
// nv.Partial, ready for Call with the remaining arguments.
func (f *Func) WithConfig(nv sigconfig.NamedValues) (*Bound, error) {
	if len(nv.Defaults) > 0 {
		sources := make([]CallArg, 0, len(nv.Defaults))
		for name, v := range nv.Defaults {
			sources = append(sources, Named(name, v))
		}
		defaults, err := bind.NewDefaults(f.sig, toTraits(sources))
		if err != nil {
			return nil, err
		}
		f.defaults = defaults
	}

	b := f.Partial()
	if len(nv.Partial) == 0 {
		return b, nil
	}
	sources := make([]CallArg, 0, len(nv.Partial))
	for name, v := range nv.Partial {
		sources = append(sources, Named(name, v))
	}
	return b.Bind(sources...)
}

func toTraits(args []CallArg) []Traits {
	out := make([]Traits, len(args))
	for i, a := range args {
		if kw, ok := a.source.(bind.KwSource); ok {
			out[i] = kw.Value
		}
	}
	return out
}
