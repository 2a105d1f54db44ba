package bind

import (
	"fmt"

	"github.com/funvibe/pycall/internal/arg"
	"github.com/funvibe/pycall/internal/signature"
)

// NewDefaults matches a keyword-only value list against sig's optional
// parameters by name and builds the Signature's Defaults (spec.md §4.5).
// Every name must address a declared OPT parameter exactly once; every OPT
// parameter must receive exactly one default.
func NewDefaults(sig *signature.Signature, values []arg.Traits) (*signature.Defaults, error) {
	seen := make(map[int]bool, len(values))
	entries := make([]signature.DefaultEntry, 0, len(values))

	for _, v := range values {
		name := v.ArgName()
		if name == "" {
			return nil, fmt.Errorf("bind: default value must be supplied by name")
		}
		idx, ok := sig.Index(name)
		if !ok {
			return nil, newError(KindUnknownName, name, "no such parameter")
		}
		p := sig.Params[idx]
		if !p.Kind.Optional() {
			return nil, newError(KindUnknownName, name, "parameter is not optional, cannot carry a default")
		}
		if seen[idx] {
			return nil, newError(KindDuplicateValue, name, "duplicate default")
		}
		val := v.ArgValue()
		if err := canConvert(name, p.RType, val); err != nil {
			return nil, err
		}
		seen[idx] = true
		entries = append(entries, signature.DefaultEntry{Index: idx, Name: name, Value: val})
	}

	for i, p := range sig.Params {
		if p.Kind.Optional() && !seen[i] {
			return nil, newError(KindMissingRequired, p.Name, "optional parameter has no default")
		}
	}

	return signature.NewDefaults(entries), nil
}

// NewPartial classifies sources against sig and builds a fresh Partial
// (spec.md §3.3/§4.4). Variadic sources (positional/keyword packs) are
// rejected outright: a partial application only ever fixes scalar
// parameters, never *args/**kwargs (spec.md §6.1's `.bind(...)` contract).
func NewPartial(sig *signature.Signature, sources []Source) (*signature.Partial, error) {
	for _, s := range sources {
		switch s.(type) {
		case PosPackSource, KwPackSource:
			return nil, newError(KindOrder, "", "a partial binding cannot absorb a *args/**kwargs pack")
		}
	}
	args, err := ParseArgs(sources)
	if err != nil {
		return nil, err
	}
	return bindInto(sig, signature.NewPartial(sig, nil), args)
}

// BindOperator implements spec.md §6.1's `.bind(...)`: it classifies new
// sources against partial.Sig, checks them against both the signature and
// the entries partial already owns (so re-binding an already-bound
// parameter is a no_duplicate_args failure), and returns a new Partial with
// the union of old and new entries. partial itself is left untouched.
func BindOperator(partial *signature.Partial, sources []Source) (*signature.Partial, error) {
	for _, s := range sources {
		switch s.(type) {
		case PosPackSource, KwPackSource:
			return nil, newError(KindOrder, "", "a partial binding cannot absorb a *args/**kwargs pack")
		}
	}
	args, err := ParseArgs(sources)
	if err != nil {
		return nil, err
	}
	return bindInto(partial.Sig, partial, args)
}

// bindInto does the actual scalar-only classification shared by NewPartial
// and BindOperator: positional sources fill the next uncovered
// positional-capable parameter, keyword sources fill by name, and every
// result is merged with base's existing entries into a new Partial.
func bindInto(sig *signature.Signature, base *signature.Partial, args Args) (*signature.Partial, error) {
	if err := properArgumentOrder(args); err != nil {
		return nil, err
	}
	if err := noQualifiedArgAnnotations(sig, args); err != nil {
		return nil, err
	}
	if err := noExtraKeywordArgs(sig, args); err != nil {
		return nil, err
	}

	entries := append([]signature.PartialEntry(nil), base.Entries...)
	covered := make(map[int]bool, len(entries))
	for _, e := range entries {
		covered[e.Index] = true
	}

	var posTargets []int
	kwTargets := make(map[int]string, len(args.KeywordOrder))

	posCursor := 0
	for i, p := range sig.Params {
		if i == sig.ArgsIndex || i == sig.KwargsIndex || covered[i] || p.Kind.KeywordOnly() {
			continue
		}
		if posCursor >= len(args.Positional) {
			break
		}
		v := args.Positional[posCursor].ArgValue()
		if err := canConvert(p.Name, p.RType, v); err != nil {
			return nil, err
		}
		entries = append(entries, signature.PartialEntry{Index: i, Name: p.Name, Value: v})
		covered[i] = true
		posTargets = append(posTargets, i)
		posCursor++
	}
	if posCursor < len(args.Positional) {
		return nil, newError(KindExtraPositional, "", fmt.Sprintf(
			"%d positional arguments given, only %d unbound positional parameters remain",
			len(args.Positional), posCursor))
	}

	for _, name := range args.KeywordOrder {
		idx, ok := sig.Index(name)
		if !ok {
			continue
		}
		if covered[idx] {
			return nil, newError(KindDuplicateValue, name, "already bound")
		}
		v := args.Keyword[name].ArgValue()
		if err := canConvert(name, sig.Params[idx].RType, v); err != nil {
			return nil, err
		}
		entries = append(entries, signature.PartialEntry{Index: idx, Name: name, Value: v})
		covered[idx] = true
		kwTargets[idx] = name
	}

	if err := noConflictingValues(posTargets, kwTargets); err != nil {
		return nil, err
	}

	return signature.NewPartial(sig, entries), nil
}
