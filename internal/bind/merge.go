package bind

import (
	"fmt"
	"reflect"

	"github.com/funvibe/pycall/internal/signature"
)

// Merge implements spec.md §4.4/§5: the three-cursor walk that weaves a
// Partial's already-bound values, this call's positional/keyword sources and
// packs, and a Signature's Defaults into one ordered value list — one entry
// per declared parameter, in declaration order. The *args and **kwargs
// slots, if declared, receive a []reflect.Value and a
// map[string]reflect.Value respectively, each wrapped via reflect.ValueOf.
func Merge(sig *signature.Signature, partial *signature.Partial, defaults *signature.Defaults, args Args) ([]reflect.Value, error) {
	if err := properArgumentOrder(args); err != nil {
		return nil, err
	}
	if err := noQualifiedArgAnnotations(sig, args); err != nil {
		return nil, err
	}
	if err := noExtraKeywordArgs(sig, args); err != nil {
		return nil, err
	}

	n := len(sig.Params)
	result := make([]reflect.Value, n)
	covered := make(map[int]bool, n)
	var posTargets []int
	kwTargets := make(map[int]string, len(args.KeywordOrder))

	// Cursor I: every index the partial already owns.
	for i := range sig.Params {
		if e, ok := partial.Get(i); ok {
			result[i] = e.Value
			covered[i] = true
		}
	}

	// Cursor J: explicit positional sources, then the positional pack.
	posCursor := 0
	nextPositionalValue := func() (reflect.Value, bool) {
		if posCursor < len(args.Positional) {
			v := args.Positional[posCursor].ArgValue()
			posCursor++
			return v, true
		}
		if args.PosPack.HasNext() {
			return args.PosPack.Next(), true
		}
		return reflect.Value{}, false
	}

	for i, p := range sig.Params {
		if i == sig.ArgsIndex || i == sig.KwargsIndex || covered[i] || p.Kind.KeywordOnly() {
			continue
		}
		if v, ok := nextPositionalValue(); ok {
			if err := canConvert(p.Name, p.RType, v); err != nil {
				return nil, err
			}
			result[i] = v
			covered[i] = true
			posTargets = append(posTargets, i)
		}
	}

	// Cursor K: keyword sources, then the keyword pack, matched by name.
	kwRemaining := make(map[string]bool, len(args.KeywordOrder))
	for _, name := range args.KeywordOrder {
		kwRemaining[name] = true
	}
	for i, p := range sig.Params {
		if i == sig.ArgsIndex || i == sig.KwargsIndex || p.Name == "" {
			continue
		}
		if covered[i] {
			if kwRemaining[p.Name] {
				return nil, newError(KindConflict, p.Name, "got multiple values for argument")
			}
			continue
		}
		if src, ok := args.Keyword[p.Name]; ok && kwRemaining[p.Name] {
			v := src.ArgValue()
			if err := canConvert(p.Name, p.RType, v); err != nil {
				return nil, err
			}
			result[i] = v
			covered[i] = true
			kwTargets[i] = p.Name
			delete(kwRemaining, p.Name)
			continue
		}
		if v, ok := args.KwPack.Extract(p.Name); ok {
			if err := canConvert(p.Name, p.RType, v); err != nil {
				return nil, err
			}
			result[i] = v
			covered[i] = true
			kwTargets[i] = p.Name
		}
	}

	if err := noDuplicateArgs(sig, partial, args, posTargets); err != nil {
		return nil, err
	}
	if err := noConflictingValues(posTargets, kwTargets); err != nil {
		return nil, err
	}

	// *args absorbs whatever positional material no ordinary parameter
	// claimed; with no *args, that leftover is the excess-positional error.
	if sig.ArgsIndex >= 0 {
		var rest []reflect.Value
		for ; posCursor < len(args.Positional); posCursor++ {
			rest = append(rest, args.Positional[posCursor].ArgValue())
		}
		rest = append(rest, args.PosPack.Remaining()...)
		result[sig.ArgsIndex] = reflect.ValueOf(rest)
	} else {
		if err := noExtraPositionalArgs(sig, len(args.Positional)); err != nil {
			return nil, err
		}
		if posCursor < len(args.Positional) {
			return nil, newError(KindExtraPositional, "", fmt.Sprintf("%d positional arguments left unmatched", len(args.Positional)-posCursor))
		}
		if err := args.PosPack.Validate(); err != nil {
			return nil, err
		}
	}

	// **kwargs absorbs whatever keyword material no named parameter
	// claimed; with no **kwargs, unconsumed material is a Validate error.
	if sig.KwargsIndex >= 0 {
		rest := make(map[string]reflect.Value, len(kwRemaining))
		for name := range kwRemaining {
			rest[name] = args.Keyword[name].ArgValue()
		}
		for _, e := range args.KwPack.Remaining() {
			rest[e.Name] = e.Value
		}
		result[sig.KwargsIndex] = reflect.ValueOf(rest)
	} else if err := args.KwPack.Validate(); err != nil {
		return nil, err
	}

	// Defaults fill whatever is still uncovered (optional parameters with no
	// supplied value), then every required parameter is checked.
	for i := range sig.Params {
		if i == sig.ArgsIndex || i == sig.KwargsIndex || covered[i] {
			continue
		}
		if defaults != nil {
			if v, ok := defaults.Get(i); ok {
				result[i] = v
				covered[i] = true
			}
		}
	}
	if err := satisfiesRequiredArgs(sig, defaults, partial, covered); err != nil {
		return nil, err
	}

	return result, nil
}

// Check runs the full predicate battery and discards the merged values, for
// callers that need validation without a finished call. (NewPartial and
// BindOperator do not use it; they run their own checks in bindInto.)
func Check(sig *signature.Signature, partial *signature.Partial, defaults *signature.Defaults, args Args) error {
	_, err := Merge(sig, partial, defaults, args)
	return err
}
