package bind

import (
	"fmt"
	"reflect"

	"github.com/funvibe/pycall/internal/signature"
)

// properArgumentOrder enforces spec.md §4.3(a): positional sources (plain or
// packed) must all precede keyword sources (plain or packed), and a keyword
// pack must be the last thing in the call.
func properArgumentOrder(args Args) error {
	seenKeyword, seenKwPack := false, false
	for _, slot := range args.slotOrder {
		switch slot {
		case slotPositional, slotPosPack:
			if seenKeyword {
				return newError(KindOrder, "", "positional argument follows keyword argument")
			}
		case slotKeyword, slotKwPack:
			if seenKwPack {
				return newError(KindOrder, "", "keyword argument follows keyword pack")
			}
			seenKeyword = true
			if slot == slotKwPack {
				seenKwPack = true
			}
		}
	}
	return nil
}

// noQualifiedArgAnnotations is the Go re-targeting of spec.md §4.3(b): C++'s
// cv/ref-qualifier mismatch between an annotation and its target has no Go
// analogue (Go parameters carry no such qualifiers), so this predicate keeps
// the same role — rejecting a source whose call-site annotation cannot
// address its target — by vetoing a keyword source that names a
// positional-only parameter (one whose declared Name is empty).
func noQualifiedArgAnnotations(sig *signature.Signature, args Args) error {
	for _, name := range args.KeywordOrder {
		idx, ok := sig.Index(name)
		if !ok {
			continue // unknown names are no_extra_keyword_args' concern
		}
		if p := sig.Params[idx]; p.Kind.PositionalOnly() && p.Name == "" {
			return newError(KindUnknownName, name, "positional-only parameter cannot be supplied by keyword")
		}
	}
	return nil
}

// noDuplicateArgs enforces spec.md §4.3(c): no parameter index may be
// targeted by more than one of {partial, positional source, keyword source}.
func noDuplicateArgs(sig *signature.Signature, partial *signature.Partial, args Args, posTargets []int) error {
	seen := make(map[int]bool, len(posTargets)+len(args.KeywordOrder))
	for _, idx := range posTargets {
		name := ""
		if idx < len(sig.Params) {
			name = sig.Params[idx].Name
		}
		if partial.Covers(idx) {
			return newError(KindDuplicateValue, name, "already bound by partial")
		}
		if seen[idx] {
			return newError(KindDuplicateValue, name, "duplicate positional target")
		}
		seen[idx] = true
	}
	for _, name := range args.KeywordOrder {
		idx, ok := sig.Index(name)
		if !ok {
			continue
		}
		if partial.Covers(idx) {
			return newError(KindDuplicateValue, name, "already bound by partial")
		}
		if seen[idx] {
			return newError(KindDuplicateValue, name, "already supplied positionally")
		}
		seen[idx] = true
	}
	return nil
}

// noExtraPositionalArgs enforces spec.md §4.3(d): every positional source
// must land on a declared positional slot or be absorbed by *args.
func noExtraPositionalArgs(sig *signature.Signature, nPosTargets int) error {
	limit := sig.NPosOnly + sig.NPos
	if nPosTargets > limit && sig.ArgsIndex < 0 {
		return newError(KindExtraPositional, "", fmt.Sprintf("%d positional arguments given, signature accepts %d", nPosTargets, limit))
	}
	return nil
}

// noExtraKeywordArgs enforces spec.md §4.3(e): every keyword source must
// name a declared parameter, unless the signature carries **kwargs.
func noExtraKeywordArgs(sig *signature.Signature, args Args) error {
	if sig.KwargsIndex >= 0 {
		return nil
	}
	for _, name := range args.KeywordOrder {
		if _, ok := sig.Index(name); !ok {
			return newError(KindExtraKeyword, name, "unexpected keyword argument")
		}
	}
	return nil
}

// noConflictingValues enforces spec.md §4.3(f): a keyword source must not
// retarget a parameter slot already filled positionally in the same call.
func noConflictingValues(posTargets []int, kwTargets map[int]string) error {
	filled := make(map[int]bool, len(posTargets))
	for _, idx := range posTargets {
		filled[idx] = true
	}
	for idx, name := range kwTargets {
		if filled[idx] {
			return newError(KindConflict, name, "got multiple values for argument")
		}
	}
	return nil
}

// satisfiesRequiredArgs enforces spec.md §4.3(g): every required parameter
// must end up covered by a partial binding, a positional or keyword source,
// or a default.
func satisfiesRequiredArgs(sig *signature.Signature, defaults *signature.Defaults, partial *signature.Partial, covered map[int]bool) error {
	for i, p := range sig.Params {
		if sig.Required&(1<<uint(i)) == 0 {
			continue
		}
		if covered[i] || partial.Covers(i) {
			continue
		}
		if defaults != nil {
			if _, ok := defaults.Get(i); ok {
				continue
			}
		}
		return newError(KindMissingRequired, p.Name, "missing required argument")
	}
	return nil
}

// canConvert enforces spec.md §4.3(h): a supplied value's runtime type must
// be usable where the parameter's declared type is expected.
func canConvert(paramName string, want reflect.Type, got reflect.Value) error {
	if want == nil || !got.IsValid() {
		return nil
	}
	if got.Type().AssignableTo(want) {
		return nil
	}
	if got.Type().ConvertibleTo(want) {
		return nil
	}
	return newError(KindType, paramName, fmt.Sprintf("cannot use value of type %s as %s", got.Type(), want))
}
