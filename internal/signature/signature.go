// Package signature implements the Signature type of spec.md §3.3: a
// parsed, canonicalized view of a target parameter list, with the
// precomputed facts (per-kind counts, first indices, required bitmask, name
// table) that the bind package's predicates and merge walk consume.
package signature

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/funvibe/pycall/internal/arg"
	"github.com/funvibe/pycall/internal/argkind"
	"github.com/funvibe/pycall/internal/sigconfig"
)

// Param is one entry of a canonicalized parameter list.
type Param struct {
	Name string
	Kind argkind.Kind
	Type func() string // lazy type name, for rendering
	// RType is the parameter's declared reflect.Type, consumed by package
	// bind's can_convert predicate. Nil for a parameter with no fixed type
	// (e.g. an unfixed arg.Generic).
	RType reflect.Type
}

// Signature owns an ordered parameter list and the facts spec.md §3.3 says
// must be precomputed: per-kind counts, first indices, the Required
// bitmask, and a name→index table.
type Signature struct {
	Params []Param

	NPosOnly int // count of positional-only parameters
	NPos     int // count of positional-or-keyword parameters (named, non-variadic; excludes NPosOnly)
	NKw      int // count of non-variadic parameters reachable by keyword (positional-or-keyword and keyword-only)
	NKwOnly  int // count of keyword-only parameters

	// Required has a 1 bit at each parameter index that is neither optional
	// nor variadic (spec.md §3.3's "Required mask").
	Required uint64

	// ArgsIndex is the index of the *args parameter, or -1 if none.
	ArgsIndex int
	// KwargsIndex is the index of the **kwargs parameter, or -1 if none.
	KwargsIndex int

	nameIndex map[string]int
}

// From builds a Signature from an already-ordered list of annotation
// traits, running the closed checks of spec.md §4.2. Each check
// independently vetoes construction; the first failure is returned.
func From(params []arg.Traits) (*Signature, error) {
	if len(params) > sigconfig.MaxArgs {
		return nil, fmt.Errorf("signature: %d parameters exceeds MAX_ARGS (%d)", len(params), sigconfig.MaxArgs)
	}

	sig := &Signature{
		ArgsIndex:   -1,
		KwargsIndex: -1,
		nameIndex:   make(map[string]int, len(params)),
	}

	seenNames := make(map[string]bool, len(params))
	sawArgs, sawKwargs := false, false
	// lastRank tracks the canonical-order checkpoint (spec.md §3.3(a) /
	// §4.2 item 4): positional-only → positional-or-keyword → *args →
	// keyword-only → **kwargs, required before optional within each
	// positional group.
	stage := stagePosOnly

	for i, p := range params {
		if v, ok := p.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("signature: param %d: %w", i, err)
			}
		}
		kind := p.ArgKind()
		name := p.ArgName()

		if name != "" {
			if seenNames[name] {
				return nil, fmt.Errorf("signature: duplicate parameter name %q", name)
			}
			seenNames[name] = true
		}

		switch {
		case kind.Args():
			if sawArgs {
				return nil, fmt.Errorf("signature: more than one *args parameter")
			}
			sawArgs = true
			sig.ArgsIndex = i
			if stage > stageArgs {
				return nil, fmt.Errorf("signature: *args parameter %q out of canonical order", name)
			}
			stage = stageArgs
		case kind.Kwargs():
			if sawKwargs {
				return nil, fmt.Errorf("signature: more than one **kwargs parameter")
			}
			sawKwargs = true
			sig.KwargsIndex = i
			stage = stageKwargs
		case kind.KeywordOnly():
			if stage > stageKwOnly {
				return nil, fmt.Errorf("signature: keyword-only parameter %q out of canonical order", name)
			}
			stage = stageKwOnly
		case name == "":
			// positional-only (anonymous)
			if stage > stagePosOnly {
				return nil, fmt.Errorf("signature: anonymous positional parameter out of canonical order")
			}
			stage = stagePosOnly
		default:
			// positional-or-keyword
			if stage > stagePosOrKw {
				return nil, fmt.Errorf("signature: parameter %q out of canonical order", name)
			}
			stage = stagePosOrKw
		}

		if name != "" {
			sig.nameIndex[name] = i
		}
		if kind.Required() {
			sig.Required |= 1 << uint(i)
		}

		switch {
		case kind.Args():
			// counted separately via ArgsIndex
		case kind.Kwargs():
			// counted separately via KwargsIndex
		case kind.KeywordOnly():
			sig.NKwOnly++
		case name == "":
			sig.NPosOnly++
		default:
			sig.NPos++
		}
		if name != "" && !kind.Variadic() {
			sig.NKw++
		}

		typeFn := p.ArgType
		rtype := p.ArgType()
		sig.Params = append(sig.Params, Param{
			Name: name,
			Kind: kind,
			Type: func() string {
				if t := typeFn(); t != nil {
					return t.String()
				}
				return "any"
			},
			RType: rtype,
		})
	}

	// Required-before-optional within the positional-only and
	// positional-or-keyword groups (spec.md §3.3(a)).
	if err := checkRequiredBeforeOptional(sig.Params, sig.ArgsIndex); err != nil {
		return nil, err
	}

	return sig, nil
}

type orderStage int

const (
	stagePosOnly orderStage = iota
	stagePosOrKw
	stageArgs
	stageKwOnly
	stageKwargs
)

func checkRequiredBeforeOptional(params []Param, argsIndex int) error {
	sawOptional := false
	for i, p := range params {
		if argsIndex >= 0 && i == argsIndex {
			sawOptional = false // *args resets the requirement within keyword-only group
			continue
		}
		if p.Kind.Variadic() {
			continue
		}
		if p.Kind.KeywordOnly() {
			continue // keyword-only parameters may appear in any required/optional order
		}
		if p.Kind.Optional() {
			sawOptional = true
			continue
		}
		if sawOptional {
			return fmt.Errorf("signature: required parameter %q follows an optional one", p.Name)
		}
	}
	return nil
}

// Index looks up a parameter's index by name, an O(1) operation backed by
// the precomputed name table of spec.md §3.3.
func (s *Signature) Index(name string) (int, bool) {
	i, ok := s.nameIndex[name]
	return i, ok
}

// Size returns the number of declared parameters.
func (s *Signature) Size() int { return len(s.Params) }

// String renders the signature's parameter list in the human-readable,
// source-compatible form of spec.md §6.3: (p1: T1, p2: T2 = ..., *args, k:
// Tk, **kwargs), with "/" after the anonymous positional-only parameters and
// a bare "*" before keyword-only ones when there is no *args. The function
// name is not included; callers prefix it.
// Defaults render as the concrete value's repr when defaults is non-nil and
// carries one for that parameter, and as the literal "..." placeholder
// otherwise (spec.md §6.3).
func (s *Signature) String(defaults *Defaults) string {
	return s.Render(0, defaults)
}

// Render is String but wraps each parameter onto its own indented line once
// the single-line form would exceed width columns (0 disables wrapping).
func (s *Signature) Render(width int, defaults *Defaults) string {
	parts := make([]string, 0, len(s.Params)+2)
	needSlash := false
	needStar := s.ArgsIndex < 0

	for i, p := range s.Params {
		if needSlash && (p.Name != "" || i == s.ArgsIndex || i == s.KwargsIndex) {
			parts = append(parts, "/")
			needSlash = false
		}
		if i == s.ArgsIndex {
			parts = append(parts, "*"+paramName(p, "args"))
			needStar = false
			continue
		}
		if i == s.KwargsIndex {
			parts = append(parts, "**"+paramName(p, "kwargs"))
			continue
		}
		if p.Kind.KeywordOnly() && needStar {
			parts = append(parts, "*")
			needStar = false
		}
		if p.Name == "" {
			needSlash = true
		}
		seg := p.Name
		if seg == "" {
			seg = "_"
		}
		seg += ": " + p.Type()
		if p.Kind.Optional() {
			seg += " = " + defaultRepr(defaults, i)
		}
		parts = append(parts, seg)
	}
	if needSlash {
		parts = append(parts, "/")
	}

	line := "(" + strings.Join(parts, ", ") + ")"
	if width <= 0 || len(line) <= width {
		return line
	}
	var b strings.Builder
	b.WriteString("(\n")
	for _, p := range parts {
		b.WriteString("  ")
		b.WriteString(p)
		b.WriteString(",\n")
	}
	b.WriteString(")")
	return b.String()
}

// defaultRepr renders the concrete default value for parameter index if
// defaults carries one, and the "..." placeholder (spec.md §6.3) otherwise —
// e.g. when defaults is nil, or the Signature describes a bare shape with no
// attached Defaults yet.
func defaultRepr(defaults *Defaults, index int) string {
	v, ok := defaults.Get(index)
	if !ok || !v.IsValid() {
		return "..."
	}
	return fmt.Sprintf("%v", v.Interface())
}

func paramName(p Param, fallback string) string {
	if p.Name != "" {
		return p.Name
	}
	return fallback
}

// SortedKinds returns the Kind of every parameter in the normative order of
// spec.md §3.1 — used by test code and by any downstream dispatch table
// that needs the canonical edge ordering.
func SortedKinds(params []Param) []argkind.Kind {
	kinds := make([]argkind.Kind, len(params))
	for i, p := range params {
		kinds[i] = p.Kind
	}
	sort.SliceStable(kinds, func(i, j int) bool { return argkind.Less(kinds[i], kinds[j]) })
	return kinds
}
