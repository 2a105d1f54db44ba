// Package bind implements the Bind/Merge engine of spec.md §4.3/§4.4: the
// battery of structural predicates that vet a call-site argument list
// against a target Signature, and the three-cursor merge that weaves
// partial, source, and default argument streams into the final ordered
// call.
package bind

import (
	"reflect"

	"github.com/funvibe/pycall/internal/arg"
	"github.com/funvibe/pycall/internal/pack"
)

// Source is one call-site argument, before classification into Args.
type Source interface{ isSource() }

// PosSource is a plain or explicitly-positional value.
type PosSource struct{ Value arg.Traits }

func (PosSource) isSource() {}

// KwSource is a value explicitly supplied under name.
type KwSource struct {
	Name  string
	Value arg.Traits
}

func (KwSource) isSource() {}

// PosPackSource is a `*iterable` unpacking operator (spec.md §4.6).
type PosPackSource struct{ Iterable reflect.Value }

func (PosPackSource) isSource() {}

// KwPackSource is a `**mapping` unpacking operator (spec.md §4.6).
type KwPackSource struct{ Mapping reflect.Value }

func (KwPackSource) isSource() {}

// Args is the classified call-site argument list consumed by Check and
// Merge: positional sources in call order, keyword sources by name (with
// their original order preserved for deterministic **kwargs population),
// and at most one pack of each kind.
type Args struct {
	Positional   []arg.Traits
	Keyword      map[string]arg.Traits
	KeywordOrder []string
	PosPack      *pack.Positional
	KwPack       *pack.Keyword

	// slotOrder records, for proper_argument_order, the coarse category of
	// each raw Source in call-site order: 0=positional, 1=keyword,
	// 2=pos-pack, 3=kw-pack.
	slotOrder []int
}

// ParseArgs classifies a raw call-site Source list into Args. It rejects a
// repeated keyword name and a second pack of either kind; it does not
// enforce ordering — that is the job of the proper_argument_order
// predicate, which runs over the same slotOrder this function records.
func ParseArgs(sources []Source) (Args, error) {
	args := Args{Keyword: make(map[string]arg.Traits)}

	for _, s := range sources {
		switch v := s.(type) {
		case PosSource:
			args.Positional = append(args.Positional, v.Value)
			args.slotOrder = append(args.slotOrder, slotPositional)
		case KwSource:
			if _, dup := args.Keyword[v.Name]; dup {
				return args, newError(KindDuplicateValue, v.Name, "duplicate keyword argument")
			}
			args.Keyword[v.Name] = v.Value
			args.KeywordOrder = append(args.KeywordOrder, v.Name)
			args.slotOrder = append(args.slotOrder, slotKeyword)
		case PosPackSource:
			if args.PosPack != nil {
				return args, newError(KindDuplicateValue, "", "more than one positional pack")
			}
			p, err := pack.NewPositional(v.Iterable)
			if err != nil {
				return args, err
			}
			args.PosPack = p
			args.slotOrder = append(args.slotOrder, slotPosPack)
		case KwPackSource:
			if args.KwPack != nil {
				return args, newError(KindDuplicateValue, "", "more than one keyword pack")
			}
			kw, err := pack.NewKeyword(v.Mapping)
			if err != nil {
				return args, err
			}
			args.KwPack = kw
			args.slotOrder = append(args.slotOrder, slotKwPack)
		}
	}
	return args, nil
}

const (
	slotPositional = iota
	slotKeyword
	slotPosPack
	slotKwPack
)
