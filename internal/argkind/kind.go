// Package argkind classifies a parameter by the four-bit lattice described
// in spec.md §3.1: positional, keyword, optional, variadic.
package argkind

// Kind is a compact bitset over the four classification flags. Its ordering
// is normative when used to sort edges in downstream dispatch tables:
//
//	POS < POS|OPT < POS|VAR < KW < KW|OPT < KW|VAR
//
// Preserve this ordering verbatim — it is load-bearing for any future
// overload-resolution layer that needs a deterministic candidate order.
type Kind uint8

const (
	// POS marks a parameter as fillable by position.
	POS Kind = 1 << iota
	// KW marks a parameter as fillable by name.
	KW
	// OPT marks a parameter as having a default value.
	OPT
	// VAR marks a parameter as variadic (*args or **kwargs).
	VAR
)

// String renders the kind using its flag letters, for diagnostics.
func (k Kind) String() string {
	var s string
	if k&POS != 0 {
		s += "P"
	}
	if k&KW != 0 {
		s += "K"
	}
	if k&OPT != 0 {
		s += "O"
	}
	if k&VAR != 0 {
		s += "V"
	}
	if s == "" {
		return "-"
	}
	return s
}

// PositionalOnly reports whether the parameter may be filled positionally
// and not by name (POS set, KW clear; OPT is ignored).
func (k Kind) PositionalOnly() bool { return k&POS != 0 && k&KW == 0 }

// Positional reports whether the parameter is an ordinary (non-variadic)
// positional slot.
func (k Kind) Positional() bool { return k&POS != 0 && k&VAR == 0 }

// Args reports whether the parameter is exactly a *args slot.
func (k Kind) Args() bool { return k&(POS|VAR) == POS|VAR }

// KeywordOnly reports whether the parameter may be filled only by name
// (KW set, POS clear).
func (k Kind) KeywordOnly() bool { return k&KW != 0 && k&POS == 0 }

// Keyword reports whether the parameter is an ordinary (non-variadic)
// keyword slot.
func (k Kind) Keyword() bool { return k&KW != 0 && k&VAR == 0 }

// Kwargs reports whether the parameter is exactly a **kwargs slot.
func (k Kind) Kwargs() bool { return k&(KW|VAR) == KW|VAR }

// Optional reports whether the parameter carries a default value.
func (k Kind) Optional() bool { return k&OPT != 0 }

// Variadic reports whether the parameter absorbs zero or more values.
func (k Kind) Variadic() bool { return k&VAR != 0 }

// Required reports whether the parameter must be supplied: neither optional
// nor variadic. This is the bit set in Signature.Required (spec.md §3.3).
func (k Kind) Required() bool { return !k.Optional() && !k.Variadic() }

// Less implements the normative ordering from spec.md §3.1, usable as a
// sort.Slice comparator over a []Kind.
func Less(a, b Kind) bool { return rank(a) < rank(b) }

// rank maps a Kind to its position in the normative total order. Only the
// six kinds spec.md names are given finite ranks; anything else sorts after
// all of them (it cannot occur in a well-formed Signature).
func rank(k Kind) int {
	switch {
	case k == POS:
		return 0
	case k == POS|OPT:
		return 1
	case k == POS|VAR:
		return 2
	case k == KW:
		return 3
	case k == KW|OPT:
		return 4
	case k == KW|VAR:
		return 5
	default:
		return 6
	}
}
