// Package sigconfig holds the package-wide tunables used by arg and
// signature. Nothing here depends on reflect or on any other
// internal package, so it can be imported from anywhere without a cycle.
package sigconfig

import "regexp"

// MaxArgs bounds the number of parameters a Signature may describe, so that
// the Required bitmask (spec.md §3.3) fits in a single uint64.
const MaxArgs = 64

// NamePattern matches a legal non-empty parameter name: a letter/underscore
// followed by any number of alphanumerics/underscores. It does not match the
// empty name (ValidName accepts that separately) or names carrying a `*`/`**`
// prefix; variadic parameters are named without the prefix.
var NamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name is a legal parameter name. An empty name is
// legal only for anonymous positional-only parameters; callers that require
// a non-empty name (keyword, variadic) must check separately.
func ValidName(name string) bool {
	if name == "" {
		return true
	}
	return NamePattern.MatchString(name)
}
