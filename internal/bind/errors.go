package bind

import "fmt"

// ErrorKind classifies a bind failure, mirroring the named predicates of
// spec.md §4.3/§4.8 so callers can branch on failure category instead of
// parsing Error strings.
type ErrorKind int

const (
	// KindOrder is proper_argument_order's failure: a positional source
	// follows a keyword source, or a keyword source follows the keyword
	// pack. NewPartial and BindOperator also use it to reject a pack.
	KindOrder ErrorKind = iota
	// KindDuplicateValue is no_duplicate_args' failure: the same parameter
	// targeted by more than one source.
	KindDuplicateValue
	// KindExtraPositional is no_extra_positional_args' failure.
	KindExtraPositional
	// KindExtraKeyword is no_extra_keyword_args' failure.
	KindExtraKeyword
	// KindConflict is no_conflicting_values' failure: a keyword source
	// targets an index already filled by a partial or a positional source.
	KindConflict
	// KindMissingRequired is satisfies_required_args' failure.
	KindMissingRequired
	// KindType is can_convert's failure: a value's type cannot satisfy the
	// parameter's declared type.
	KindType
	// KindUnknownName is raised when a name cannot address a parameter: a
	// default names no parameter or a non-optional one, or a keyword source
	// names a positional-only parameter. (A keyword source naming no
	// parameter is KindExtraKeyword.)
	KindUnknownName
)

// Error is the typed failure returned by Check and Merge for a structural
// failure (SPEC_FULL.md §1). Errors from package pack (a pack that cannot be
// built, or is left unconsumed) are returned as they are, not as *Error.
type Error struct {
	Kind  ErrorKind
	Param string // parameter name, or "" if positional/unnamed
	Msg   string
}

func (e *Error) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("bind: %s: %s", e.Param, e.Msg)
	}
	return "bind: " + e.Msg
}

func newError(kind ErrorKind, param, msg string) *Error {
	return &Error{Kind: kind, Param: param, Msg: msg}
}
