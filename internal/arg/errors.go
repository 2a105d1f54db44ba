package arg

import "fmt"

func errBadArgsBinding(t Traits) error {
	return fmt.Errorf("arg: *args bound-to entry %q must be positional-only, non-optional, non-variadic (kind %s)", t.ArgName(), t.ArgKind())
}

func errBadKwargsBinding(t Traits) error {
	return fmt.Errorf("arg: **kwargs bound-to entry %q must be keyword, non-optional, non-variadic (kind %s)", t.ArgName(), t.ArgKind())
}

func errDuplicateBoundName(name string) error {
	return fmt.Errorf("arg: duplicate bound-to name %q", name)
}
