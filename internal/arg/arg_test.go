package arg

import (
	"testing"

	"github.com/funvibe/pycall/internal/argkind"
)

func TestPlainIsAnonymousPositional(t *testing.T) {
	a := Plain(42)
	if a.ArgName() != "" {
		t.Errorf("ArgName() = %q, want empty", a.ArgName())
	}
	if a.ArgKind() != argkind.POS {
		t.Errorf("ArgKind() = %s, want POS", a.ArgKind())
	}
	v, ok := a.Value()
	if !ok || v != 42 {
		t.Errorf("Value() = (%v, %v), want (42, true)", v, ok)
	}
}

func TestPosNamedIsPositionalOrKeyword(t *testing.T) {
	a := Pos("x", 1)
	if a.ArgName() != "x" {
		t.Errorf("ArgName() = %q, want x", a.ArgName())
	}
	if !a.ArgKind().Positional() {
		t.Error("named Pos should still be Positional()")
	}
	if a.ArgKind() != argkind.POS {
		t.Errorf("ArgKind() = %s, want POS — keyword reachability comes from the non-empty name, not a KW bit", a.ArgKind())
	}
}

func TestPosAnonymousIsPositionalOnly(t *testing.T) {
	a := Pos("", 1)
	if !a.ArgKind().PositionalOnly() {
		t.Error("anonymous Pos should be PositionalOnly()")
	}
}

func TestOpt(t *testing.T) {
	a := Pos("y", 2).Opt()
	if !a.ArgKind().Optional() {
		t.Error("Opt() should set the OPT bit")
	}
	if !a.ArgKind().Positional() {
		t.Error("Opt() should not disturb the POS bit")
	}
}

func TestAsKw(t *testing.T) {
	a := Pos("", 3).AsKw("z")
	if a.ArgName() != "z" {
		t.Errorf("AsKw should fill in the empty name, got %q", a.ArgName())
	}
	if !a.ArgKind().KeywordOnly() {
		t.Error("AsKw should produce a keyword-only parameter")
	}

	named := Pos("already-named", 4).AsKw("ignored")
	if named.ArgName() != "already-named" {
		t.Error("AsKw should not overwrite an existing name")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		a       Arg[int]
		wantErr bool
	}{
		{"anonymous positional ok", Pos("", 1), false},
		{"named positional ok", Pos("a", 1), false},
		{"keyword with name ok", Kw("b", 1), false},
		{"keyword without name fails", Kw("", 1), true},
		{"bad identifier fails", Pos("1bad", 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBindRecordsBoundTo(t *testing.T) {
	base := Pos("x", 1)
	a := Plain(2)
	bound, err := base.Bind(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bound.BoundTo()) != 1 {
		t.Fatalf("BoundTo() len = %d, want 1", len(bound.BoundTo()))
	}
	if bound.BoundTo()[0].ArgName() != "" {
		t.Errorf("unexpected BoundTo entry: %+v", bound.BoundTo()[0])
	}
}
