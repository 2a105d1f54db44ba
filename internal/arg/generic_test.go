package arg

import (
	"reflect"
	"testing"

	"github.com/funvibe/pycall/internal/argkind"
)

func TestBindTypeFixesOnce(t *testing.T) {
	g := NewGeneric("x", argkind.POS)
	fixed, err := BindType(g, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fixed.ArgName() != "x" {
		t.Errorf("ArgName() = %q, want x", fixed.ArgName())
	}
	v, ok := fixed.Value()
	if !ok || v != 42 {
		t.Errorf("Value() = (%v, %v), want (42, true)", v, ok)
	}
}

func TestBindTypeRejectsRebind(t *testing.T) {
	// A Generic that already carries a fixed type (as BindType would leave
	// one, were Generic itself mutable) must refuse a second BindType call.
	already := Generic{name: "x", kind: argkind.POS, fixed: reflect.TypeOf(0)}
	if _, err := BindType(already, "again"); err == nil {
		t.Error("rebinding an already-fixed Generic should fail")
	}
}
