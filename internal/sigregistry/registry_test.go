package sigregistry

import (
	"testing"

	"github.com/funvibe/pycall/internal/signature"
)

func dummySig(t *testing.T) *signature.Signature {
	t.Helper()
	sig, err := signature.From(nil)
	if err != nil {
		t.Fatalf("signature.From(nil): %v", err)
	}
	return sig
}

func TestRegisterAndGet(t *testing.T) {
	r := New()
	sig := dummySig(t)
	id := r.Register("greet", sig)

	got, ok := r.Get(id)
	if !ok {
		t.Fatal("Get: not found")
	}
	if got != sig {
		t.Error("Get returned a different Signature than was registered")
	}
}

func TestLookupResolvesMostRecent(t *testing.T) {
	r := New()
	first := dummySig(t)
	second := dummySig(t)

	r.Register("greet", first)
	r.Register("greet", second)

	got, ok := r.Lookup("greet")
	if !ok {
		t.Fatal("Lookup: not found")
	}
	if got != second {
		t.Error("Lookup should resolve to the most recently registered Signature")
	}
}

func TestLookupUnknownName(t *testing.T) {
	r := New()
	if _, ok := r.Lookup("nope"); ok {
		t.Error("Lookup of an unregistered name should report not-found")
	}
}

func TestForgetRemovesHandleAndName(t *testing.T) {
	r := New()
	sig := dummySig(t)
	id := r.Register("greet", sig)

	r.Forget(id)

	if _, ok := r.Get(id); ok {
		t.Error("Get should fail after Forget")
	}
	if _, ok := r.Lookup("greet"); ok {
		t.Error("Lookup should fail after Forget")
	}
}

func TestForgetDoesNotClobberNewerRegistration(t *testing.T) {
	r := New()
	first := dummySig(t)
	second := dummySig(t)

	id1 := r.Register("greet", first)
	r.Register("greet", second)
	r.Forget(id1)

	got, ok := r.Lookup("greet")
	if !ok {
		t.Fatal("Lookup: not found")
	}
	if got != second {
		t.Error("forgetting a stale handle should not remove a newer registration under the same name")
	}
}

func TestMustLookupPanicsOnMissingName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLookup should panic for an unregistered name")
		}
	}()
	MustLookup("definitely-not-registered")
}
