package pack

import (
	"reflect"
	"testing"
)

func TestPositionalCursor(t *testing.T) {
	p, err := NewPositional(reflect.ValueOf([]int{1, 2, 3}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	var got []int
	for p.HasNext() {
		got = append(got, int(p.Next().Int()))
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("drained values = %v, want [1 2 3]", got)
	}
	if p.HasNext() {
		t.Error("HasNext() should be false once drained")
	}
}

func TestPositionalNextPanicsWhenExhausted(t *testing.T) {
	p, _ := NewPositional(reflect.ValueOf([]int{}))
	defer func() {
		if recover() == nil {
			t.Error("Next() on an exhausted pack should panic")
		}
	}()
	p.Next()
}

func TestPositionalValidate(t *testing.T) {
	p, _ := NewPositional(reflect.ValueOf([]int{1, 2}))
	if err := p.Validate(); err == nil {
		t.Error("Validate() should fail while values remain unconsumed")
	}
	p.Next()
	p.Next()
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() should pass once drained, got %v", err)
	}
}

func TestPositionalRemainingDrainsAndAdvances(t *testing.T) {
	p, _ := NewPositional(reflect.ValueOf([]int{1, 2, 3}))
	p.Next()
	rest := p.Remaining()
	if len(rest) != 2 {
		t.Fatalf("Remaining() len = %d, want 2", len(rest))
	}
	if p.HasNext() {
		t.Error("Remaining() should advance the cursor to the end")
	}
}

func TestNewPositionalRejectsNonIterable(t *testing.T) {
	if _, err := NewPositional(reflect.ValueOf(42)); err == nil {
		t.Error("expected an error for a non-iterable value")
	}
}

func TestKeywordExtract(t *testing.T) {
	kw, err := NewKeyword(reflect.ValueOf(map[string]int{"a": 1, "b": 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kw.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", kw.Len())
	}
	v, ok := kw.Extract("a")
	if !ok || v.Int() != 1 {
		t.Errorf("Extract(a) = (%v, %v), want (1, true)", v, ok)
	}
	if kw.Len() != 1 {
		t.Errorf("Len() after Extract = %d, want 1", kw.Len())
	}
	if _, ok := kw.Extract("a"); ok {
		t.Error("second Extract(a) should fail — entries are destructive")
	}
}

func TestKeywordValidate(t *testing.T) {
	kw, _ := NewKeyword(reflect.ValueOf(map[string]int{"a": 1}))
	if err := kw.Validate(); err == nil {
		t.Error("Validate() should fail while entries remain")
	}
	kw.Extract("a")
	if err := kw.Validate(); err != nil {
		t.Errorf("Validate() should pass once drained, got %v", err)
	}
}

type fakeKeyValuer struct{}

func (fakeKeyValuer) Items() map[string]any { return map[string]any{"x": 1} }

func TestNewKeywordUsesKeyValuerWhenAvailable(t *testing.T) {
	kw, err := NewKeyword(reflect.ValueOf(fakeKeyValuer{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kw.Len() != 1 {
		t.Errorf("Len() = %d, want 1", kw.Len())
	}
}

func TestNewKeywordRejectsNonStringKeyedMap(t *testing.T) {
	if _, err := NewKeyword(reflect.ValueOf(map[int]int{1: 1})); err == nil {
		t.Error("expected an error for a non-string-keyed map")
	}
}

type fakeKeysLookuper struct{ data map[string]any }

func (f fakeKeysLookuper) Keys() []string {
	return []string{"a", "b"}
}

func (f fakeKeysLookuper) Lookup(key string) (any, bool) {
	v, ok := f.data[key]
	return v, ok
}

func TestNewKeywordUsesKeysLookuperWhenNoItems(t *testing.T) {
	kl := fakeKeysLookuper{data: map[string]any{"a": 1, "b": 2}}
	kw, err := NewKeyword(reflect.ValueOf(kl))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kw.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", kw.Len())
	}
	v, ok := kw.Extract("b")
	if !ok || v.Int() != 2 {
		t.Errorf("Extract(b) = (%v, %v), want (2, true)", v, ok)
	}
}

func TestNewKeywordKeysLookuperSkipsMissingKeys(t *testing.T) {
	kl := fakeKeysLookuper{data: map[string]any{"a": 1}}
	kw, err := NewKeyword(reflect.ValueOf(kl))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kw.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (Keys() named \"b\" but Lookup(\"b\") reported absent)", kw.Len())
	}
}
