package pycall

import "testing"

func mul3(a, b, c int) int { return a * b * c }

func TestPartialBindThenCall(t *testing.T) {
	fn, err := Def(mul3)
	if err != nil {
		t.Fatalf("Def: %v", err)
	}
	bound, err := fn.Partial().Bind(Arg(2))
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	out, err := bound.Call(Arg(3), Arg(4))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out[0] != 24 {
		t.Errorf("got %v, want [24]", out)
	}
}

func TestPartialBindIsNonMutating(t *testing.T) {
	fn, _ := Def(mul3)
	base := fn.Partial()
	first, err := base.Bind(Arg(2))
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	second, err := base.Bind(Arg(5))
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	out1, err := first.Call(Arg(1), Arg(1))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	out2, err := second.Call(Arg(1), Arg(1))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out1[0] != 2 || out2[0] != 5 {
		t.Errorf("got %v, %v; binding should not leak across instances", out1, out2)
	}
}

func TestUnbindThenReinvokeMatchesDirectCall(t *testing.T) {
	fn, _ := Def(mul3)
	bound, _ := fn.Partial().Bind(Arg(2))
	unbound := bound.Unbind()
	out, err := unbound.Call(Arg(2), Arg(3), Arg(4))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	direct, err := fn.Call(Arg(2), Arg(3), Arg(4))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out[0] != direct[0] {
		t.Errorf("unbind+call = %v, direct call = %v", out, direct)
	}
}

func TestBindThenCallEquivalentToOneShotCall(t *testing.T) {
	fn, _ := Def(mul3)
	bound, err := fn.Partial().Bind(Arg(2), Arg(3))
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	viaBind, err := bound.Call(Arg(4))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	viaDirect, err := fn.Call(Arg(2), Arg(3), Arg(4))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if viaBind[0] != viaDirect[0] {
		t.Errorf("p.bind(w...)(rest...) = %v, p(w..., rest...) = %v", viaBind, viaDirect)
	}
}
