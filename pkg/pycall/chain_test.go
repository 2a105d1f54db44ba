package pycall

import "testing"

func TestChainComposesLeftToRight(t *testing.T) {
	double := func(x int) int { return x * 2 }
	incr := func(x int) int { return x + 1 }

	c, err := NewChain(double, incr)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	out, err := c.Invoke(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// double runs first, then incr: incr(double(5)) = incr(10) = 11.
	if out != 11 {
		t.Errorf("Invoke(5) = %v, want 11", out)
	}
}

func TestChainThenAppendsAfterEverythingPresent(t *testing.T) {
	double := func(x int) int { return x * 2 }
	incr := func(x int) int { return x + 1 }

	c, err := NewChain(double)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	c, err = c.Then(incr)
	if err != nil {
		t.Fatalf("Then: %v", err)
	}
	out, err := c.Invoke(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 11 {
		t.Errorf("Invoke(5) = %v, want 11", out)
	}
}

func TestChainFirstStageAcceptsMultipleArguments(t *testing.T) {
	sub := func(x, y int) int { return x - y }
	identity := func(x int) int { return x }

	c, err := NewChain(sub, identity)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	out, err := c.Invoke(10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 8 {
		t.Errorf("Invoke(10, 2) = %v, want 8", out)
	}
}

func TestChainPropagatesError(t *testing.T) {
	failing := func(x int) (int, error) { return 0, errBoom }
	c, err := NewChain(failing)
	if err != nil {
		t.Fatalf("NewChain: %v", err)
	}
	if _, err := c.Invoke(1); err != errBoom {
		t.Errorf("Invoke() error = %v, want errBoom", err)
	}
}

func TestNewChainRejectsNonFunc(t *testing.T) {
	if _, err := NewChain(42); err == nil {
		t.Error("NewChain with a non-func value should fail at construction")
	}
}

func TestEmptyChainFails(t *testing.T) {
	var c Chain
	if _, err := c.Invoke(1); err == nil {
		t.Error("an empty chain should fail rather than silently pass x through")
	}
}

var errBoom = &testError{"boom"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
