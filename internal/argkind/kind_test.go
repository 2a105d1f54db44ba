package argkind

import "testing"

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name string
		k    Kind
		pos  bool
		kw   bool
		opt  bool
		varr bool
		req  bool
	}{
		{"plain positional", POS, true, false, false, false, true},
		{"optional positional", POS | OPT, true, false, true, false, false},
		{"args pack", POS | VAR, true, false, false, true, false},
		{"plain keyword", KW, false, true, false, false, true},
		{"optional keyword", KW | OPT, false, true, true, false, false},
		{"kwargs pack", KW | VAR, false, true, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.k&POS != 0) != tt.pos {
				t.Errorf("POS bit = %v, want %v", tt.k&POS != 0, tt.pos)
			}
			if (tt.k&KW != 0) != tt.kw {
				t.Errorf("KW bit = %v, want %v", tt.k&KW != 0, tt.kw)
			}
			if tt.k.Optional() != tt.opt {
				t.Errorf("Optional() = %v, want %v", tt.k.Optional(), tt.opt)
			}
			if tt.k.Variadic() != tt.varr {
				t.Errorf("Variadic() = %v, want %v", tt.k.Variadic(), tt.varr)
			}
			if tt.k.Required() != tt.req {
				t.Errorf("Required() = %v, want %v", tt.k.Required(), tt.req)
			}
		})
	}
}

func TestArgsAndKwargs(t *testing.T) {
	if !(POS | VAR).Args() {
		t.Error("POS|VAR should be Args()")
	}
	if (POS | VAR).Kwargs() {
		t.Error("POS|VAR should not be Kwargs()")
	}
	if !(KW | VAR).Kwargs() {
		t.Error("KW|VAR should be Kwargs()")
	}
}

func TestNormativeOrder(t *testing.T) {
	order := []Kind{POS, POS | OPT, POS | VAR, KW, KW | OPT, KW | VAR}
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if !Less(order[i], order[j]) {
				t.Errorf("expected %s < %s in the normative order", order[i], order[j])
			}
			if Less(order[j], order[i]) {
				t.Errorf("unexpected %s < %s", order[j], order[i])
			}
		}
	}
}

func TestString(t *testing.T) {
	tests := map[Kind]string{
		POS:         "P",
		KW:          "K",
		POS | OPT:   "PO",
		KW | VAR:    "KV",
		Kind(0):     "-",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
