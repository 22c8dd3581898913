package autodiff

import "testing"

// TestNew tests leaf node construction.
func TestNew(t *testing.T) {
	v := New(3.5)

	if v.Data() != 3.5 {
		t.Errorf("Data() = %g, want 3.5", v.Data())
	}
	if v.Grad() != 0 {
		t.Errorf("Grad() = %g, want 0 before any backward pass", v.Grad())
	}
	if !v.IsLeaf() {
		t.Error("IsLeaf() = false, want true for a node built from a number")
	}
	if v.Op() != "" {
		t.Errorf("Op() = %q, want empty tag for a leaf", v.Op())
	}
	if v.Inputs() != nil {
		t.Errorf("Inputs() = %v, want nil for a leaf", v.Inputs())
	}
}

// TestValues tests promotion of raw numbers to leaf nodes.
func TestValues(t *testing.T) {
	vs := Values([]float64{1, -2, 0.5})

	if len(vs) != 3 {
		t.Fatalf("len(Values) = %d, want 3", len(vs))
	}
	for i, want := range []float64{1, -2, 0.5} {
		if vs[i].Data() != want {
			t.Errorf("Values[%d].Data() = %g, want %g", i, vs[i].Data(), want)
		}
		if !vs[i].IsLeaf() {
			t.Errorf("Values[%d] should be a leaf", i)
		}
	}
}

// TestSetData tests in-place parameter updates.
func TestSetData(t *testing.T) {
	v := New(1.0)
	v.SetData(-0.25)

	if v.Data() != -0.25 {
		t.Errorf("Data() after SetData = %g, want -0.25", v.Data())
	}
}

// TestZeroGrad tests single-node gradient reset.
func TestZeroGrad(t *testing.T) {
	a := New(2.0)
	b := a.MulScalar(3)
	b.Backward()

	if a.Grad() != 3 {
		t.Fatalf("Grad() = %g, want 3", a.Grad())
	}

	a.ZeroGrad()
	if a.Grad() != 0 {
		t.Errorf("Grad() after ZeroGrad = %g, want 0", a.Grad())
	}
}

// TestProvenance tests that operation nodes record their operands.
func TestProvenance(t *testing.T) {
	a := New(1.0)
	b := New(2.0)
	c := a.Add(b)

	if c.IsLeaf() {
		t.Error("operation result should not be a leaf")
	}
	if c.Op() != "+" {
		t.Errorf("Op() = %q, want %q", c.Op(), "+")
	}

	inputs := c.Inputs()
	if len(inputs) != 2 || inputs[0] != a || inputs[1] != b {
		t.Errorf("Inputs() = %v, want [a, b] in operand order", inputs)
	}
}

// TestString tests the debug representation.
func TestString(t *testing.T) {
	v := New(2.0)
	if got := v.String(); got != "Value(data=2, grad=0)" {
		t.Errorf("String() = %q", got)
	}

	r := v.ReLU()
	if got := r.String(); got != "Value(data=2, grad=0, op=relu)" {
		t.Errorf("String() = %q", got)
	}
}

// TestOpTags tests the tag reported for each primitive.
func TestOpTags(t *testing.T) {
	x := New(1.5)

	tests := []struct {
		name string
		node *Value
		want string
	}{
		{"add", x.Add(New(1)), "+"},
		{"mul", x.Mul(New(2)), "*"},
		{"pow", x.Pow(3), "pow(3)"},
		{"relu", x.ReLU(), "relu"},
		{"exp", x.Exp(), "exp"},
		{"log", x.Log(), "log"},
		{"tanh", x.Tanh(), "tanh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Op() != tt.want {
				t.Errorf("Op() = %q, want %q", tt.node.Op(), tt.want)
			}
		})
	}
}
