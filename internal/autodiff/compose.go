package autodiff

// Derived operations, expressed strictly by composing the primitive nodes.
// None of these introduce a backward rule of their own: every gradient they
// produce flows through add, mul, pow, relu, exp, log or tanh. Keeping the
// rule table that small is a design property, not a shortcut — it is what
// the gradient checks in this package verify exhaustively.

// Neg returns a new node computing -v, expressed as v * -1.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns a new node computing v - other, expressed as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// SubScalar returns a new node computing v - c.
//
// For the reversed c - v form, promote explicitly: New(c).Sub(v).
func (v *Value) SubScalar(c float64) *Value {
	return v.Sub(New(c))
}

// Div returns a new node computing v / other, expressed as v * other^(-1).
//
// Division by zero yields ±Inf per IEEE-754 and propagates through the
// graph; no error is raised.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Reciprocal())
}

// DivScalar returns a new node computing v / c.
//
// For the reversed c / v form, promote explicitly: New(c).Div(v).
func (v *Value) DivScalar(c float64) *Value {
	return v.Div(New(c))
}

// Sigmoid returns a new node computing 1 / (1 + e^(-v)), composed from the
// exp, add and pow primitives.
func (v *Value) Sigmoid() *Value {
	return v.Neg().Exp().AddScalar(1).Reciprocal()
}

// Sum reduces a slice of nodes to a single node by repeated addition.
//
// An empty slice reduces to a fresh zero leaf.
func Sum(values []*Value) *Value {
	if len(values) == 0 {
		return New(0)
	}
	total := values[0]
	for _, v := range values[1:] {
		total = total.Add(v)
	}
	return total
}

// SquaredError returns a new node computing (v - target)².
func (v *Value) SquaredError(target *Value) *Value {
	return v.Sub(target).Pow(2)
}
