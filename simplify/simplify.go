// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplify

import "github.com/geomalgebra/geomalg/expr"

// Simplify applies a fixed set of eleven local rewrites to e, recursing only
// where the rewrites themselves recurse (Gather's inner expression, and
// Add/Subtract/Multiply's operands) — matching the synthesiser's own call
// pattern of simplifying exactly the expression it just built, not an
// arbitrary tree walk over every node kind.
func Simplify(e *expr.Expression) *expr.Expression {
	switch c := e.Content.(type) {
	case expr.GatherNode:
		return simplifyGather(e.Size, c)
	case expr.ConstantNode:
		return simplifyConstant(e.Size, c)
	case expr.AddNode:
		return simplifyAdd(e.Size, c)
	case expr.SubtractNode:
		return simplifySubtract(e.Size, c)
	case expr.MultiplyNode:
		return simplifyMultiply(e.Size, c)
	default:
		return e
	}
}

// simplifyGather implements rewrites 1-4: a single pair collapses to a
// length-1 Gather (lane count preserved); pairs that all address the same
// group of a source whose lane count equals the Gather's collapse to Access
// (identity permutation) or Swizzle (otherwise), and stay a Gather when the
// lane counts differ; an empty pair list collapses to None.
func simplifyGather(size int, g expr.GatherNode) *expr.Expression {
	if len(g.Pairs) == 0 {
		return expr.None(size)
	}
	inner := Simplify(g.V)
	first := g.Pairs[0]

	allSame := true
	for _, p := range g.Pairs {
		if p != first {
			allSame = false
			break
		}
	}
	if allSame {
		return &expr.Expression{Size: size, Content: expr.GatherNode{V: inner, Pairs: []expr.LanePair{first}}}
	}

	sameGroup := true
	for _, p := range g.Pairs {
		if p.Group != first.Group {
			sameGroup = false
			break
		}
	}
	if inner.Size == size && sameGroup {
		access := &expr.Expression{Size: size, Content: expr.AccessNode{Agg: inner, Group: first.Group}}
		identity := true
		for i, p := range g.Pairs {
			if i != p.Lane {
				identity = false
				break
			}
		}
		if identity {
			return access
		}
		lanes := make([]int, len(g.Pairs))
		for i, p := range g.Pairs {
			lanes[i] = p.Lane
		}
		return &expr.Expression{Size: size, Content: expr.SwizzleNode{V: access, Lanes: lanes}}
	}

	return &expr.Expression{Size: size, Content: expr.GatherNode{V: inner, Pairs: g.Pairs}}
}

// simplifyConstant implements rewrite 5: a constant whose lanes are all
// equal collapses to its length-1 broadcast form.
func simplifyConstant(size int, c expr.ConstantNode) *expr.Expression {
	first := c.Values[0]
	for _, v := range c.Values {
		if v != first {
			return &expr.Expression{Size: size, Content: c}
		}
	}
	return &expr.Expression{Size: size, Content: expr.ConstantNode{Type: c.Type, Values: []int64{first}}}
}

// simplifyAdd implements rewrite 6 (a+(b*(c*-1)) -> a-(b*c), re-simplified) and
// rewrite 7 (None is the additive identity on either side).
func simplifyAdd(size int, add expr.AddNode) *expr.Expression {
	if mulB, ok := add.B.Content.(expr.MultiplyNode); ok {
		if mulD, ok := mulB.B.Content.(expr.MultiplyNode); ok {
			if constF, ok := mulD.B.Content.(expr.ConstantNode); ok && allEqual(constF.Values, -1) {
				newB := &expr.Expression{Size: size, Content: expr.MultiplyNode{A: mulB.A, B: mulD.A}}
				return Simplify(&expr.Expression{Size: size, Content: expr.SubtractNode{A: add.A, B: newB}})
			}
		}
	}
	a := Simplify(add.A)
	b := Simplify(add.B)
	if expr.IsNone(a) {
		return b
	}
	if expr.IsNone(b) {
		return a
	}
	return &expr.Expression{Size: size, Content: expr.AddNode{A: a, B: b}}
}

// simplifySubtract implements rewrite 8: None on the left becomes a
// subtraction from zero; None on the right drops out entirely.
func simplifySubtract(size int, sub expr.SubtractNode) *expr.Expression {
	a := Simplify(sub.A)
	b := Simplify(sub.B)
	if expr.IsNone(a) {
		zero := &expr.Expression{Size: size, Content: expr.ConstantNode{Type: expr.SimdVectorType{Width: size}, Values: []int64{0}}}
		return &expr.Expression{Size: size, Content: expr.SubtractNode{A: zero, B: b}}
	}
	if expr.IsNone(b) {
		return a
	}
	return &expr.Expression{Size: size, Content: expr.SubtractNode{A: a, B: b}}
}

// simplifyMultiply implements rewrites 9-11: constants canonicalise to the
// right-hand operand; None absorbs its partner (an open-question rule,
// preserved as-is — see DESIGN.md); a right-hand all-ones constant
// drops out, a right-hand all-zeros constant collapses the whole product
// to None.
func simplifyMultiply(size int, mul expr.MultiplyNode) *expr.Expression {
	a := Simplify(mul.A)
	b := Simplify(mul.B)
	if _, ok := a.Content.(expr.ConstantNode); ok {
		a, b = b, a
	}
	if expr.IsNone(a) {
		return b
	}
	switch bc := b.Content.(type) {
	case expr.NoneNode:
		return a
	case expr.ConstantNode:
		if allEqual(bc.Values, 1) {
			return a
		}
		if allEqual(bc.Values, 0) {
			return expr.None(size)
		}
		return &expr.Expression{Size: size, Content: expr.MultiplyNode{A: a, B: b}}
	default:
		return &expr.Expression{Size: size, Content: expr.MultiplyNode{A: a, B: b}}
	}
}

func allEqual(values []int64, want int64) bool {
	for _, v := range values {
		if v != want {
			return false
		}
	}
	return true
}
