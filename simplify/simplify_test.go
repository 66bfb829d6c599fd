// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplify

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/geomalgebra/geomalg/expr"
)

func TestSimplifyGatherSinglePairCollapses(t *testing.T) {
	v := expr.Variable("self", 3)
	g := &expr.Expression{Size: 2, Content: expr.GatherNode{
		V:     v,
		Pairs: []expr.LanePair{{Group: 0, Lane: 1}, {Group: 0, Lane: 1}},
	}}
	got := Simplify(g)
	gather, ok := got.Content.(expr.GatherNode)
	if !ok {
		t.Fatalf("Simplify(repeated pair) = %#v, want a GatherNode", got.Content)
	}
	if len(gather.Pairs) != 1 {
		t.Errorf("len(Pairs) = %d, want 1", len(gather.Pairs))
	}
	if got.Size != 2 {
		t.Errorf("Size = %d, want 2 (lane count preserved)", got.Size)
	}
}

func TestSimplifyGatherEmptyBecomesNone(t *testing.T) {
	g := &expr.Expression{Size: 0, Content: expr.GatherNode{V: expr.Variable("self", 3)}}
	got := Simplify(g)
	if !expr.IsNone(got) {
		t.Errorf("Simplify(empty gather) = %#v, want None", got.Content)
	}
}

func TestSimplifyGatherIdentitySameGroupBecomesAccess(t *testing.T) {
	// V's declared size matches the Gather's output width, modeling the
	// synthesiser's convention of sourcing a Gather from a single
	// already-selected group: only then does reading every lane in order
	// reduce to a whole-group Access.
	v := expr.Variable("self", 3)
	g := &expr.Expression{Size: 3, Content: expr.GatherNode{
		V:     v,
		Pairs: []expr.LanePair{{Group: 1, Lane: 0}, {Group: 1, Lane: 1}, {Group: 1, Lane: 2}},
	}}
	got := Simplify(g)
	access, ok := got.Content.(expr.AccessNode)
	if !ok {
		t.Fatalf("Simplify(identity same-group gather) = %#v, want AccessNode", got.Content)
	}
	if access.Group != 1 {
		t.Errorf("AccessNode.Group = %d, want 1", access.Group)
	}
}

func TestSimplifyGatherPermutedSameGroupBecomesSwizzle(t *testing.T) {
	v := expr.Variable("self", 3)
	g := &expr.Expression{Size: 3, Content: expr.GatherNode{
		V:     v,
		Pairs: []expr.LanePair{{Group: 1, Lane: 2}, {Group: 1, Lane: 0}, {Group: 1, Lane: 1}},
	}}
	got := Simplify(g)
	swizzle, ok := got.Content.(expr.SwizzleNode)
	if !ok {
		t.Fatalf("Simplify(permuted same-group gather) = %#v, want SwizzleNode", got.Content)
	}
	want := []int{2, 0, 1}
	if diff := cmp.Diff(want, swizzle.Lanes); diff != "" {
		t.Errorf("Lanes mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplifyConstantBroadcastsEqualLanes(t *testing.T) {
	c := &expr.Expression{Size: 3, Content: expr.ConstantNode{Type: expr.SimdVectorType{Width: 3}, Values: []int64{5, 5, 5}}}
	got := Simplify(c)
	cn, ok := got.Content.(expr.ConstantNode)
	if !ok {
		t.Fatalf("Simplify(uniform constant) = %#v, want ConstantNode", got.Content)
	}
	if len(cn.Values) != 1 || cn.Values[0] != 5 {
		t.Errorf("Values = %v, want [5]", cn.Values)
	}
}

func TestSimplifyConstantMixedLanesUnchanged(t *testing.T) {
	c := &expr.Expression{Size: 2, Content: expr.ConstantNode{Type: expr.SimdVectorType{Width: 2}, Values: []int64{1, 2}}}
	got := Simplify(c)
	cn := got.Content.(expr.ConstantNode)
	if len(cn.Values) != 2 {
		t.Errorf("Values = %v, want length 2 (unchanged)", cn.Values)
	}
}

func TestSimplifyAddNegatedMultiplyBecomesSubtract(t *testing.T) {
	a := expr.Variable("a", 1)
	b := expr.Variable("b", 1)
	c := expr.Variable("c", 1)
	negOne := expr.Constant(expr.SimdVectorType{Width: 1}, []int64{-1})
	add := &expr.Expression{Size: 1, Content: expr.AddNode{
		A: a,
		B: expr.Multiply(b, expr.Multiply(c, negOne)),
	}}
	got := Simplify(add)
	sub, ok := got.Content.(expr.SubtractNode)
	if !ok {
		t.Fatalf("Simplify(a+(b*(c*-1))) = %#v, want SubtractNode", got.Content)
	}
	mul, ok := sub.B.Content.(expr.MultiplyNode)
	if !ok {
		t.Fatalf("subtrahend = %#v, want MultiplyNode(b, c)", sub.B.Content)
	}
	if mul.A.Content.(expr.VariableNode).Name != "b" || mul.B.Content.(expr.VariableNode).Name != "c" {
		t.Errorf("subtrahend operands = (%v, %v), want (b, c)", mul.A.Content, mul.B.Content)
	}
}

func TestSimplifyAddNoneAbsorption(t *testing.T) {
	a := expr.Variable("a", 2)
	left := Simplify(&expr.Expression{Size: 2, Content: expr.AddNode{A: expr.None(2), B: a}})
	if left.Content.(expr.VariableNode).Name != "a" {
		t.Errorf("Simplify(None+a) = %#v, want a", left.Content)
	}
	right := Simplify(&expr.Expression{Size: 2, Content: expr.AddNode{A: a, B: expr.None(2)}})
	if right.Content.(expr.VariableNode).Name != "a" {
		t.Errorf("Simplify(a+None) = %#v, want a", right.Content)
	}
}

func TestSimplifySubtractNoneOnLeftNegates(t *testing.T) {
	b := expr.Variable("b", 2)
	got := Simplify(&expr.Expression{Size: 2, Content: expr.SubtractNode{A: expr.None(2), B: b}})
	sub, ok := got.Content.(expr.SubtractNode)
	if !ok {
		t.Fatalf("Simplify(None-b) = %#v, want SubtractNode(0, b)", got.Content)
	}
	if _, ok := sub.A.Content.(expr.ConstantNode); !ok {
		t.Errorf("Simplify(None-b).A = %#v, want a zero ConstantNode", sub.A.Content)
	}
}

func TestSimplifySubtractNoneOnRightDrops(t *testing.T) {
	a := expr.Variable("a", 2)
	got := Simplify(&expr.Expression{Size: 2, Content: expr.SubtractNode{A: a, B: expr.None(2)}})
	if got.Content.(expr.VariableNode).Name != "a" {
		t.Errorf("Simplify(a-None) = %#v, want a", got.Content)
	}
}

func TestSimplifyMultiplyCanonicalisesConstantToRight(t *testing.T) {
	a := expr.Variable("a", 1)
	five := expr.Constant(expr.SimdVectorType{Width: 1}, []int64{5})
	got := Simplify(&expr.Expression{Size: 1, Content: expr.MultiplyNode{A: five, B: a}})
	mul, ok := got.Content.(expr.MultiplyNode)
	if !ok {
		t.Fatalf("Simplify(5*a) = %#v, want MultiplyNode", got.Content)
	}
	if _, ok := mul.A.Content.(expr.VariableNode); !ok {
		t.Errorf("Simplify(5*a).A = %#v, want Variable a", mul.A.Content)
	}
	if _, ok := mul.B.Content.(expr.ConstantNode); !ok {
		t.Errorf("Simplify(5*a).B = %#v, want Constant 5", mul.B.Content)
	}
}

func TestSimplifyMultiplyAllOnesDrops(t *testing.T) {
	a := expr.Variable("a", 2)
	ones := expr.Constant(expr.SimdVectorType{Width: 2}, []int64{1, 1})
	got := Simplify(&expr.Expression{Size: 2, Content: expr.MultiplyNode{A: a, B: ones}})
	if got.Content.(expr.VariableNode).Name != "a" {
		t.Errorf("Simplify(a*1) = %#v, want a", got.Content)
	}
}

func TestSimplifyMultiplyAllZerosBecomesNone(t *testing.T) {
	a := expr.Variable("a", 2)
	zeros := expr.Constant(expr.SimdVectorType{Width: 2}, []int64{0, 0})
	got := Simplify(&expr.Expression{Size: 2, Content: expr.MultiplyNode{A: a, B: zeros}})
	if !expr.IsNone(got) {
		t.Errorf("Simplify(a*0) = %#v, want None", got.Content)
	}
}

func TestSimplifyMultiplyNoneAbsorbsPartner(t *testing.T) {
	a := expr.Variable("a", 2)
	got := Simplify(&expr.Expression{Size: 2, Content: expr.MultiplyNode{A: expr.None(2), B: a}})
	if got.Content.(expr.VariableNode).Name != "a" {
		t.Errorf("Simplify(None*a) = %#v, want a", got.Content)
	}
}
