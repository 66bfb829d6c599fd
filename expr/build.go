// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "fmt"

// None builds the degenerate result of the given lane count.
func None(size int) *Expression {
	return &Expression{Size: size, Content: NoneNode{}}
}

// Variable references a named value of the given lane count.
func Variable(name string, size int) *Expression {
	return &Expression{Size: size, Content: VariableNode{Name: name}}
}

// Gather builds a SIMD vector from pairs addressed positions of v. Its
// lane count is always len(pairs).
func Gather(v *Expression, pairs []LanePair) *Expression {
	return &Expression{Size: len(pairs), Content: GatherNode{V: v, Pairs: pairs}}
}

// Constant builds a literal. For a SimdVectorType, values must have length
// 1 (broadcast form) or the vector's width.
func Constant(t DataType, values []int64) *Expression {
	size := len(values)
	if sv, ok := t.(SimdVectorType); ok {
		if len(values) != 1 && len(values) != sv.Width {
			panic(fmt.Sprintf("expr: constant of length %d is neither broadcast (1) nor the vector width (%d)", len(values), sv.Width))
		}
		size = sv.Width
	}
	return &Expression{Size: size, Content: ConstantNode{Type: t, Values: values}}
}

func binary(a, b *Expression, build func(a, b *Expression) Node) *Expression {
	if a.Size != b.Size {
		panic(fmt.Sprintf("expr: binary operand size mismatch: %d vs %d", a.Size, b.Size))
	}
	return &Expression{Size: a.Size, Content: build(a, b)}
}

// Add builds an element-wise addition of two equal-size operands.
func Add(a, b *Expression) *Expression {
	return binary(a, b, func(a, b *Expression) Node { return AddNode{A: a, B: b} })
}

// Subtract builds an element-wise subtraction of two equal-size operands.
func Subtract(a, b *Expression) *Expression {
	return binary(a, b, func(a, b *Expression) Node { return SubtractNode{A: a, B: b} })
}

// Multiply builds an element-wise multiplication of two equal-size operands.
func Multiply(a, b *Expression) *Expression {
	return binary(a, b, func(a, b *Expression) Node { return MultiplyNode{A: a, B: b} })
}

// Divide builds an element-wise division of two equal-size operands.
func Divide(a, b *Expression) *Expression {
	return binary(a, b, func(a, b *Expression) Node { return DivideNode{A: a, B: b} })
}

// LessThan builds a scalar less-than comparison.
func LessThan(a, b *Expression) *Expression {
	return binary(a, b, func(a, b *Expression) Node { return LessThanNode{A: a, B: b} })
}

// Equal builds a scalar equality comparison.
func Equal(a, b *Expression) *Expression {
	return binary(a, b, func(a, b *Expression) Node { return EqualNode{A: a, B: b} })
}

// LogicAnd builds a scalar logical/bitwise and.
func LogicAnd(a, b *Expression) *Expression {
	return binary(a, b, func(a, b *Expression) Node { return LogicAndNode{A: a, B: b} })
}

// BitShiftRight builds a scalar right shift.
func BitShiftRight(a, b *Expression) *Expression {
	return binary(a, b, func(a, b *Expression) Node { return BitShiftRightNode{A: a, B: b} })
}

// Select builds a ternary: then if cond else els. then and els must agree
// in size; the result takes their size.
func Select(cond, then, els *Expression) *Expression {
	if then.Size != els.Size {
		panic(fmt.Sprintf("expr: select branch size mismatch: %d vs %d", then.Size, els.Size))
	}
	return &Expression{Size: then.Size, Content: SelectNode{Cond: cond, Then: then, Else: els}}
}

// SquareRoot builds a scalar square root.
func SquareRoot(v *Expression) *Expression {
	return &Expression{Size: v.Size, Content: SquareRootNode{V: v}}
}

// Access reads group out of agg, producing a vector of that group's width.
func Access(agg *Expression, group, width int) *Expression {
	return &Expression{Size: width, Content: AccessNode{Agg: agg, Group: group}}
}
