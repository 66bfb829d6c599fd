// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/geomalgebra/geomalg/class"

// Node is the closed sum of expression contents. Expression
// pairs a Node with the lane count it produces; the tree is strict (no
// sharing) so every child is owned by exactly one parent.
type Node interface {
	isNode()
}

// Expression is one node of the IR plus the lane count it evaluates to.
type Expression struct {
	Size    int
	Content Node
}

// Argument is one (type, value) pair passed to an InvokeClassMethod or
// InvokeInstanceMethod call.
type Argument struct {
	Type  DataType
	Value *Expression
}

// NoneNode is the degenerate / empty result, modeled as a distinguished
// value rather than a nil pointer so construction helpers never need a
// nil special case.
type NoneNode struct{}

func (NoneNode) isNode() {}

// VariableNode references a named value already in scope (a parameter or a
// local variable introduced by VariableAssignment).
type VariableNode struct {
	Name string
}

func (VariableNode) isNode() {}

// InvokeClassMethodNode calls an associated function of a class, such as
// its "Constructor".
type InvokeClassMethodNode struct {
	Class  class.Class
	Method string
	Args   []Argument
}

func (InvokeClassMethodNode) isNode() {}

// InvokeInstanceMethodNode calls a method on a receiver value.
type InvokeInstanceMethodNode struct {
	ReceiverType DataType
	Receiver     *Expression
	Method       string
	Args         []Argument
}

func (InvokeInstanceMethodNode) isNode() {}

// ConversionNode narrows or widens a multivector value from Src's class to
// Dst's, as emitted by a Transformation whose inner product overshoots the
// target class.
type ConversionNode struct {
	Src, Dst class.Class
	Inner    *Expression
}

func (ConversionNode) isNode() {}

// SelectNode is a ternary: Then if Cond else Else.
type SelectNode struct {
	Cond, Then, Else *Expression
}

func (SelectNode) isNode() {}

// AccessNode reads one whole SIMD group out of a multivector or class-method
// result.
type AccessNode struct {
	Agg   *Expression
	Group int
}

func (AccessNode) isNode() {}

// SwizzleNode permutes the lanes of a single already-accessed group.
type SwizzleNode struct {
	V     *Expression
	Lanes []int
}

func (SwizzleNode) isNode() {}

// LanePair addresses one (group, lane) position of a Gather's source.
type LanePair struct {
	Group, Lane int
}

// GatherNode builds a SIMD vector by reading individually-addressed
// (group, lane) positions out of V.
type GatherNode struct {
	V     *Expression
	Pairs []LanePair
}

func (GatherNode) isNode() {}

// ConstantNode is a literal SIMD vector or scalar. Values has length 1 (the
// broadcast form the simplifier produces) or equal to the node's Size.
type ConstantNode struct {
	Type   DataType
	Values []int64
}

func (ConstantNode) isNode() {}

// SquareRootNode is the scalar square root used by Magnitude.
type SquareRootNode struct {
	V *Expression
}

func (SquareRootNode) isNode() {}

// AddNode is element-wise addition.
type AddNode struct{ A, B *Expression }

func (AddNode) isNode() {}

// SubtractNode is element-wise subtraction.
type SubtractNode struct{ A, B *Expression }

func (SubtractNode) isNode() {}

// MultiplyNode is element-wise multiplication.
type MultiplyNode struct{ A, B *Expression }

func (MultiplyNode) isNode() {}

// DivideNode is element-wise division.
type DivideNode struct{ A, B *Expression }

func (DivideNode) isNode() {}

// LessThanNode is a scalar less-than comparison.
type LessThanNode struct{ A, B *Expression }

func (LessThanNode) isNode() {}

// EqualNode is a scalar equality comparison.
type EqualNode struct{ A, B *Expression }

func (EqualNode) isNode() {}

// LogicAndNode is a scalar bitwise/logical and, used by Powi's parity test.
type LogicAndNode struct{ A, B *Expression }

func (LogicAndNode) isNode() {}

// BitShiftRightNode shifts a scalar integer right, used by Powi's loop.
type BitShiftRightNode struct{ A, B *Expression }

func (BitShiftRightNode) isNode() {}

// IsNone reports whether e's content is the None sentinel.
func IsNone(e *Expression) bool {
	_, ok := e.Content.(NoneNode)
	return ok
}
