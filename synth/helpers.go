// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"sort"

	"github.com/geomalgebra/geomalg/class"
	"github.com/geomalgebra/geomalg/expr"
	"github.com/geomalgebra/geomalg/ga"
)

// SelfParam and OtherParam are the fixed parameter names every generated
// trait implementation uses for its receiver and (when binary) its other
// operand, matching the original's "self"/"other" convention.
const (
	SelfParam  = "self"
	OtherParam = "other"
)

func sortIndices(indices []uint16) {
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
}

// indexOf returns the position of the basis element with the given index
// in basis, or -1 if absent.
func indexOf(basis []ga.BasisElement, index uint16) int {
	for i, e := range basis {
		if e.Index == index {
			return i
		}
	}
	return -1
}

func constructorCall(c class.Class, args []expr.Argument) *expr.Expression {
	return &expr.Expression{Size: 1, Content: expr.InvokeClassMethodNode{Class: c, Method: "Constructor", Args: args}}
}

func classMethodCall(c class.Class, method string, args []expr.Argument) *expr.Expression {
	return &expr.Expression{Size: 1, Content: expr.InvokeClassMethodNode{Class: c, Method: method, Args: args}}
}

func instanceMethodCall(receiverType expr.DataType, receiver *expr.Expression, method string, args []expr.Argument) *expr.Expression {
	return &expr.Expression{Size: 1, Content: expr.InvokeInstanceMethodNode{ReceiverType: receiverType, Receiver: receiver, Method: method, Args: args}}
}

// multiVectorClass extracts the class carried by a MultiVectorType,
// panicking on a programmer error (a derivation fed a non-multivector
// result), mirroring Parameter::multi_vector_class's unreachable!().
func multiVectorClass(t expr.DataType) class.Class {
	mv, ok := t.(expr.MultiVectorType)
	if !ok {
		panic("synth: expected a MultiVector data type")
	}
	return mv.Class
}
