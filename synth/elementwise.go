// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"github.com/geomalgebra/geomalg/class"
	"github.com/geomalgebra/geomalg/expr"
	"github.com/geomalgebra/geomalg/ga"
	"github.com/geomalgebra/geomalg/simplify"
)

// ElementWise synthesises Add, Sub, Mul or Div: the result
// signature is the union of both operands' indices; each result lane
// gathers the matching source lane (with its sign) from each operand, or a
// zero factor if the operand lacks that element entirely.
func ElementWise(name string, a, b class.Class, registry *class.Registry) (*expr.TraitImplementation, bool) {
	aFlat := a.FlatBasis()
	bFlat := b.FlatBasis()

	seen := make(map[uint16]bool)
	var resultSig []uint16
	for _, e := range aFlat {
		if !seen[e.Index] {
			seen[e.Index] = true
			resultSig = append(resultSig, e.Index)
		}
	}
	for _, e := range bFlat {
		if !seen[e.Index] {
			seen[e.Index] = true
			resultSig = append(resultSig, e.Index)
		}
	}
	sortIndices(resultSig)
	resultClass, ok := registry.Lookup(resultSig)
	if !ok {
		return nil, false
	}
	resultFlat := resultClass.FlatBasis()

	operands := []struct {
		class class.Class
		flat  []ga.BasisElement
		name  string
	}{
		{a, aFlat, SelfParam},
		{b, bFlat, OtherParam},
	}

	var args []expr.Argument
	baseIndex := 0
	for _, group := range resultClass.GroupedBasis {
		size := len(group)
		var operandExprs [2]*expr.Expression
		for oi, operand := range operands {
			factors := make([]int64, size)
			pairs := make([]expr.LanePair, size)
			groupIdx := -1
			for k := 0; k < size; k++ {
				re := resultFlat[baseIndex+k]
				idx := indexOf(operand.flat, re.Index)
				if idx >= 0 {
					g, l := operand.class.IndexInGroup(idx)
					groupIdx = g
					pairs[k] = expr.LanePair{Group: g, Lane: l}
					factors[k] = int64(re.Scalar) * int64(operand.flat[idx].Scalar)
				}
			}
			srcSize := size
			if groupIdx >= 0 {
				srcSize = len(operand.class.GroupedBasis[groupIdx])
			}
			gathered := expr.Gather(expr.Variable(operand.name, srcSize), pairs)
			operandExprs[oi] = expr.Multiply(gathered, expr.Constant(expr.SimdVectorType{Width: size}, factors))
		}
		var combined *expr.Expression
		switch name {
		case "Add":
			combined = expr.Add(operandExprs[0], operandExprs[1])
		case "Sub":
			combined = expr.Subtract(operandExprs[0], operandExprs[1])
		case "Mul":
			combined = expr.Multiply(operandExprs[0], operandExprs[1])
		case "Div":
			combined = expr.Divide(operandExprs[0], operandExprs[1])
		default:
			panic("synth: unknown element-wise operation " + name)
		}
		args = append(args, expr.Argument{Type: expr.SimdVectorType{Width: size}, Value: simplify.Simplify(combined)})
		baseIndex += size
	}

	return &expr.TraitImplementation{
		Result: expr.Parameter{Name: name, Type: expr.MultiVectorType{Class: resultClass}},
		Parameters: []expr.Parameter{
			{Name: SelfParam, Type: expr.MultiVectorType{Class: a}},
			{Name: OtherParam, Type: expr.MultiVectorType{Class: b}},
		},
		Body: []expr.AstNode{expr.ReturnStatement{Expression: constructorCall(resultClass, args)}},
	}, true
}
