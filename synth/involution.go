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

// Involution synthesises one of the five named involutions, or (when
// project is true) the Into conversion built from a target class's
// Projection involution.
//
// When project is true, emission refuses (ok=false) if a is missing any
// basis element the involution carries a term for — the projection's
// target class has an element a's class does not provide.
func Involution(inv ga.Involution, a class.Class, registry *class.Registry, project bool) (*expr.TraitImplementation, bool) {
	aFlat := a.FlatBasis()

	var resultSig []uint16
	for _, ae := range aFlat {
		for _, term := range inv.Terms {
			if term.In.Index == ae.Index {
				resultSig = append(resultSig, term.Out.Index)
				break
			}
		}
	}

	if project {
		for _, term := range inv.Terms {
			if indexOf(aFlat, term.In.Index) < 0 {
				return nil, false
			}
		}
	}

	sortIndices(resultSig)
	resultClass, ok := registry.Lookup(resultSig)
	if !ok {
		return nil, false
	}
	resultFlat := resultClass.FlatBasis()

	var args []expr.Argument
	baseIndex := 0
	for _, group := range resultClass.GroupedBasis {
		size := len(group)
		factors := make([]int64, size)
		pairs := make([]expr.LanePair, size)
		aGroupIdx := -1
		for k := 0; k < size; k++ {
			resultElement := resultFlat[baseIndex+k]
			var inEl, outEl ga.BasisElement
			for _, term := range inv.Terms {
				if term.Out.Index == resultElement.Index {
					inEl, outEl = term.In, term.Out
					break
				}
			}
			idxInA := indexOf(aFlat, inEl.Index)
			factors[k] = int64(outEl.Scalar) * int64(resultElement.Scalar) * int64(inEl.Scalar) * int64(aFlat[idxInA].Scalar)
			g, l := a.IndexInGroup(idxInA)
			pairs[k] = expr.LanePair{Group: g, Lane: l}
			if k == 0 {
				aGroupIdx = g
			}
		}
		aGroupSize := len(a.GroupedBasis[aGroupIdx])
		gathered := expr.Gather(expr.Variable(SelfParam, aGroupSize), pairs)
		groupExpr := simplify.Simplify(expr.Multiply(gathered, expr.Constant(expr.SimdVectorType{Width: size}, factors)))
		args = append(args, expr.Argument{Type: expr.SimdVectorType{Width: size}, Value: groupExpr})
		baseIndex += size
	}

	return &expr.TraitImplementation{
		Result:     expr.Parameter{Name: inv.Name, Type: expr.MultiVectorType{Class: resultClass}},
		Parameters: []expr.Parameter{{Name: SelfParam, Type: expr.MultiVectorType{Class: a}}},
		Body:       []expr.AstNode{expr.ReturnStatement{Expression: constructorCall(resultClass, args)}},
	}, true
}
