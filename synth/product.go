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

// productCell is one (coefficient, b-lane) entry of the sum-of-pairs
// matrix built for one result lane. A zero coefficient marks "no term".
type productCell struct {
	coeff   int64
	bLaneIn int // index into b's flat basis
}

// contraction accumulates the columns the heuristic below has folded into
// one combined gather pair plus one coefficient vector.
type contraction struct {
	aVar, bVar     *expr.Expression
	aPairs, bPairs []expr.LanePair
	coeff          []int64
	established    bool
}

// Product synthesises one of the seven canonical products:
// the target signature is the union of every term whose factors both
// operands provide; each output lane is built from a sum of fused-
// multiply-add columns, with disjoint-lane-pattern columns from the same
// source groups folded into a single wide contraction (tie-broken on the
// first non-zero column's group index).
func Product(product ga.NamedProduct, a, b class.Class, registry *class.Registry) (*expr.TraitImplementation, bool) {
	aFlat := a.FlatBasis()
	bFlat := b.FlatBasis()

	seen := make(map[uint16]bool)
	var resultSig []uint16
	for _, term := range product.Terms {
		if indexOf(aFlat, term.FactorA.Index) >= 0 && indexOf(bFlat, term.FactorB.Index) >= 0 {
			if !seen[term.Product.Index] {
				seen[term.Product.Index] = true
				resultSig = append(resultSig, term.Product.Index)
			}
		}
	}
	sortIndices(resultSig)
	resultClass, ok := registry.Lookup(resultSig)
	if !ok {
		return nil, false
	}
	resultFlat := resultClass.FlatBasis()

	sortedTerms := make([][]productCell, len(resultFlat))
	for y := range sortedTerms {
		sortedTerms[y] = make([]productCell, len(aFlat))
	}
	for _, term := range product.Terms {
		y := indexOf(resultFlat, term.Product.Index)
		if y < 0 {
			continue
		}
		x := indexOf(aFlat, term.FactorA.Index)
		if x < 0 {
			continue
		}
		gi := indexOf(bFlat, term.FactorB.Index)
		if gi < 0 {
			continue
		}
		coeff := int64(resultFlat[y].Scalar) * int64(term.Product.Scalar) * int64(aFlat[x].Scalar) *
			int64(term.FactorA.Scalar) * int64(bFlat[gi].Scalar) * int64(term.FactorB.Scalar)
		sortedTerms[y][x] = productCell{coeff: coeff, bLaneIn: gi}
	}

	var args []expr.Argument
	baseIndex := 0
	for _, resultGroup := range resultClass.GroupedBasis {
		size := len(resultGroup)
		accum := expr.None(size)
		con := &contraction{
			aVar:   expr.None(size),
			bVar:   expr.None(size),
			aPairs: make([]expr.LanePair, size),
			bPairs: make([]expr.LanePair, size),
			coeff:  make([]int64, size),
		}
		anyContraction := false

		for x := 0; x < len(aFlat); x++ {
			col := make([]productCell, size)
			colAllZero := true
			for i := 0; i < size; i++ {
				col[i] = sortedTerms[baseIndex+i][x]
				if col[i].coeff != 0 {
					colAllZero = false
				}
			}
			if colAllZero {
				continue
			}

			aGroup, aLane := a.IndexInGroup(x)
			aPairs := make([]expr.LanePair, size)
			for i := range aPairs {
				aPairs[i] = expr.LanePair{Group: aGroup, Lane: aLane}
			}

			bPairsRaw := make([]expr.LanePair, size)
			for i := 0; i < size; i++ {
				g, l := b.IndexInGroup(col[i].bLaneIn)
				bPairsRaw[i] = expr.LanePair{Group: g, Lane: l}
			}
			nonZeroIdx := -1
			for i, c := range col {
				if c.coeff != 0 {
					nonZeroIdx = i
					break
				}
			}
			bGroup := bPairsRaw[nonZeroIdx].Group
			bPairs := make([]expr.LanePair, size)
			hasZeroLane := false
			for i, c := range col {
				if c.coeff == 0 {
					bPairs[i] = bPairsRaw[nonZeroIdx]
					hasZeroLane = true
				} else {
					bPairs[i] = bPairsRaw[i]
				}
			}

			isContractable := true
			for i, c := range col {
				if c.coeff != 0 && con.coeff[i] != 0 {
					isContractable = false
					break
				}
			}
			if isContractable && con.established && con.aVar.Size != len(a.GroupedBasis[aGroup]) {
				isContractable = false
			}
			if isContractable && con.established && con.bVar.Size != len(b.GroupedBasis[bGroup]) {
				isContractable = false
			}

			if isContractable && hasZeroLane {
				if !con.established {
					con.aVar = expr.Variable(SelfParam, len(a.GroupedBasis[aGroup]))
					con.bVar = expr.Variable(OtherParam, len(b.GroupedBasis[bGroup]))
					for i := range con.aPairs {
						con.aPairs[i] = expr.LanePair{Group: aGroup, Lane: 0}
					}
					for i := range con.bPairs {
						con.bPairs[i] = expr.LanePair{Group: bGroup, Lane: 0}
					}
					con.established = true
				}
				for i, c := range col {
					if c.coeff != 0 {
						con.aPairs[i] = aPairs[i]
						con.bPairs[i] = bPairs[i]
						con.coeff[i] = c.coeff
						anyContraction = true
					}
				}
			} else {
				coeffs := make([]int64, size)
				for i, c := range col {
					coeffs[i] = c.coeff
				}
				aExpr := expr.Gather(expr.Variable(SelfParam, len(a.GroupedBasis[aGroup])), aPairs)
				bExpr := expr.Gather(expr.Variable(OtherParam, len(b.GroupedBasis[bGroup])), bPairs)
				term := expr.Multiply(aExpr, expr.Multiply(bExpr, expr.Constant(expr.SimdVectorType{Width: size}, coeffs)))
				accum = expr.Add(accum, term)
			}
		}

		if anyContraction {
			aGather := expr.Gather(con.aVar, con.aPairs)
			bGather := expr.Gather(con.bVar, con.bPairs)
			term := expr.Multiply(expr.Multiply(aGather, bGather), expr.Constant(expr.SimdVectorType{Width: size}, con.coeff))
			accum = expr.Add(accum, term)
		}

		if expr.IsNone(accum) {
			accum = expr.Constant(expr.SimdVectorType{Width: size}, make([]int64, size))
		}
		args = append(args, expr.Argument{Type: expr.SimdVectorType{Width: size}, Value: simplify.Simplify(accum)})
		baseIndex += size
	}

	if len(args) == 0 {
		return nil, false
	}
	return &expr.TraitImplementation{
		Result: expr.Parameter{Name: product.Name, Type: expr.MultiVectorType{Class: resultClass}},
		Parameters: []expr.Parameter{
			{Name: SelfParam, Type: expr.MultiVectorType{Class: a}},
			{Name: OtherParam, Type: expr.MultiVectorType{Class: b}},
		},
		Body: []expr.AstNode{expr.ReturnStatement{Expression: constructorCall(resultClass, args)}},
	}, true
}
