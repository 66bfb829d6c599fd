// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"github.com/geomalgebra/geomalg/class"
	"github.com/geomalgebra/geomalg/expr"
	"github.com/geomalgebra/geomalg/simplify"
)

// Constant synthesises the Zero/One nullary constructors:
// one group at a time, a lane is 1 iff it is the scalar basis element and
// name is "One", else 0.
func Constant(name string, a class.Class) *expr.TraitImplementation {
	scalarValue := int64(0)
	switch name {
	case "One":
		scalarValue = 1
	case "Zero":
	default:
		panic("synth: Constant only supports Zero and One, got " + name)
	}
	args := make([]expr.Argument, 0, len(a.GroupedBasis))
	for _, group := range a.GroupedBasis {
		size := len(group)
		values := make([]int64, size)
		for i, e := range group {
			if e.Index == 0 {
				values[i] = scalarValue
			}
		}
		groupExpr := simplify.Simplify(expr.Constant(expr.SimdVectorType{Width: size}, values))
		args = append(args, expr.Argument{Type: expr.SimdVectorType{Width: size}, Value: groupExpr})
	}
	return &expr.TraitImplementation{
		Result: expr.Parameter{Name: name, Type: expr.MultiVectorType{Class: a}},
		Body: []expr.AstNode{
			expr.ReturnStatement{Expression: constructorCall(a, args)},
		},
	}
}
