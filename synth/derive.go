// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import "github.com/geomalgebra/geomalg/expr"

// selfVar builds the size-1 "self" reference shared by every unary
// derivation below.
func selfVar(paramA expr.Parameter) *expr.Expression {
	return &expr.Expression{Size: 1, Content: expr.VariableNode{Name: paramA.Name}}
}

// call invokes method on receiver (a size-1 multivector), with args.
func call(receiverType expr.DataType, receiver *expr.Expression, method string, args ...expr.Argument) *expr.Expression {
	return instanceMethodCall(receiverType, receiver, method, args)
}

// SquaredMagnitude derives ScalarProduct(a, Involution(a)) as a nullary
// method: a scalar-valued class combining a value with
// its own involuted image.
func SquaredMagnitude(name string, scalarProduct, involution *expr.TraitImplementation, paramA expr.Parameter) *expr.TraitImplementation {
	involutionClass := multiVectorClass(involution.Result.Type)
	inner := call(paramA.Type, selfVar(paramA), involution.Result.Name)
	arg := expr.Argument{Type: expr.MultiVectorType{Class: involutionClass}, Value: inner}
	result := call(paramA.Type, selfVar(paramA), scalarProduct.Result.Name, arg)
	return &expr.TraitImplementation{
		Result:     expr.Parameter{Name: name, Type: scalarProduct.Result.Type},
		Parameters: []expr.Parameter{paramA},
		Body:       []expr.AstNode{expr.ReturnStatement{Expression: result}},
	}
}

// Scale derives a*s for a scalar s of the algebra's scalar class, by
// wrapping s in a one-lane constructor call and invoking the geometric
// product.
func Scale(name string, geometricProduct *expr.TraitImplementation, paramA expr.Parameter, scalarClassB expr.Parameter) *expr.TraitImplementation {
	bClass := multiVectorClass(scalarClassB.Type)
	other := expr.Parameter{Name: OtherParam, Type: expr.SimdVectorType{Width: 1}}
	wrapped := constructorCall(bClass, []expr.Argument{{Type: expr.SimdVectorType{Width: 1}, Value: &expr.Expression{Size: 1, Content: expr.VariableNode{Name: OtherParam}}}})
	arg := expr.Argument{Type: expr.MultiVectorType{Class: bClass}, Value: wrapped}
	result := call(paramA.Type, selfVar(paramA), geometricProduct.Result.Name, arg)
	return &expr.TraitImplementation{
		Result:     expr.Parameter{Name: name, Type: geometricProduct.Result.Type},
		Parameters: []expr.Parameter{paramA, other},
		Body:       []expr.AstNode{expr.ReturnStatement{Expression: result}},
	}
}

// Magnitude derives SquareRoot(Access(SquaredMagnitude(a), 0)) wrapped back
// into the squared-magnitude class's constructor.
func Magnitude(name string, squaredMagnitude *expr.TraitImplementation, paramA expr.Parameter) *expr.TraitImplementation {
	smClass := multiVectorClass(squaredMagnitude.Result.Type)
	smCall := call(paramA.Type, selfVar(paramA), squaredMagnitude.Result.Name)
	access := expr.Access(smCall, 0, 1)
	sqrt := expr.SquareRoot(access)
	wrapped := constructorCall(smClass, []expr.Argument{{Type: expr.SimdVectorType{Width: 1}, Value: sqrt}})
	return &expr.TraitImplementation{
		Result:     expr.Parameter{Name: name, Type: squaredMagnitude.Result.Type},
		Parameters: []expr.Parameter{paramA},
		Body:       []expr.AstNode{expr.ReturnStatement{Expression: wrapped}},
	}
}

// Signum derives a * (1 / Magnitude(a)) via the geometric product, wrapping
// the reciprocal in the magnitude class's own constructor.
func Signum(name string, geometricProduct, magnitude *expr.TraitImplementation, paramA expr.Parameter) *expr.TraitImplementation {
	magClass := multiVectorClass(magnitude.Result.Type)
	magCall := call(paramA.Type, selfVar(paramA), magnitude.Result.Name)
	access := expr.Access(magCall, 0, 1)
	one := expr.Constant(expr.SimdVectorType{Width: 1}, []int64{1})
	reciprocal := expr.Divide(one, access)
	wrapped := constructorCall(magClass, []expr.Argument{{Type: expr.SimdVectorType{Width: 1}, Value: reciprocal}})
	arg := expr.Argument{Type: expr.MultiVectorType{Class: magClass}, Value: wrapped}
	result := call(paramA.Type, selfVar(paramA), geometricProduct.Result.Name, arg)
	return &expr.TraitImplementation{
		Result:     expr.Parameter{Name: name, Type: geometricProduct.Result.Type},
		Parameters: []expr.Parameter{paramA},
		Body:       []expr.AstNode{expr.ReturnStatement{Expression: result}},
	}
}

// Inverse derives Involution(a) * (1 / SquaredMagnitude(a)) via the
// geometric product: the conjugate scaled down by the
// squared norm, the textbook closed-form inverse.
func Inverse(name string, geometricProduct, squaredMagnitude, involution *expr.TraitImplementation, paramA expr.Parameter) *expr.TraitImplementation {
	smClass := multiVectorClass(squaredMagnitude.Result.Type)
	involutionType := involution.Result.Type
	involuted := call(paramA.Type, selfVar(paramA), involution.Result.Name)
	smCall := call(paramA.Type, selfVar(paramA), squaredMagnitude.Result.Name)
	access := expr.Access(smCall, 0, 1)
	one := expr.Constant(expr.SimdVectorType{Width: 1}, []int64{1})
	reciprocal := expr.Divide(one, access)
	wrapped := constructorCall(smClass, []expr.Argument{{Type: expr.SimdVectorType{Width: 1}, Value: reciprocal}})
	arg := expr.Argument{Type: expr.MultiVectorType{Class: smClass}, Value: wrapped}
	result := call(involutionType, involuted, geometricProduct.Result.Name, arg)
	return &expr.TraitImplementation{
		Result:     expr.Parameter{Name: name, Type: geometricProduct.Result.Type},
		Parameters: []expr.Parameter{paramA},
		Body:       []expr.AstNode{expr.ReturnStatement{Expression: result}},
	}
}

// Powi derives integer exponentiation by repeated squaring:
// b==0 returns One immediately; a negative exponent starts from Inverse(a)
// instead of a; the loop consumes the absolute exponent one bit at a time,
// folding the current square into the accumulator on every set bit.
func Powi(name string, geometricProduct, constantOne, inverse *expr.TraitImplementation, paramA, paramB expr.Parameter) *expr.TraitImplementation {
	aClass := multiVectorClass(paramA.Type)
	bVar := &expr.Expression{Size: 1, Content: expr.VariableNode{Name: paramB.Name}}
	zero := expr.Constant(expr.IntegerType{}, []int64{0})
	one := expr.Constant(expr.IntegerType{}, []int64{1})

	ifZero := expr.IfThenBlock{
		Condition: expr.Equal(bVar, zero),
		Body: []expr.AstNode{
			expr.ReturnStatement{Expression: classMethodCall(aClass, constantOne.Result.Name, nil)},
		},
	}

	negative := expr.LessThan(bVar, zero)
	invoked := call(paramA.Type, selfVar(paramA), inverse.Result.Name)
	assignX := expr.VariableAssignment{
		Name:       "x",
		Type:       paramA.Type,
		Expression: expr.Select(negative, invoked, selfVar(paramA)),
	}
	assignY := expr.VariableAssignment{
		Name:       "y",
		Type:       paramA.Type,
		Expression: classMethodCall(aClass, constantOne.Result.Name, nil),
	}
	xVar := &expr.Expression{Size: 1, Content: expr.VariableNode{Name: "x"}}
	yVar := &expr.Expression{Size: 1, Content: expr.VariableNode{Name: "y"}}
	nVar := &expr.Expression{Size: 1, Content: expr.VariableNode{Name: "n"}}
	assignN := expr.VariableAssignment{
		Name:       "n",
		Type:       expr.IntegerType{},
		Expression: instanceMethodCall(expr.IntegerType{}, bVar, "Abs", nil),
	}

	loopBody := []expr.AstNode{
		expr.IfThenBlock{
			Condition: expr.Equal(expr.LogicAnd(nVar, one), one),
			Body: []expr.AstNode{
				expr.VariableAssignment{
					Name:       "y",
					Expression: call(paramA.Type, xVar, geometricProduct.Result.Name, expr.Argument{Type: paramA.Type, Value: yVar}),
				},
			},
		},
		expr.VariableAssignment{
			Name:       "x",
			Expression: call(paramA.Type, xVar, geometricProduct.Result.Name, expr.Argument{Type: paramA.Type, Value: xVar}),
		},
		expr.VariableAssignment{
			Name:       "n",
			Expression: expr.BitShiftRight(nVar, one),
		},
	}
	loop := expr.WhileLoopBlock{Condition: expr.LessThan(one, nVar), Body: loopBody}

	result := call(paramA.Type, xVar, geometricProduct.Result.Name, expr.Argument{Type: paramA.Type, Value: yVar})

	return &expr.TraitImplementation{
		Result:     expr.Parameter{Name: name, Type: paramA.Type},
		Parameters: []expr.Parameter{paramA, paramB},
		Body: []expr.AstNode{
			ifZero,
			assignX,
			assignY,
			assignN,
			loop,
			expr.ReturnStatement{Expression: result},
		},
	}
}

// GeometricQuotient derives a * Inverse(b) via the geometric product.
func GeometricQuotient(name string, geometricProduct, inverse *expr.TraitImplementation, paramA, paramB expr.Parameter) *expr.TraitImplementation {
	bVar := &expr.Expression{Size: 1, Content: expr.VariableNode{Name: paramB.Name}}
	invertedB := call(paramB.Type, bVar, inverse.Result.Name)
	arg := expr.Argument{Type: multiVectorArgType(inverse), Value: invertedB}
	result := call(paramA.Type, selfVar(paramA), geometricProduct.Result.Name, arg)
	return &expr.TraitImplementation{
		Result:     expr.Parameter{Name: name, Type: geometricProduct.Result.Type},
		Parameters: []expr.Parameter{paramA, paramB},
		Body:       []expr.AstNode{expr.ReturnStatement{Expression: result}},
	}
}

// Transformation derives the sandwich product a.GeometricProduct(b).
// GeometricProduct2(Involution(a)), narrowed through an optional trailing
// Into conversion when the inner product's result overshoots the requested
// target class.
func Transformation(name string, geometricProduct, geometricProduct2, involution, conversion *expr.TraitImplementation, paramA, paramB expr.Parameter) *expr.TraitImplementation {
	inner := call(paramA.Type, selfVar(paramA), geometricProduct.Result.Name, expr.Argument{Type: paramB.Type, Value: &expr.Expression{Size: 1, Content: expr.VariableNode{Name: paramB.Name}}})
	involuted := call(paramA.Type, selfVar(paramA), involution.Result.Name)
	product := call(geometricProduct.Result.Type, inner, geometricProduct2.Result.Name,
		expr.Argument{Type: multiVectorArgType(involution), Value: involuted})

	resultType := geometricProduct2.Result.Type
	body := product
	if conversion != nil {
		srcClass := multiVectorClass(geometricProduct2.Result.Type)
		dstClass := multiVectorClass(conversion.Result.Type)
		body = &expr.Expression{Size: 1, Content: expr.ConversionNode{Src: srcClass, Dst: dstClass, Inner: product}}
		resultType = conversion.Result.Type
	}
	return &expr.TraitImplementation{
		Result:     expr.Parameter{Name: name, Type: resultType},
		Parameters: []expr.Parameter{paramA, paramB},
		Body:       []expr.AstNode{expr.ReturnStatement{Expression: body}},
	}
}

// multiVectorArgType returns the MultiVectorType carried by impl's result,
// the shape every derivation above needs to describe an already-synthesised
// trait's return value as a call argument.
func multiVectorArgType(impl *expr.TraitImplementation) expr.DataType {
	return expr.MultiVectorType{Class: multiVectorClass(impl.Result.Type)}
}
