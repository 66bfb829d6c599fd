// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"github.com/geomalgebra/geomalg/class"
	"github.com/geomalgebra/geomalg/expr"
	"github.com/geomalgebra/geomalg/ga"
	"github.com/geomalgebra/geomalg/synth"
)

// Generate runs the three-pass derivation pipeline over every class in
// registry and returns the resulting library. Every synthesiser's refusal
// (ok=false) is silent: the pipeline skips that operation for that class
// or pair and moves on, exactly as the original driver's emit-if-present
// convention does.
func Generate(alg ga.Algebra, registry *class.Registry) *Library {
	lib := newLibrary(alg, registry)
	lib.Preamble = expr.Preamble{}

	classes := registry.Classes()
	for _, c := range classes {
		lib.ClassDefs = append(lib.ClassDefs, expr.ClassDefinition{Class: c})
	}

	involutions := ga.Involutions(alg)
	products := ga.Products(alg)

	// Pass 1: per-class constants and involutions, per-class-pair Into,
	// Add, Sub, and the seven canonical products.
	for _, a := range classes {
		for _, name := range []string{"Zero", "One"} {
			impl := synth.Constant(name, a)
			lib.setSingle(a.Name, name, impl)
			lib.emit(impl)
		}
		for _, inv := range involutions {
			impl, ok := synth.Involution(inv, a, registry, false)
			if !ok {
				continue
			}
			lib.setSingle(a.Name, inv.Name, impl)
			lib.emit(impl)
		}
		for _, b := range classes {
			if a.Name != b.Name {
				impl, ok := synth.Involution(b.Projection(), a, registry, true)
				if ok {
					lib.setPair(a.Name, b.Name, "Into", impl)
					lib.emit(impl)
				}
			}
			for _, name := range []string{"Add", "Sub"} {
				impl, ok := synth.ElementWise(name, a, b, registry)
				if !ok {
					continue
				}
				lib.setPair(a.Name, b.Name, name, impl)
				lib.emit(impl)
			}
			for _, product := range products {
				impl, ok := synth.Product(product, a, b, registry)
				if !ok {
					continue
				}
				lib.setPair(a.Name, b.Name, product.Name, impl)
				lib.emit(impl)
			}
		}
	}

	// Pass 2: per-class SquaredMagnitude/Magnitude (needs ScalarProduct(a,a)
	// and Reversal(a)), and Scale/Signum/Inverse (needs GeometricProduct(a,b)
	// for some scalar class b).
	for _, a := range classes {
		if scalarProduct, ok := lib.getPair(a.Name, a.Name, "ScalarProduct"); ok {
			if reversal, ok := lib.getSingle(a.Name, "Reversal"); ok {
				selfParam := expr.Parameter{Name: synth.SelfParam, Type: expr.MultiVectorType{Class: a}}
				squaredMagnitude := synth.SquaredMagnitude("SquaredMagnitude", scalarProduct, reversal, selfParam)
				lib.setSingle(a.Name, "SquaredMagnitude", squaredMagnitude)
				lib.emit(squaredMagnitude)
				magnitude := synth.Magnitude("Magnitude", squaredMagnitude, selfParam)
				lib.setSingle(a.Name, "Magnitude", magnitude)
				lib.emit(magnitude)
			}
		}
	}
	for _, a := range classes {
		for _, b := range classes {
			geometricProduct, ok := lib.getPair(a.Name, b.Name, "GeometricProduct")
			if !ok || !isScalarClass(b) {
				continue
			}
			selfParam := expr.Parameter{Name: synth.SelfParam, Type: expr.MultiVectorType{Class: a}}
			scalarBParam := expr.Parameter{Name: synth.OtherParam, Type: expr.MultiVectorType{Class: b}}
			scale := synth.Scale("Scale", geometricProduct, selfParam, scalarBParam)
			lib.setSingle(a.Name, "Scale", scale)
			lib.emit(scale)

			if magnitude, ok := lib.getSingle(a.Name, "Magnitude"); ok {
				signum := synth.Signum("Signum", geometricProduct, magnitude, selfParam)
				lib.setSingle(a.Name, "Signum", signum)
				lib.emit(signum)
			}
			if squaredMagnitude, ok := lib.getSingle(a.Name, "SquaredMagnitude"); ok {
				if reversal, ok := lib.getSingle(a.Name, "Reversal"); ok {
					inverse := synth.Inverse("Inverse", geometricProduct, squaredMagnitude, reversal, selfParam)
					lib.setSingle(a.Name, "Inverse", inverse)
					lib.emit(inverse)
				}
			}
		}
	}

	// Pass 3: per-class-pair Powi (needs a==b and GeometricProduct(a,a)
	// closing on a), GeometricQuotient (needs Inverse(b)), and
	// Transformation (the sandwich product, needs the inner product to
	// close, with an optional trailing Into when it overshoots).
	for _, a := range classes {
		selfParam := expr.Parameter{Name: synth.SelfParam, Type: expr.MultiVectorType{Class: a}}
		for _, b := range classes {
			geometricProduct, ok := lib.getPair(a.Name, b.Name, "GeometricProduct")
			if !ok {
				continue
			}
			otherParam := expr.Parameter{Name: synth.OtherParam, Type: expr.MultiVectorType{Class: b}}
			gpResultClass := multiVectorResultClass(geometricProduct)

			if a.Name == b.Name && gpResultClass.Name == a.Name {
				if constantOne, ok := lib.getSingle(a.Name, "One"); ok {
					if inverse, ok := lib.getSingle(a.Name, "Inverse"); ok {
						exponentParam := expr.Parameter{Name: "exponent", Type: expr.IntegerType{}}
						powi := synth.Powi("Powi", geometricProduct, constantOne, inverse, selfParam, exponentParam)
						lib.setPair(a.Name, a.Name, "Powi", powi)
						lib.emit(powi)
					}
				}
			}

			if inverseB, ok := lib.getSingle(b.Name, "Inverse"); ok {
				quotient := synth.GeometricQuotient("GeometricQuotient", geometricProduct, inverseB, selfParam, otherParam)
				lib.setPair(a.Name, b.Name, "GeometricQuotient", quotient)
				lib.emit(quotient)
			}

			reversal, ok := lib.getSingle(a.Name, "Reversal")
			if !ok {
				continue
			}
			geometricProduct2, ok := lib.getPair(gpResultClass.Name, a.Name, "GeometricProduct")
			if !ok {
				continue
			}
			gp2ResultClass := multiVectorResultClass(geometricProduct2)
			conversion, _ := lib.getPair(gp2ResultClass.Name, b.Name, "Into")
			transformation := synth.Transformation("Transformation", geometricProduct, geometricProduct2, reversal, conversion, selfParam, otherParam)
			lib.setPair(a.Name, b.Name, "Transformation", transformation)
			lib.emit(transformation)
		}
	}

	return lib
}

// isScalarClass reports whether c is a single group holding only the
// scalar basis element — the shape Scale/Signum/Inverse require for the
// "other" operand.
func isScalarClass(c class.Class) bool {
	if len(c.GroupedBasis) != 1 || len(c.GroupedBasis[0]) != 1 {
		return false
	}
	return c.GroupedBasis[0][0].Index == 0
}

func multiVectorResultClass(impl *expr.TraitImplementation) class.Class {
	mv, ok := impl.Result.Type.(expr.MultiVectorType)
	if !ok {
		panic("driver: expected a MultiVector-typed operation result")
	}
	return mv.Class
}
