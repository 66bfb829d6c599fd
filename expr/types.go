// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/geomalgebra/geomalg/class"

// DataType is the closed sum of value types an Expression or Parameter can
// carry: a scalar integer, a SIMD vector of a given width, or a named
// multivector class.
type DataType interface {
	isDataType()
}

// IntegerType is the scalar integer type used by Powi's exponent and loop
// counter.
type IntegerType struct{}

func (IntegerType) isDataType() {}

// SimdVectorType is a SIMD vector of Width lanes.
type SimdVectorType struct {
	Width int
}

func (SimdVectorType) isDataType() {}

// MultiVectorType names a multivector class as a value type.
type MultiVectorType struct {
	Class class.Class
}

func (MultiVectorType) isDataType() {}
