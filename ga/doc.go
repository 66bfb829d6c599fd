// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ga implements the algebra of a Clifford algebra from a signature
// of generator squares: signed basis elements as bit-indices, the
// closed-form signed geometric product, the five involutions, and the seven
// grade-projected products built from the full multiplication table.
package ga // import "github.com/geomalgebra/geomalg/ga"
