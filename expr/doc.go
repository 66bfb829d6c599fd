// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr is the synthesiser's intermediate representation: a strict
// (non-shared) expression tree over named variables, SIMD-lane constants,
// and a closed set of scalar and vector operations, plus the small
// statement-level AST that wraps expressions into class definitions and
// trait implementations.
package expr // import "github.com/geomalgebra/geomalg/expr"
