// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplify implements the synthesiser's local rewrite pass: a
// single bottom-up walk that collapses constant gathers into
// Access/Swizzle, folds broadcast constants, and rewrites a+(b*(c*-1)) as
// a-(b*c), among a small fixed set of other rewrites.
package simplify // import "github.com/geomalgebra/geomalg/simplify"
