// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package synth is the operation synthesiser: given an algebraic
// operation's name and recipe, and its input class(es), it emits a
// TraitImplementation whose body realises the operation a SIMD group at a
// time, or reports that no declared class can hold the result.
//
// Every function in this package that can fail to find a result class
// returns (*expr.TraitImplementation, bool), ok=false meaning "no emission".
package synth // import "github.com/geomalgebra/geomalg/synth"
