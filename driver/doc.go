// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver runs the three-pass derivation pipeline over a registry of
// multivector classes: constants and involutions and the seven canonical
// products first, then the operations that need a completed pass (norms,
// scaling, inversion), then the operations that need two completed passes
// (integer powers, quotients, the sandwich transform).
package driver // import "github.com/geomalgebra/geomalg/driver"
