// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debugtext implements emit.Emitter as a deterministic plain-text
// dump of the generated AST: not a dialect backend, but a reference
// rendering for inspecting what a driver.Library derived without standing
// up a real target language.
package debugtext // import "github.com/geomalgebra/geomalg/emit/debugtext"
