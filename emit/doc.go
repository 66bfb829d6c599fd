// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emit declares the contract a dialect backend implements to turn a
// driver.Library into source text, plus the naming conventions every
// dialect shares. The dialect backends themselves are external
// collaborators; this package only fixes the shape they plug into and
// ships one reference implementation, emit/debugtext, for inspecting a
// library without a real backend.
package emit // import "github.com/geomalgebra/geomalg/emit"
