// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package class declares user multivector classes: named partitions of an
// algebra's basis into SIMD-lane-sized groups, and a registry that looks
// classes up by the (sorted, flattened) set of basis elements they cover.
package class // import "github.com/geomalgebra/geomalg/class"
