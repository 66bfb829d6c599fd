// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config parses the single positional descriptor the command line
// takes: an algebra name and signature, followed by zero or more
// multivector class declarations, all packed into one semicolon-delimited
// string.
package config // import "github.com/geomalgebra/geomalg/internal/config"
