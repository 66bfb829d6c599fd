// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/geomalgebra/geomalg/expr"
	"github.com/geomalgebra/geomalg/ga"
)

// Emitter renders one AstNode of output. A dialect backend receives the
// preamble, then each class definition, then every operation, in the order
// driver.Library stores them; Emit is called once per node.
type Emitter interface {
	Emit(node expr.AstNode) error
}

// CamelToSnake lowercases name and inserts an underscore before every
// interior uppercase letter, so that the PascalCase operation names the
// driver produces (GeometricProduct, SquaredMagnitude) become the
// lower_snake_case identifiers most dialects expect.
func CamelToSnake(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// ElementName returns the conventional identifier for a basis element: the
// scalar is "scalar", and every other element is "e" (or "_e" for a
// negative-signed element) followed by its component indices in hex, e.g.
// "e12", "_e0".
func ElementName(e ga.BasisElement) string {
	if e.Scalar == 0 {
		panic("emit: element name is undefined for a zero-scalar element")
	}
	if e.Index == 0 {
		return "scalar"
	}
	var sb strings.Builder
	if e.Scalar < 0 {
		sb.WriteString("_e")
	} else {
		sb.WriteString("e")
	}
	for _, bit := range e.ComponentBits() {
		fmt.Fprintf(&sb, "%X", bit)
	}
	return sb.String()
}

// Indent writes n levels of the conventional four-space indentation unit
// to w.
func Indent(w io.Writer, n int) error {
	for i := 0; i < n; i++ {
		if _, err := io.WriteString(w, "    "); err != nil {
			return err
		}
	}
	return nil
}
