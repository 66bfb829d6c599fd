// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emit

import (
	"testing"

	"github.com/geomalgebra/geomalg/ga"
)

func TestCamelToSnake(t *testing.T) {
	cases := []struct{ in, want string }{
		{"GeometricProduct", "geometric_product"},
		{"SquaredMagnitude", "squared_magnitude"},
		{"Into", "into"},
		{"Zero", "zero"},
	}
	for _, c := range cases {
		if got := CamelToSnake(c.in); got != c.want {
			t.Errorf("CamelToSnake(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestElementNameScalar(t *testing.T) {
	if got := ElementName(ga.BasisElement{Scalar: 1, Index: 0}); got != "scalar" {
		t.Errorf("ElementName(scalar) = %q, want scalar", got)
	}
}

func TestElementNamePositiveAndNegative(t *testing.T) {
	e := ga.BasisElement{Scalar: 1, Index: 1 << 1}
	if got := ElementName(e); got != "e1" {
		t.Errorf("ElementName(+e1) = %q, want e1", got)
	}
	neg := ga.BasisElement{Scalar: -1, Index: 1 << 1}
	if got := ElementName(neg); got != "_e1" {
		t.Errorf("ElementName(-e1) = %q, want _e1", got)
	}
}

func TestElementNamePanicsOnZeroScalar(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ElementName with Scalar=0: want panic, got none")
		}
	}()
	ElementName(ga.BasisElement{Scalar: 0, Index: 1})
}
