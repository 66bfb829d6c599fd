// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"strings"
	"testing"

	"github.com/geomalgebra/geomalg/class"
	"github.com/geomalgebra/geomalg/ga"
)

// euclidean2D builds a Scalar/Vector/Bivector registry over the Euclidean
// plane, exercising the full three-pass pipeline: the geometric product of
// two vectors decomposes into a Scalar plus a Bivector term, each grade has
// its own class here, but no class covers their sum.
func euclidean2D(t *testing.T) (ga.Algebra, *class.Registry) {
	t.Helper()
	alg, err := ga.New([]int8{1, 1})
	if err != nil {
		t.Fatalf("ga.New: %v", err)
	}
	scalar, err := class.New("Scalar", [][]ga.BasisElement{{{Scalar: 1, Index: 0}}})
	if err != nil {
		t.Fatalf("class.New(Scalar): %v", err)
	}
	vector, err := class.New("Vector", [][]ga.BasisElement{{{Scalar: 1, Index: 1}, {Scalar: 1, Index: 2}}})
	if err != nil {
		t.Fatalf("class.New(Vector): %v", err)
	}
	bivector, err := class.New("Bivector", [][]ga.BasisElement{{{Scalar: 1, Index: 3}}})
	if err != nil {
		t.Fatalf("class.New(Bivector): %v", err)
	}
	registry := class.NewRegistry()
	for _, c := range []class.Class{scalar, vector, bivector} {
		if err := registry.Register(c); err != nil {
			t.Fatalf("Register(%s): %v", c.Name, err)
		}
	}
	return alg, registry
}

func TestGenerateWiresClassDefinitionsAndConstants(t *testing.T) {
	alg, registry := euclidean2D(t)
	lib := Generate(alg, registry)

	if len(lib.ClassDefs) != 3 {
		t.Fatalf("len(ClassDefs) = %d, want 3", len(lib.ClassDefs))
	}
	for _, name := range []string{"Scalar", "Vector", "Bivector"} {
		if _, ok := lib.getSingle(name, "Zero"); !ok {
			t.Errorf("Single[%s][Zero] missing", name)
		}
		if _, ok := lib.getSingle(name, "One"); !ok {
			t.Errorf("Single[%s][One] missing", name)
		}
	}
}

func TestGenerateScalarSquaredMagnitudeAndInverse(t *testing.T) {
	alg, registry := euclidean2D(t)
	lib := Generate(alg, registry)

	// Scalar*Scalar stays within Scalar, so the Scalar/Scalar/Scalar chain
	// (SquaredMagnitude, Magnitude, Inverse) must all be present.
	if _, ok := lib.getSingle("Scalar", "SquaredMagnitude"); !ok {
		t.Errorf("Single[Scalar][SquaredMagnitude] missing")
	}
	if _, ok := lib.getSingle("Scalar", "Magnitude"); !ok {
		t.Errorf("Single[Scalar][Magnitude] missing")
	}
	if _, ok := lib.getSingle("Scalar", "Inverse"); !ok {
		t.Errorf("Single[Scalar][Inverse] missing")
	}
	if _, ok := lib.getPair("Scalar", "Scalar", "Powi"); !ok {
		t.Errorf("Pair[Scalar][Scalar][Powi] missing")
	}
}

func TestGenerateVectorGeometricProductRefusesWithoutClosedResultClass(t *testing.T) {
	alg, registry := euclidean2D(t)
	lib := Generate(alg, registry)

	// Vector*Vector produces a Scalar+Bivector sum with no registered class
	// covering both grades, so the pipeline must silently skip it.
	if _, ok := lib.getPair("Vector", "Vector", "GeometricProduct"); ok {
		t.Errorf("Pair[Vector][Vector][GeometricProduct] present, want skipped (no closed result class)")
	}
}

func TestGenerateVectorScalarOperationsClose(t *testing.T) {
	alg, registry := euclidean2D(t)
	lib := Generate(alg, registry)

	if _, ok := lib.getPair("Vector", "Vector", "ScalarProduct"); !ok {
		t.Errorf("Pair[Vector][Vector][ScalarProduct] missing (closes on Scalar)")
	}
	if _, ok := lib.getPair("Vector", "Scalar", "GeometricProduct"); !ok {
		t.Errorf("Pair[Vector][Scalar][GeometricProduct] missing (scaling a vector by a scalar closes on Vector)")
	}
	if _, ok := lib.getSingle("Vector", "Inverse"); !ok {
		t.Errorf("Single[Vector][Inverse] missing (needs Vector's SquaredMagnitude and Reversal)")
	}
}

func TestGenerateOperationsAreAllEmitted(t *testing.T) {
	alg, registry := euclidean2D(t)
	lib := Generate(alg, registry)

	if len(lib.Operations) == 0 {
		t.Fatal("Operations is empty, want every synthesised trait implementation recorded")
	}
	seen := make(map[string]bool)
	for _, op := range lib.Operations {
		seen[op.Result.Name] = true
	}
	for _, name := range []string{"Zero", "One", "Add", "Sub", "GeometricProduct", "ScalarProduct"} {
		if !seen[name] {
			t.Errorf("Operations never includes a %s implementation", name)
		}
	}
}

func TestDumpMultiplicationTableWritesOneRowPerBasisElement(t *testing.T) {
	alg, registry := euclidean2D(t)
	lib := Generate(alg, registry)

	var buf strings.Builder
	if err := lib.DumpMultiplicationTable(&buf); err != nil {
		t.Fatalf("DumpMultiplicationTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("len(lines) = %d, want 4 (one row per basis element of a 2-generator algebra)", len(lines))
	}
	for _, line := range lines {
		if len(strings.Fields(line)) != 4 {
			t.Errorf("row %q has %d columns, want 4", line, len(strings.Fields(line)))
		}
	}
}
