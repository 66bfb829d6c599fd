// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"fmt"
	"io"

	"github.com/geomalgebra/geomalg/class"
	"github.com/geomalgebra/geomalg/expr"
	"github.com/geomalgebra/geomalg/ga"
)

// Library is the complete output of Generate: every class definition the
// registry holds, plus every operation the pipeline could derive, indexed
// two ways for the emitter contract and for later passes to query.
type Library struct {
	Alg      ga.Algebra
	Registry *class.Registry

	Preamble  expr.AstNode
	ClassDefs []expr.AstNode

	// Operations lists every synthesised trait implementation in emission
	// order, the order an Emitter should receive them in.
	Operations []*expr.TraitImplementation

	// Single indexes operations with one multivector receiver, by class
	// name then operation name (Zero, One, the five involutions,
	// SquaredMagnitude, Magnitude, Scale, Signum, Inverse).
	Single map[string]map[string]*expr.TraitImplementation

	// Pair indexes operations with two multivector operands, by the first
	// operand's class name, then the second's, then operation name (Into,
	// Add, Sub, the seven products, Powi, GeometricQuotient,
	// Transformation).
	Pair map[string]map[string]map[string]*expr.TraitImplementation
}

func newLibrary(alg ga.Algebra, registry *class.Registry) *Library {
	return &Library{
		Alg:      alg,
		Registry: registry,
		Single:   make(map[string]map[string]*expr.TraitImplementation),
		Pair:     make(map[string]map[string]map[string]*expr.TraitImplementation),
	}
}

func (lib *Library) setSingle(className, op string, impl *expr.TraitImplementation) {
	m, ok := lib.Single[className]
	if !ok {
		m = make(map[string]*expr.TraitImplementation)
		lib.Single[className] = m
	}
	m[op] = impl
}

func (lib *Library) getSingle(className, op string) (*expr.TraitImplementation, bool) {
	m, ok := lib.Single[className]
	if !ok {
		return nil, false
	}
	impl, ok := m[op]
	return impl, ok
}

func (lib *Library) setPair(aName, bName, op string, impl *expr.TraitImplementation) {
	byB, ok := lib.Pair[aName]
	if !ok {
		byB = make(map[string]map[string]*expr.TraitImplementation)
		lib.Pair[aName] = byB
	}
	m, ok := byB[bName]
	if !ok {
		m = make(map[string]*expr.TraitImplementation)
		byB[bName] = m
	}
	m[op] = impl
}

func (lib *Library) getPair(aName, bName, op string) (*expr.TraitImplementation, bool) {
	byB, ok := lib.Pair[aName]
	if !ok {
		return nil, false
	}
	m, ok := byB[bName]
	if !ok {
		return nil, false
	}
	impl, ok := m[op]
	return impl, ok
}

func (lib *Library) emit(impl *expr.TraitImplementation) {
	lib.Operations = append(lib.Operations, impl)
}

// DumpMultiplicationTable writes the algebra's signed product table as
// whitespace-padded columns, one row per basis element in sorted order —
// the single diagnostic the original generator always printed before
// emitting any class.
func (lib *Library) DumpMultiplicationTable(w io.Writer) error {
	table := ga.MultiplicationTable(lib.Alg)
	width := len(lib.Alg.GeneratorSquares) + 2
	for _, row := range table {
		for _, e := range row {
			if _, err := fmt.Fprintf(w, "%-*s ", width, e.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
