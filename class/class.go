// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package class

import (
	"sort"

	"github.com/geomalgebra/geomalg/ga"
)

// Class is a user-declared multivector class: a name and a partition of a
// subset of an algebra's basis into groups, each group becoming one SIMD
// lane-group in the generated type.
type Class struct {
	Name         string
	GroupedBasis [][]ga.BasisElement
}

// New builds a Class, rejecting an empty name or a basis element repeated
// across groups: a class's basis elements must be pairwise distinct.
func New(name string, groups [][]ga.BasisElement) (Class, error) {
	if name == "" {
		return Class{}, errNoName
	}
	seen := make(map[uint16]bool)
	for _, group := range groups {
		if len(group) == 0 {
			return Class{}, errEmptyGroup(name)
		}
		for _, e := range group {
			if seen[e.Index] {
				return Class{}, errDuplicateElement(name, e)
			}
			seen[e.Index] = true
		}
	}
	return Class{Name: name, GroupedBasis: groups}, nil
}

// FlatBasis returns every basis element covered by c, group order preserved,
// each group's own element order preserved.
func (c Class) FlatBasis() []ga.BasisElement {
	var out []ga.BasisElement
	for _, group := range c.GroupedBasis {
		out = append(out, group...)
	}
	return out
}

// Signature returns the sorted set of basis indices covered by c. Two
// classes are the registry's notion of "the same class" iff their
// signatures are equal, regardless of scalar sign or grouping.
func (c Class) Signature() []uint16 {
	var sig []uint16
	for _, e := range c.FlatBasis() {
		sig = append(sig, e.Index)
	}
	sort.Slice(sig, func(i, j int) bool { return sig[i] < sig[j] })
	return sig
}

// IndexInGroup maps a position in FlatBasis() to (group index, index within
// that group).
func (c Class) IndexInGroup(index int) (group, indexInGroup int) {
	for gi, g := range c.GroupedBasis {
		if index < len(g) {
			return gi, index
		}
		index -= len(g)
	}
	panic("class: index out of range")
}

// GroupSizes returns the lane width of each group, in order.
func (c Class) GroupSizes() []int {
	sizes := make([]int, len(c.GroupedBasis))
	for i, g := range c.GroupedBasis {
		sizes[i] = len(g)
	}
	return sizes
}

// Projection returns the involution that is the identity on c's basis and
// carries no term for any element outside it. synth.Involution's project
// flag uses the absence of a term to refuse emission when a source class
// is missing one of c's elements.
func (c Class) Projection() ga.Involution {
	flat := c.FlatBasis()
	terms := make([]ga.InvolutionTerm, len(flat))
	for i, e := range flat {
		identity := ga.BasisElement{Scalar: 1, Index: e.Index}
		terms[i] = ga.InvolutionTerm{In: identity, Out: identity}
	}
	return ga.Involution{Name: "Into", Terms: terms}
}
