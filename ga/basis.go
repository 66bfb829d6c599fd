// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

import (
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

// MaxGenerators bounds the number of algebra generators so that a basis
// index fits in 16 bits.
const MaxGenerators = 15

// BasisElement is a signed basis element: a pair (Scalar, Index) where bit i
// of Index set means generator e_i participates and Scalar records its sign.
// Scalar is always one of -1, 0 or +1; a zero Scalar marks a cancelled
// element. Two elements with the same Index but opposite Scalar are
// distinct values.
type BasisElement struct {
	Scalar int8
	Index  uint16
}

// Grade returns the popcount of the element's index.
func (e BasisElement) Grade() int {
	return bits.OnesCount16(e.Index)
}

// ComponentBits returns the generator indices participating in e, ascending.
func (e BasisElement) ComponentBits() []int {
	var out []int
	for i := 0; i < 16; i++ {
		if e.Index&(1<<uint(i)) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// String renders e in the textual form used by configuration parsing:
// "1" for the scalar unit, otherwise "e" followed by the hexadecimal
// generator digits, "-"-prefixed when Scalar is negative.
func (e BasisElement) String() string {
	var sb strings.Builder
	if e.Scalar < 0 {
		sb.WriteByte('-')
	}
	if e.Index == 0 {
		sb.WriteByte('1')
		return sb.String()
	}
	sb.WriteByte('e')
	for _, i := range e.ComponentBits() {
		fmt.Fprintf(&sb, "%X", i)
	}
	return sb.String()
}

// Less implements the canonical basis ordering: first by grade ascending;
// among equal grades, a < b iff the lowest-numbered generator appearing in
// exactly one of them appears in a.
func Less(a, b BasisElement) bool {
	ga, gb := a.Grade(), b.Grade()
	if ga != gb {
		return ga < gb
	}
	aWithoutB := a.Index &^ b.Index
	bWithoutA := b.Index &^ a.Index
	return bits.TrailingZeros16(aWithoutB) < bits.TrailingZeros16(bWithoutA)
}

// Algebra is a Clifford algebra described by the squares of its generators.
type Algebra struct {
	GeneratorSquares []int8
}

// New validates a generator-square signature and returns the algebra it
// describes.
func New(squares []int8) (Algebra, error) {
	if len(squares) == 0 {
		return Algebra{}, fmt.Errorf("ga: algebra needs at least one generator")
	}
	if len(squares) > MaxGenerators {
		return Algebra{}, fmt.Errorf("ga: %d generators exceeds the %d-generator limit", len(squares), MaxGenerators)
	}
	for i, s := range squares {
		if s < -1 || s > 1 {
			return Algebra{}, fmt.Errorf("ga: generator square s_%d = %d is not one of -1, 0, +1", i, s)
		}
	}
	return Algebra{GeneratorSquares: squares}, nil
}

// BasisSize returns 2^n, the number of canonical basis elements.
func (alg Algebra) BasisSize() int {
	return 1 << len(alg.GeneratorSquares)
}

// Basis returns every canonical basis element with Scalar +1, in index order.
func (alg Algebra) Basis() []BasisElement {
	size := alg.BasisSize()
	out := make([]BasisElement, size)
	for i := 0; i < size; i++ {
		out[i] = BasisElement{Scalar: 1, Index: uint16(i)}
	}
	return out
}

// SortedBasis returns Basis() sorted by the total order of Less.
func (alg Algebra) SortedBasis() []BasisElement {
	basis := alg.Basis()
	sortBasis(basis)
	return basis
}

// SignedBasis returns one signed representative per canonical index, chosen
// so that the listing is self-consistent under Dual: elements in the
// "lower half" (whose dual has a greater or equal index) keep Scalar +1;
// elements in the "upper half" take whatever scalar makes x paired with its
// lower-half dual multiply to the unit pseudoscalar with scalar +1. This
// supplements Basis() for callers that need a dualisation-consistent
// enumeration rather than a flat all-positive one.
func (alg Algebra) SignedBasis() []BasisElement {
	size := alg.BasisSize()
	out := make([]BasisElement, size)
	top := uint16(size - 1)
	for i := 0; i < size; i++ {
		idx := uint16(i)
		dualIdx := top - idx
		if idx <= dualIdx {
			out[i] = BasisElement{Scalar: 1, Index: idx}
			continue
		}
		lower := BasisElement{Scalar: 1, Index: dualIdx}
		p := alg.Product(lower, BasisElement{Scalar: 1, Index: idx})
		out[i] = BasisElement{Scalar: p.Scalar, Index: idx}
	}
	return out
}

// Dual returns the signed dual of x: the unique y with Index(y) =
// 2^n-1-Index(x), carrying x's scalar through unchanged (duality only
// complements the index; sign bookkeeping is the caller's responsibility,
// exactly as in the seven products' Regressive construction).
func (alg Algebra) Dual(x BasisElement) BasisElement {
	return BasisElement{Scalar: x.Scalar, Index: uint16(alg.BasisSize()-1) - x.Index}
}

// Product returns the signed geometric product a*b in closed form: the
// index is the XOR of the operands' indices, and the scalar folds in the
// operands' own scalars, the commutation sign from bubbling a's generators
// past b's into canonical order, and the generator squares of any shared
// generators.
func (alg Algebra) Product(a, b BasisElement) BasisElement {
	commutations := 0
	ra, rb := a.Index, b.Index
	for _, i := range a.ComponentBits() {
		aboveI := ra &^ ((uint16(1) << uint(i+1)) - 1)
		belowI := rb & ((uint16(1) << uint(i)) - 1)
		commutations += bits.OnesCount16(aboveI | belowI)
		ra &^= uint16(1) << uint(i)
		rb ^= uint16(1) << uint(i)
	}
	sign := int8(1)
	if commutations%2 != 0 {
		sign = -1
	}
	scalar := int(a.Scalar) * int(b.Scalar) * int(sign)
	shared := a.Index & b.Index
	for i := 0; i < len(alg.GeneratorSquares); i++ {
		if shared&(uint16(1)<<uint(i)) != 0 {
			scalar *= int(alg.GeneratorSquares[i])
		}
	}
	return BasisElement{Scalar: int8(scalar), Index: a.Index ^ b.Index}
}

// ParseElement parses the textual form "1", "e<hex-digits>" or
// "-e<hex-digits>" into a signed basis element, folding generator digits
// via repeated Product so that out-of-order or repeated generators fold
// their commutation sign and generator-square factor into the result.
func (alg Algebra) ParseElement(s string) (BasisElement, error) {
	if s == "1" {
		return BasisElement{Scalar: 1, Index: 0}, nil
	}
	negative := false
	rest := s
	if strings.HasPrefix(rest, "-") {
		negative = true
		rest = rest[1:]
	}
	if !strings.HasPrefix(rest, "e") {
		return BasisElement{}, fmt.Errorf("ga: malformed basis element %q: expected leading \"e\"", s)
	}
	digits := rest[1:]
	if digits == "" {
		return BasisElement{}, fmt.Errorf("ga: malformed basis element %q: no generator digits", s)
	}
	n := len(alg.GeneratorSquares)
	acc := BasisElement{Scalar: 1, Index: 0}
	for _, r := range digits {
		d, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			return BasisElement{}, fmt.Errorf("ga: invalid generator digit %q in %q", r, s)
		}
		if int(d) >= n {
			return BasisElement{}, fmt.Errorf("ga: generator e%X in %q out of range for %d generators", d, s, n)
		}
		acc = alg.Product(acc, BasisElement{Scalar: 1, Index: uint16(1) << uint(d)})
	}
	if negative {
		acc.Scalar = -acc.Scalar
	}
	return acc, nil
}

func sortBasis(elements []BasisElement) {
	sort.SliceStable(elements, func(i, j int) bool { return Less(elements[i], elements[j]) })
}
