// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ga

// InvolutionTerm maps one basis element (In) to its signed image (Out)
// under an involution. Unlike the five named involutions (which carry one
// term per canonical basis element), a projection involution only carries
// terms for the elements of its target class.
type InvolutionTerm struct {
	In  BasisElement
	Out BasisElement
}

// Involution is a sign-flipping map on the basis, represented as an
// association list rather than a dense array so that partial maps
// (projections) and total maps (Neg, Automorphism, Reversal, Conjugation,
// Dual) share one shape.
type Involution struct {
	Name  string
	Terms []InvolutionTerm
}

// Involutions builds the five named involutions in a fixed,
// deterministic order: Neg, Automorphism, Reversal, Conjugation, Dual. Each
// carries one term per canonical basis element, In always Scalar +1.
func Involutions(alg Algebra) []Involution {
	basis := alg.Basis()
	negated := func(negate func(grade int) bool) []InvolutionTerm {
		out := make([]InvolutionTerm, len(basis))
		for i, e := range basis {
			sign := int8(1)
			if negate(e.Grade()) {
				sign = -1
			}
			out[i] = InvolutionTerm{In: e, Out: BasisElement{Scalar: sign, Index: e.Index}}
		}
		return out
	}
	dualTerms := make([]InvolutionTerm, len(basis))
	for i, e := range basis {
		dualTerms[i] = InvolutionTerm{In: e, Out: alg.Dual(e)}
	}
	return []Involution{
		{Name: "Neg", Terms: negated(func(int) bool { return true })},
		{Name: "Automorphism", Terms: negated(func(g int) bool { return g%2 == 1 })},
		{Name: "Reversal", Terms: negated(func(g int) bool { return g%4 == 2 || g%4 == 3 })},
		{Name: "Conjugation", Terms: negated(func(g int) bool { return (g+3)%4 < 2 })},
		{Name: "Dual", Terms: dualTerms},
	}
}

// ProductTerm is one non-zero entry of a filtered product table: the signed
// product of FactorA and FactorB.
type ProductTerm struct {
	Product BasisElement
	FactorA BasisElement
	FactorB BasisElement
}

// NamedProduct is one of the seven canonical products, as a flat list of
// non-zero terms over the full basis.
type NamedProduct struct {
	Name  string
	Terms []ProductTerm
}

// rawProduct builds every non-zero term of a*b for a in as, b in bs.
func rawProduct(alg Algebra, as, bs []BasisElement) []ProductTerm {
	var terms []ProductTerm
	for _, a := range as {
		for _, b := range bs {
			p := alg.Product(a, b)
			if p.Scalar != 0 {
				terms = append(terms, ProductTerm{Product: p, FactorA: a, FactorB: b})
			}
		}
	}
	return terms
}

// project filters terms by a grade relation on (grade(a), grade(b), grade(product)).
func project(terms []ProductTerm, keep func(r, s, t int) bool) []ProductTerm {
	var out []ProductTerm
	for _, term := range terms {
		if keep(term.FactorA.Grade(), term.FactorB.Grade(), term.Product.Grade()) {
			out = append(out, term)
		}
	}
	return out
}

// dualProduct complements every index (product and both factors) via Dual,
// keeping each term's scalar; it is how the Regressive product is built
// from the Outer product.
func dualProduct(alg Algebra, terms []ProductTerm) []ProductTerm {
	out := make([]ProductTerm, len(terms))
	for i, term := range terms {
		out[i] = ProductTerm{
			Product: alg.Dual(term.Product),
			FactorA: alg.Dual(term.FactorA),
			FactorB: alg.Dual(term.FactorB),
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Products builds the seven canonical products from the full
// geometric-product table, in the fixed order Geometric, Outer, Regressive,
// Inner, LeftContraction, RightContraction, Scalar.
func Products(alg Algebra) []NamedProduct {
	basis := alg.Basis()
	geometric := rawProduct(alg, basis, basis)
	outer := project(geometric, func(r, s, t int) bool { return t == r+s })
	return []NamedProduct{
		{Name: "GeometricProduct", Terms: geometric},
		{Name: "OuterProduct", Terms: outer},
		{Name: "RegressiveProduct", Terms: dualProduct(alg, outer)},
		{Name: "InnerProduct", Terms: project(geometric, func(r, s, t int) bool { return t == abs(r-s) })},
		{Name: "LeftContraction", Terms: project(geometric, func(r, s, t int) bool { return t == s-r })},
		{Name: "RightContraction", Terms: project(geometric, func(r, s, t int) bool { return t == r-s })},
		{Name: "ScalarProduct", Terms: project(geometric, func(r, s, t int) bool { return t == 0 })},
	}
}

// MultiplicationTable builds the dense |basis|x|basis| signed product table
// over the sorted basis, table[row][col] = Product(sortedBasis[col],
// sortedBasis[row]) — the same row-major (b outer, a inner) layout the
// generator's one diagnostic dump prints.
func MultiplicationTable(alg Algebra) [][]BasisElement {
	basis := alg.SortedBasis()
	table := make([][]BasisElement, len(basis))
	for bi, b := range basis {
		row := make([]BasisElement, len(basis))
		for ai, a := range basis {
			row[ai] = alg.Product(a, b)
		}
		table[bi] = row
	}
	return table
}
