// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/geomalgebra/geomalg/class"
	"github.com/geomalgebra/geomalg/ga"
)

// ClassSpec is one multivector class declaration, still in its textual
// element form: Groups[i][j] is the jth element descriptor ("1", "e3",
// "-e12", ...) of the ith SIMD group.
type ClassSpec struct {
	Name   string
	Groups [][]string
}

// Config is a fully-parsed descriptor: an algebra's name and generator
// signature, plus the multivector classes declared alongside it.
type Config struct {
	AlgebraName      string
	GeneratorSquares []int8
	Classes          []ClassSpec
}

// Parse reads the descriptor grammar:
//
//	descriptor       := algebra-part (";" class-part)*
//	algebra-part     := name ":" square ("," square)*
//	class-part       := name ":" group ("|" group)*
//	group            := element ("," element)*
//
// name is any run of characters other than ":" or ";"; square is a signed
// decimal integer; element is the textual form ga.Algebra.ParseElement
// accepts.
func Parse(s string) (Config, error) {
	parts := strings.Split(s, ";")
	if len(parts) == 0 || parts[0] == "" {
		return Config{}, fmt.Errorf("config: empty descriptor")
	}

	algebraName, squaresPart, err := splitOnce(parts[0], ':', "algebra descriptor")
	if err != nil {
		return Config{}, err
	}
	squareStrs := strings.Split(squaresPart, ",")
	squares := make([]int8, len(squareStrs))
	for i, s := range squareStrs {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 8)
		if err != nil {
			return Config{}, fmt.Errorf("config: generator square %q: %w", s, err)
		}
		squares[i] = int8(n)
	}

	cfg := Config{AlgebraName: algebraName, GeneratorSquares: squares}
	for _, part := range parts[1:] {
		className, groupsPart, err := splitOnce(part, ':', "class descriptor")
		if err != nil {
			return Config{}, err
		}
		var groups [][]string
		for _, groupPart := range strings.Split(groupsPart, "|") {
			elements := strings.Split(groupPart, ",")
			groups = append(groups, elements)
		}
		cfg.Classes = append(cfg.Classes, ClassSpec{Name: className, Groups: groups})
	}
	return cfg, nil
}

func splitOnce(s string, sep byte, what string) (before, after string, err error) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return "", "", fmt.Errorf("config: malformed %s %q: missing %q", what, s, string(sep))
	}
	return s[:i], s[i+1:], nil
}

// BuildAlgebra constructs the ga.Algebra named by c.
func (c Config) BuildAlgebra() (ga.Algebra, error) {
	return ga.New(c.GeneratorSquares)
}

// BuildClasses resolves every declared class's textual elements against
// alg and registers the resulting classes, returning them in declaration
// order.
func (c Config) BuildClasses(alg ga.Algebra) ([]class.Class, *class.Registry, error) {
	registry := class.NewRegistry()
	classes := make([]class.Class, 0, len(c.Classes))
	for _, spec := range c.Classes {
		groups := make([][]ga.BasisElement, len(spec.Groups))
		for i, group := range spec.Groups {
			elements := make([]ga.BasisElement, len(group))
			for j, text := range group {
				e, err := alg.ParseElement(strings.TrimSpace(text))
				if err != nil {
					return nil, nil, fmt.Errorf("config: class %q: %w", spec.Name, err)
				}
				elements[j] = e
			}
			groups[i] = elements
		}
		cls, err := class.New(spec.Name, groups)
		if err != nil {
			return nil, nil, err
		}
		if err := registry.Register(cls); err != nil {
			return nil, nil, err
		}
		classes = append(classes, cls)
	}
	return classes, registry, nil
}
