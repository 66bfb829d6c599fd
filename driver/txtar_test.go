// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/geomalgebra/geomalg/internal/config"
)

var pipelineFixtures = []byte(`
-- euclidean2d --
Euclidean2D:1,1;Scalar:1;Vector:e0,e1;Bivector:e01
-- pga2d --
PGA2D:0,1,1;Scalar:1;Point:e0,e1,e2
`)

// TestGenerateAcrossFixtureDescriptors runs the full pipeline, from a raw
// descriptor string through config.Parse to Generate, for a small batch of
// algebras bundled together as one fixture archive.
func TestGenerateAcrossFixtureDescriptors(t *testing.T) {
	archive := txtar.Parse(pipelineFixtures)
	for _, f := range archive.Files {
		descriptor := string(f.Data)
		if n := len(descriptor); n > 0 && descriptor[n-1] == '\n' {
			descriptor = descriptor[:n-1]
		}
		cfg, err := config.Parse(descriptor)
		if err != nil {
			t.Fatalf("%s: config.Parse: %v", f.Name, err)
		}
		alg, err := cfg.BuildAlgebra()
		if err != nil {
			t.Fatalf("%s: BuildAlgebra: %v", f.Name, err)
		}
		_, registry, err := cfg.BuildClasses(alg)
		if err != nil {
			t.Fatalf("%s: BuildClasses: %v", f.Name, err)
		}
		lib := Generate(alg, registry)
		if len(lib.Operations) == 0 {
			t.Errorf("%s: Generate produced no operations", f.Name)
		}
		if _, ok := lib.getSingle("Scalar", "One"); !ok {
			t.Errorf("%s: Single[Scalar][One] missing", f.Name)
		}
	}
}
