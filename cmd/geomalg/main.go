// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geomalg derives a geometric algebra's multiplication table and
// the full set of operations over its declared multivector classes from a
// descriptor string, and prints a plain-text rendering of what it derived.
package main // import "github.com/geomalgebra/geomalg/cmd/geomalg"

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/geomalgebra/geomalg/driver"
	"github.com/geomalgebra/geomalg/emit/debugtext"
	"github.com/geomalgebra/geomalg/internal/config"
)

func main() {
	log.SetPrefix("geomalg: ")
	log.SetFlags(0)

	descriptor := flag.String("descriptor", "", "algebra and class descriptor, e.g. \"PGA2D:0,1,1;Point:e0,e1,e2\"")

	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			`Usage: geomalg <descriptor>
       geomalg -descriptor <descriptor>

ex:
 $> geomalg "PGA2D:0,1,1;Point:e0,e1,e2"

Options:
`,
		)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *descriptor == "" && flag.NArg() == 1 {
		*descriptor = flag.Arg(0)
	}
	if *descriptor == "" {
		flag.Usage()
		log.Fatalf("missing descriptor")
	}

	cfg, err := config.Parse(*descriptor)
	if err != nil {
		log.Fatalf("could not parse descriptor: %+v", err)
	}
	alg, err := cfg.BuildAlgebra()
	if err != nil {
		log.Fatalf("could not build algebra %s: %+v", cfg.AlgebraName, err)
	}
	classes, registry, err := cfg.BuildClasses(alg)
	if err != nil {
		log.Fatalf("could not build classes for %s: %+v", cfg.AlgebraName, err)
	}

	lib := driver.Generate(alg, registry)

	if err := lib.DumpMultiplicationTable(os.Stdout); err != nil {
		log.Fatalf("could not dump multiplication table: %+v", err)
	}

	w := debugtext.New(os.Stdout)
	if err := w.Emit(lib.Preamble); err != nil {
		log.Fatalf("could not emit preamble: %+v", err)
	}
	for _, def := range lib.ClassDefs {
		if err := w.Emit(def); err != nil {
			log.Fatalf("could not emit class definition: %+v", err)
		}
	}
	for _, op := range lib.Operations {
		if err := w.Emit(op); err != nil {
			log.Fatalf("could not emit operation %s: %+v", op.Result.Name, err)
		}
	}
	if err := w.Err(); err != nil {
		log.Fatalf("could not emit library: %+v", err)
	}

	log.Printf("%s: %d classes, %d operations", cfg.AlgebraName, len(classes), len(lib.Operations))
}
