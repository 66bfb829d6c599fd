// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package class

import (
	"fmt"

	"github.com/geomalgebra/geomalg/ga"
)

var errNoName = fmt.Errorf("class: a multivector class must have a non-empty name")

func errEmptyGroup(name string) error {
	return fmt.Errorf("class: %s declares an empty group", name)
}

func errDuplicateElement(name string, e ga.BasisElement) error {
	return fmt.Errorf("class: %s repeats basis element %s across groups", name, e)
}

func errDuplicateSignature(name string, existing string) error {
	return fmt.Errorf("class: %s has the same signature as already-registered class %s", name, existing)
}
