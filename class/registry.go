// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package class

import (
	"fmt"
	"strings"
)

func signatureKey(sig []uint16) string {
	var sb strings.Builder
	for i, idx := range sig {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", idx)
	}
	return sb.String()
}

// Registry is an insertion-ordered collection of classes, indexed by
// signature. Unlike the original's HashMap-backed registry, which silently
// overwrites a class registered under a signature already in use,
// Register rejects the duplicate — see DESIGN.md's Open Question decisions.
type Registry struct {
	classes    []Class
	indexBySig map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{indexBySig: make(map[string]int)}
}

// Register adds class to the registry. It returns an error if a class with
// the same signature is already registered.
func (r *Registry) Register(c Class) error {
	key := signatureKey(c.Signature())
	if i, ok := r.indexBySig[key]; ok {
		return errDuplicateSignature(c.Name, r.classes[i].Name)
	}
	r.indexBySig[key] = len(r.classes)
	r.classes = append(r.classes, c)
	return nil
}

// Classes returns every registered class, in registration order.
func (r *Registry) Classes() []Class {
	return r.classes
}

// Lookup returns the class registered under the given signature, if any.
func (r *Registry) Lookup(signature []uint16) (Class, bool) {
	i, ok := r.indexBySig[signatureKey(signature)]
	if !ok {
		return Class{}, false
	}
	return r.classes[i], true
}
