// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package class

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/geomalgebra/geomalg/ga"
)

func e(index uint16) ga.BasisElement { return ga.BasisElement{Scalar: 1, Index: index} }

func TestNewRejectsEmptyName(t *testing.T) {
	if _, err := New("", [][]ga.BasisElement{{e(0)}}); err == nil {
		t.Errorf("New(\"\", ...): want error, got nil")
	}
}

func TestNewRejectsEmptyGroup(t *testing.T) {
	if _, err := New("Point", [][]ga.BasisElement{{}}); err == nil {
		t.Errorf("New with an empty group: want error, got nil")
	}
}

func TestNewRejectsCrossGroupDuplicate(t *testing.T) {
	groups := [][]ga.BasisElement{{e(1)}, {e(1)}}
	if _, err := New("Bivector", groups); err == nil {
		t.Errorf("New with a basis element repeated across groups: want error, got nil")
	}
}

func TestFlatBasisAndSignature(t *testing.T) {
	groups := [][]ga.BasisElement{{e(2), e(1)}, {e(4)}}
	c, err := New("Motor", groups)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	wantFlat := []ga.BasisElement{e(2), e(1), e(4)}
	if diff := cmp.Diff(wantFlat, c.FlatBasis()); diff != "" {
		t.Errorf("FlatBasis() mismatch (-want +got):\n%s", diff)
	}
	wantSig := []uint16{1, 2, 4}
	if diff := cmp.Diff(wantSig, c.Signature()); diff != "" {
		t.Errorf("Signature() mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexInGroup(t *testing.T) {
	c, err := New("Motor", [][]ga.BasisElement{{e(0), e(1)}, {e(2)}, {e(3), e(4), e(5)}})
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	cases := []struct {
		index          int
		group, inGroup int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 0},
		{3, 2, 0},
		{5, 2, 2},
	}
	for _, c2 := range cases {
		group, inGroup := c.IndexInGroup(c2.index)
		if group != c2.group || inGroup != c2.inGroup {
			t.Errorf("IndexInGroup(%d) = (%d, %d), want (%d, %d)", c2.index, group, inGroup, c2.group, c2.inGroup)
		}
	}
}

func TestProjectionIsIdentityOnOwnBasis(t *testing.T) {
	c, err := New("Point", [][]ga.BasisElement{{e(1), e(2), e(4)}})
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	proj := c.Projection()
	if got, want := len(proj.Terms), 3; got != want {
		t.Fatalf("len(Projection().Terms) = %d, want %d", got, want)
	}
	for _, term := range proj.Terms {
		if term.In != term.Out {
			t.Errorf("Projection() term %+v: In != Out", term)
		}
	}
}
