// Copyright ©2026 The Geomalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "testing"

func TestNoneHasNoContent(t *testing.T) {
	n := None(3)
	if n.Size != 3 {
		t.Errorf("None(3).Size = %d, want 3", n.Size)
	}
	if !IsNone(n) {
		t.Errorf("IsNone(None(3)) = false, want true")
	}
}

func TestConstantBroadcastAndFullForm(t *testing.T) {
	c := Constant(SimdVectorType{Width: 4}, []int64{7})
	if c.Size != 4 {
		t.Errorf("broadcast Constant.Size = %d, want 4", c.Size)
	}
	full := Constant(SimdVectorType{Width: 3}, []int64{1, 2, 3})
	if full.Size != 3 {
		t.Errorf("full Constant.Size = %d, want 3", full.Size)
	}
}

func TestConstantRejectsBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Constant with mismatched length: want panic, got none")
		}
	}()
	Constant(SimdVectorType{Width: 4}, []int64{1, 2})
}

func TestGatherSizeIsPairCount(t *testing.T) {
	v := Variable("self", 3)
	g := Gather(v, []LanePair{{Group: 0, Lane: 0}, {Group: 0, Lane: 1}})
	if g.Size != 2 {
		t.Errorf("Gather(...).Size = %d, want 2", g.Size)
	}
}

func TestBinaryRejectsSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add with mismatched sizes: want panic, got none")
		}
	}()
	Add(Variable("a", 2), Variable("b", 3))
}

func TestSelectRejectsBranchMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Select with mismatched branch sizes: want panic, got none")
		}
	}()
	Select(Variable("cond", 1), Variable("then", 2), Variable("else", 3))
}
