// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

import "testing"

func TestCompareSigned(t *testing.T) {
	five := vec{5}
	for _, tc := range []struct {
		aMag vec
		aNeg bool
		bMag vec
		bNeg bool
		want int
	}{
		{vec(nil), false, vec(nil), false, 0},
		{vec(nil), false, five, false, -1},
		{vec(nil), false, five, true, 1},
		{five, true, vec(nil), false, -1},
		{five, false, five, true, 1},
		{five, true, five, false, -1},
		{five, false, five, false, 0},
		{five, true, five, true, 0},
		{vec{9}, true, five, true, -1}, // -9 < -5
		{vec{9}, false, five, false, 1},
	} {
		if got := compareSigned(tc.aMag, tc.aNeg, tc.bMag, tc.bNeg); got != tc.want {
			t.Errorf("compareSigned(%v,%v,%v,%v) = %d, want %d",
				tc.aMag, tc.aNeg, tc.bMag, tc.bNeg, got, tc.want)
		}
	}
}
