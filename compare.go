// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements the signed comparator. The unsigned half
// (compare) lives in digitvector.go; this file adds the sign-aware
// composition: opposite signs are decided by sign alone, equal signs
// fall back to unsigned compare, negated when both operands are
// negative.
func compareSigned(aMag vec, aNeg bool, bMag vec, bNeg bool) int {
	aZero := aMag.isZero()
	bZero := bMag.isZero()
	switch {
	case aZero && bZero:
		return 0
	case aZero:
		if bNeg {
			return 1
		}
		return -1
	case bZero:
		if aNeg {
			return -1
		}
		return 1
	}
	if aNeg != bNeg {
		if aNeg {
			return -1
		}
		return 1
	}
	c := compare(aMag, bMag)
	if aNeg {
		return -c
	}
	return c
}
