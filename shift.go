// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements in-base limb shift: multiplication or division
// by decimalBase^k via element rotation rather than arithmetic. A left
// shift by k prepends k zero limbs; a right shift by k drops the k
// least-significant limbs.

// shiftLeft prepends k zero limbs: v * decimalBase^k. Zero input, or
// k == 0, yields a copy of v unchanged.
func shiftLeft(v vec, k int) vec {
	v = v.trim()
	if len(v) == 0 || k <= 0 {
		return v.clone()
	}
	z := make(vec, len(v)+k)
	copy(z[k:], v)
	return z
}

// shiftRight drops the k least-significant limbs: floor(v / decimalBase^k).
// If k >= len(v) the result is zero.
func shiftRight(v vec, k int) vec {
	v = v.trim()
	if k <= 0 {
		return v.clone()
	}
	if k >= len(v) {
		return vec(nil)
	}
	return append(vec(nil), v[k:]...)
}
