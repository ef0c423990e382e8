// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements the multiplication dispatcher: it picks among
// classical, Karatsuba, Toom-3, and FFT multiplication by combined
// operand size.

// mul computes x*y over unsigned magnitudes, choosing the cheapest
// strategy for the combined operand size. This is the single entry
// point every higher-level multiply (Int.Mul, and Toom-3's own
// pointwise step) goes through.
func mul(x, y vec) vec {
	x = x.trim()
	y = y.trim()
	if len(x) == 0 || len(y) == 0 {
		return vec(nil)
	}
	if len(y) == 1 {
		return vec(nil).mulWord(x, y[0])
	}
	if len(x) == 1 {
		return vec(nil).mulWord(y, x[0])
	}

	n := len(x) + len(y)
	switch {
	case n <= karatsubaThreshold:
		return vec(nil).classicMul(x, y)
	case n <= toomThreshold:
		return karatsubaMul(x, y)
	case n <= fftThreshold:
		return toom3Mul(x, y)
	case fftSafeLimbCount(n):
		return fftMul(x, y)
	default:
		// Too large for safe double-precision FFT convolution: fall
		// back rather than surface an error.
		return toom3Mul(x, y)
	}
}
