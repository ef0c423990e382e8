// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements Karatsuba recursive multiplication: split each
// operand at the midpoint, combine three half-size products, recurse
// and fall back to classical multiplication below a threshold. The
// split point is ceil(n/2), and the cross term is computed directly as
// (low_x+high_x)*(low_y+high_y) - a - c, which is always non-negative
// (contrast toom3.go, where negative intermediates are unavoidable and
// every value carries an explicit sign).

// splitAt splits v into (low, high) at limb position m: low = v[:m]
// (zero-extended conceptually, but simply shorter), high = v[m:].
func splitAt(v vec, m int) (low, high vec) {
	if m >= len(v) {
		return v, vec(nil)
	}
	return v[:m], v[m:]
}

// karatsubaMul computes x*y via the Karatsuba recursion, trimmed.
// Falls back to classicMul when max(len(x), len(y)) is at or below
// karatsubaThreshold.
func karatsubaMul(x, y vec) vec {
	x = x.trim()
	y = y.trim()
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n == 0 {
		return vec(nil)
	}
	if n <= karatsubaThreshold {
		return vec(nil).classicMul(x, y)
	}

	m := (n + 1) / 2
	xlo, xhi := splitAt(x, m)
	ylo, yhi := splitAt(y, m)

	// x*y = a*B^2m + b*B^m + c, with a = xhi*yhi, c = xlo*ylo, and
	// b = (xlo+xhi)*(ylo+yhi) - a - c.
	a := karatsubaMul(xhi, yhi)
	c := karatsubaMul(xlo, ylo)

	sx := vec(nil).add(xlo, xhi)
	sy := vec(nil).add(ylo, yhi)
	pq := karatsubaMul(sx, sy)

	ac := vec(nil).add(a, c)
	b := vec(nil).sub(pq, ac) // always >= 0: pq >= a+c since cross terms are >= 0

	result := shiftLeft(a, 2*m)
	result = vec(nil).add(result, shiftLeft(b, m))
	result = vec(nil).add(result, c)
	return result.trim()
}
