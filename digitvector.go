// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements shared digit-vector utilities used by every
// arithmetic kernel in the package. A digit vector is a []Word in
// little-endian order (index 0 is the coefficient of decimalBase^0).
// Canonical form has no leading (most-significant) zero limb; the
// canonical representation of zero is a zero-length slice.
//
// Every vector here is a value: kernels never mutate a caller's vector
// in place unless that vector is the kernel's own freshly-made
// destination.

// vec is the unexported digit-vector type all kernels share.
type vec []Word

var (
	vecZero = vec(nil)
	vecOne  = vec{1}
)

// isZero reports whether v represents zero, i.e. every limb is zero
// (the empty vector counts as zero).
func (v vec) isZero() bool {
	for _, d := range v {
		if d != 0 {
			return false
		}
	}
	return true
}

// rangeIsZero reports whether every limb of v in [start, end) is zero.
// An empty range counts as zero.
func rangeIsZero(v vec, start, end int) bool {
	for i := start; i < end; i++ {
		if v[i] != 0 {
			return false
		}
	}
	return true
}

// trim removes leading (most-significant) zero limbs, leaving at most
// a zero-length result for zero. Idempotent.
func (v vec) trim() vec {
	i := len(v)
	for i > 0 && v[i-1] == 0 {
		i--
	}
	return v[:i]
}

// normalized reports whether v is already in canonical form.
func (v vec) normalized() bool {
	return len(v) == 0 || v[len(v)-1] != 0
}

// make returns a vector of length n, reusing z's storage when it has
// enough capacity.
func (z vec) make(n int) vec {
	if n <= cap(z) {
		zz := z[:n]
		return zz
	}
	const extra = 4
	return make(vec, n, n+extra)
}

// resize grows v to length n, zero-filling the new limbs. It never
// shrinks.
func (v vec) resize(n int) vec {
	if n <= len(v) {
		return v
	}
	z := v.make(n)
	copy(z, v)
	for i := len(v); i < n; i++ {
		z[i] = 0
	}
	return z
}

// setRange assigns value to every limb of v in [start, end).
func setRange(v vec, start, end int, value Word) {
	for i := start; i < end; i++ {
		v[i] = value
	}
}

// vcopy copies min(len(src), len(dst)) limbs from src to dst and
// returns the number of limbs copied.
func vcopy(dst, src vec) int {
	return copy(dst, src)
}

// set copies x into z, reusing z's storage if possible.
func (z vec) set(x vec) vec {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// clone returns an independent copy of v.
func (v vec) clone() vec {
	return append(vec(nil), v...)
}

// compare returns -1, 0, or +1 as the unsigned magnitudes of x and y
// compare: by effective length after ignoring leading zeros, then, if
// equal, lexicographically from the most significant limb down. Zero
// on both sides compares equal regardless of representation (trimmed
// or not).
func compare(x, y vec) int {
	x = x.trim()
	y = y.trim()
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
