// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements schoolbook add/subtract on digit-vector slices,
// plus the scalar variants. Carry and borrow propagate limb by limb,
// each limb kept in [0, decimalBase) by comparing against decimalBase
// rather than relying on machine-word overflow.

// addVV adds x and y limbwise into z (len(z) == min(len(x), len(y)))
// and returns the carry out of the top limb. z, x, y may overlap only
// if they are the same slice.
func addVV(z, x, y vec) (c Word) {
	for i := range z {
		s := x[i] + y[i] + c
		if s >= decimalBase {
			s -= decimalBase
			c = 1
		} else {
			c = 0
		}
		z[i] = s
	}
	return c
}

// addVW adds the scalar y to x limbwise into z, propagating carry.
func addVW(z, x vec, y Word) (c Word) {
	c = y
	for i := range z {
		s := x[i] + c
		if s >= decimalBase {
			z[i] = s - decimalBase
			c = 1
		} else {
			z[i] = s
			c = 0
		}
	}
	return c
}

// subVV subtracts y from x limbwise into z (len(z) == min(len(x), len(y)))
// and returns the borrow out of the top limb.
func subVV(z, x, y vec) (b Word) {
	for i := range z {
		d := x[i] - y[i] - b
		if x[i] < y[i]+b {
			d += decimalBase
			b = 1
		} else {
			b = 0
		}
		z[i] = d
	}
	return b
}

// subVW subtracts the scalar y from x limbwise into z, propagating
// borrow. The caller must ensure x (interpreted as a number) >= y.
func subVW(z, x vec, y Word) (b Word) {
	b = y
	for i := range z {
		if x[i] < b {
			z[i] = x[i] + decimalBase - b
			b = 1
		} else {
			z[i] = x[i] - b
			b = 0
		}
	}
	return b
}

// add computes z = x + y over unsigned magnitudes, trimmed.
func (z vec) add(x, y vec) vec {
	m, n := len(x), len(y)
	if m < n {
		return z.add(y, x)
	}
	if m == 0 {
		return vec(nil)
	}
	if n == 0 {
		return z.set(x)
	}
	z = z.make(m + 1)
	c := addVV(z[:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.trim()
}

// sub computes z = x - y over unsigned magnitudes; the caller must
// guarantee x >= y. A caller that cannot guarantee this must compare
// first and swap operands and sign; that swap happens one layer up, in
// Int.Add/Sub.
func (z vec) sub(x, y vec) vec {
	m, n := len(x), len(y)
	if m == 0 {
		return vec(nil)
	}
	if n == 0 {
		return z.set(x)
	}
	z = z.make(m)
	var c Word
	if m == n {
		c = subVV(z, x, y)
	} else {
		c = subVV(z[:n], x, y)
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("dbig: subtraction underflow (|x| < |y|)")
	}
	return z.trim()
}
