// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements scalar multiply-accumulate and schoolbook
// vector-times-vector multiplication.

// mulAddVWW computes z = x*y + r limbwise (Knuth 4.3.1's "multiply and
// add"), returning the carry out of the top limb. len(z) == len(x).
func mulAddVWW(z, x vec, y, r Word) (c Word) {
	c = r
	for i, xi := range x {
		p := xi*y + c
		z[i] = p % decimalBase
		c = p / decimalBase
	}
	return c
}

// addMulVVW computes z += x*y limbwise, returning the carry out of the
// top limb. len(z) == len(x). Used by basicMul's inner loop.
func addMulVVW(z, x vec, y Word) (c Word) {
	for i, xi := range x {
		p := xi*y + z[i] + c
		z[i] = p % decimalBase
		c = p / decimalBase
	}
	return c
}

// mulWord computes z = x*y (a fresh vector), trimmed. Zero factor
// short-circuits to zero.
func (z vec) mulWord(x vec, y Word) vec {
	m := len(x)
	if m == 0 || y == 0 {
		return vec(nil)
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[:m], x, y, 0)
	return z.trim()
}

// basicMul multiplies x and y schoolbook-style and leaves the
// (non-normalized) result in z[0 : len(x)+len(y)]. For each limb of y,
// a scalar multiply-and-add is accumulated into z at that limb's
// offset; the outer loop's carry lands one position past the partial
// sum.
func basicMul(z, x, y vec) {
	setRange(z, 0, len(x)+len(y), 0)
	for i, yi := range y {
		if yi != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, yi)
		}
	}
}

// classicMul computes z = x * y via schoolbook multiplication,
// trimmed. The shorter operand drives the outer loop.
func (z vec) classicMul(x, y vec) vec {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.classicMul(y, x)
	case m == 0 || n == 0:
		return vec(nil)
	case n == 1:
		return z.mulWord(x, y[0])
	}
	z = z.make(m + n)
	basicMul(z, x, y)
	return z.trim()
}
