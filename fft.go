// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

import (
	"math"
	"math/cmplx"
)

// This file implements complex-double FFT convolution multiplication:
// bit-reversal permutation, iterative radix-2 Cooley-Tukey transform,
// pointwise multiply, then rounded carry propagation back into decimal
// limbs.

// fftSafeLimbCount reports whether a convolution over N = nextPow2(n)
// points stays within double-precision safety for decimalBase: N times
// (decimalBase-1)^2 must fit well inside a float64's 53-bit mantissa.
// The dispatcher falls back to Toom-3 instead of calling fftMul when
// this is false.
func fftSafeLimbCount(n int) bool {
	N := nextPow2(n)
	sum := float64(N) * float64(decimalBase-1) * float64(decimalBase-1)
	const safetyMargin = 1 << 40 // comfortably inside 2^53
	return sum < safetyMargin
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	if p == 0 {
		p = 1
	}
	return p
}

// fftTransform performs an in-place iterative radix-2 Cooley-Tukey
// transform of a, whose length must be a power of two. invert selects
// the inverse transform (ω = exp(2πi/len) rather than exp(-2πi/len));
// the inverse transform also divides every element by len(a).
func fftTransform(a []complex128, invert bool) {
	n := len(a)

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	// Iterative butterflies, doubling the block length each round.
	for length := 2; length <= n; length <<= 1 {
		ang := -2 * math.Pi / float64(length)
		if invert {
			ang = -ang
		}
		wlen := cmplx.Exp(complex(0, ang))
		for i := 0; i < n; i += length {
			w := complex(1.0, 0.0)
			half := length / 2
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := a[i+j+half] * w
				a[i+j] = u + v
				a[i+j+half] = u - v
				w *= wlen
			}
		}
	}

	if invert {
		nf := complex(float64(n), 0)
		for i := range a {
			a[i] /= nf
		}
	}
}

// fftMul computes x*y via complex-FFT convolution, trimmed. Caller
// (dispatch.go) is responsible for verifying fftSafeLimbCount first.
func fftMul(x, y vec) vec {
	x = x.trim()
	y = y.trim()
	if len(x) == 0 || len(y) == 0 {
		return vec(nil)
	}

	m := len(x) + len(y) - 1
	N := nextPow2(m)

	fa := make([]complex128, N)
	fb := make([]complex128, N)
	for i, d := range x {
		fa[i] = complex(float64(d), 0)
	}
	for i, d := range y {
		fb[i] = complex(float64(d), 0)
	}

	fftTransform(fa, false)
	fftTransform(fb, false)
	for i := range fa {
		fa[i] *= fb[i]
	}
	fftTransform(fa, true)

	// Round each real part and propagate carries in decimalBase.
	z := make(vec, N+2)
	var carry int64
	for i := 0; i < m; i++ {
		v := carry + int64(math.Round(real(fa[i])))
		z[i] = Word(v % int64(decimalBase))
		carry = v / int64(decimalBase)
	}
	i := m
	for carry > 0 {
		z[i] = Word(carry % int64(decimalBase))
		carry /= int64(decimalBase)
		i++
	}
	return z[:i].trim()
}
