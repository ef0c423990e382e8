// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements Toom-Cook-3 multiplication: a five-point
// evaluation/interpolation scheme at {0, 1, -1, 2, infinity}. Its
// interpolation genuinely produces negative intermediates (unlike
// karatsuba.go's cross term), so every intermediate here is a signed
// (magnitude, sign) pair rather than a plain vec: signs are carried as
// data, never via exceptions.

// sval is a signed digit-vector intermediate, used only inside the
// Toom-3 evaluation/interpolation pipeline.
type sval struct {
	mag vec
	neg bool
}

func sFromVec(v vec) sval {
	v = v.trim()
	return sval{mag: v, neg: false}
}

func (a sval) negate() sval {
	if a.mag.isZero() {
		return a
	}
	return sval{mag: a.mag, neg: !a.neg}
}

// addSigned composes two (magnitude, sign) pairs: same sign adds
// magnitudes and keeps the sign; opposite signs subtract the smaller
// magnitude from the larger, taking the sign of the larger (zero is
// always positive). Shared between Int.Add/Int.Sub (int.go) and this
// file's sval arithmetic: it is the one place that rule is written
// down.
func addSigned(aMag vec, aNeg bool, bMag vec, bNeg bool) (vec, bool) {
	if aMag.isZero() {
		if bMag.isZero() {
			return vec(nil), false
		}
		return bMag.clone(), bNeg
	}
	if bMag.isZero() {
		return aMag.clone(), aNeg
	}
	if aNeg == bNeg {
		return vec(nil).add(aMag, bMag), aNeg
	}
	switch compare(aMag, bMag) {
	case 0:
		return vec(nil), false
	case 1:
		return vec(nil).sub(aMag, bMag), aNeg
	default:
		return vec(nil).sub(bMag, aMag), bNeg
	}
}

func sAdd(a, b sval) sval {
	mag, neg := addSigned(a.mag, a.neg, b.mag, b.neg)
	return sval{mag: mag, neg: neg}
}

func sSub(a, b sval) sval {
	return sAdd(a, b.negate())
}

// sMulWord scales a by a non-negative machine scalar, keeping a's sign.
func sMulWord(a sval, w Word) sval {
	mag := vec(nil).mulWord(a.mag, w)
	if mag.isZero() {
		return sval{}
	}
	return sval{mag: mag, neg: a.neg}
}

// sMul multiplies two signed intermediates via the general dispatcher:
// each pairwise product may itself be large enough to need Karatsuba,
// Toom-3, or FFT.
func sMul(a, b sval) sval {
	mag := mul(a.mag, b.mag)
	if mag.isZero() {
		return sval{}
	}
	return sval{mag: mag, neg: a.neg != b.neg}
}

// sDivExact divides a by the small positive exact divisor w (2 or 3 in
// this file), panicking if the division is not exact. Every division
// performed during interpolation is guaranteed exact by the
// interpolation identity, so a nonzero remainder means a logic error
// upstream.
func sDivExact(a sval, w Word) sval {
	q, r := vec(nil).divW(a.mag, w)
	if r != 0 {
		panic("dbig: toom3 interpolation division was not exact")
	}
	if q.isZero() {
		return sval{}
	}
	return sval{mag: q, neg: a.neg}
}

func sShiftLeft(a sval, k int) sval {
	if a.mag.isZero() {
		return sval{}
	}
	return sval{mag: shiftLeft(a.mag, k), neg: a.neg}
}

// toomEval evaluates the three blocks (lo, mid, hi) of an operand at
// the five points 0, 1, -1, 2, and infinity.
func toomEval(lo, mid, hi vec) [5]sval {
	l := sFromVec(lo)
	m := sFromVec(mid)
	h := sFromVec(hi)

	p0 := l
	p1 := sAdd(sAdd(l, m), h)
	pm1 := sSub(sAdd(l, h), m)
	p2 := sAdd(sAdd(l, sMulWord(m, 2)), sMulWord(h, 4))
	pinf := h

	return [5]sval{p0, p1, pm1, p2, pinf}
}

// toom3Mul computes x*y via Toom-Cook-3, trimmed. Falls back to
// karatsubaMul when max(len(x), len(y)) is at or below toomThreshold.
func toom3Mul(x, y vec) vec {
	x = x.trim()
	y = y.trim()
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n == 0 {
		return vec(nil)
	}
	if n <= toomThreshold {
		return karatsubaMul(x, y)
	}

	s := (n + 2) / 3 // block size: ceil(n/3)

	xlo, xrest := splitAt(x, s)
	xmid, xhi := splitAt(xrest, s)
	ylo, yrest := splitAt(y, s)
	ymid, yhi := splitAt(yrest, s)

	ex := toomEval(xlo, xmid, xhi)
	ey := toomEval(ylo, ymid, yhi)

	// Pointwise multiply: r0, r1, r-1, r2, rinf.
	var r [5]sval
	for i := range r {
		r[i] = sMul(ex[i], ey[i])
	}
	r0, r1, rm1, r2, rinf := r[0], r[1], r[2], r[3], r[4]

	// Interpolation.
	c0 := r0
	c4 := rinf
	c2 := sSub(sDivExact(sAdd(r1, rm1), 2), sAdd(c0, c4))
	s1 := sDivExact(sSub(r1, rm1), 2)
	x2 := sDivExact(sSub(r2, sAdd(c0, sAdd(sMulWord(c2, 4), sMulWord(c4, 16)))), 2)
	c3 := sDivExact(sSub(x2, s1), 3)
	c1 := sSub(s1, c3)

	// Reassembly: c0 + c1<<s + c2<<2s + c3<<3s + c4<<4s.
	result := c0
	result = sAdd(result, sShiftLeft(c1, s))
	result = sAdd(result, sShiftLeft(c2, 2*s))
	result = sAdd(result, sShiftLeft(c3, 3*s))
	result = sAdd(result, sShiftLeft(c4, 4*s))

	if result.neg && !result.mag.isZero() {
		panic("dbig: toom3 produced a negative product of two magnitudes")
	}
	return result.mag.trim()
}
