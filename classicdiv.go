// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements vector-by-scalar long division, and Knuth
// Algorithm D (TAOCP 4.3.1) for vector-by-vector division. The overall
// shape normalizes the divisor, then for each output limb estimates a
// quotient digit, refines it, multiplies and subtracts, and adds back
// on underflow. decimalBase (100) is small enough that every
// intermediate in this file fits directly in a Word (uint64).

// divWVW divides x by the scalar d, writing the quotient to z (which
// must have len(z) == len(x)) and returning the remainder. Single pass
// from most significant to least significant limb.
func divWVW(z, x vec, d Word) (r Word) {
	for i := len(x) - 1; i >= 0; i-- {
		t := r*decimalBase + x[i]
		z[i] = t / d
		r = t % d
	}
	return r
}

// divW computes q, r = x / d, x % d for a scalar divisor d. Division by
// zero panics: the public boundary (Int.Div/Mod) is responsible for
// turning that into ArithmeticError before any kernel sees a zero
// divisor.
func (z vec) divW(x vec, d Word) (q vec, r Word) {
	switch {
	case d == 0:
		panic("dbig: division by zero")
	case d == 1:
		return z.set(x), 0
	case len(x) == 0:
		return vec(nil), 0
	}
	z = z.make(len(x))
	r = divWVW(z, x, d)
	return z.trim(), r
}

// divLarge divides u by v (len(v) >= 2, v's top limb nonzero) using
// Knuth Algorithm D, returning trimmed quotient and remainder. u and v
// are not modified; div (below) handles the |u|<|v| and |u|==|v| cases
// before normalization so the degenerate one-limb-quotient cases never
// reach here.
func divLarge(u, v vec) (q, r vec) {
	n := len(v)
	m := len(u) - n

	// D1. Normalize: d = floor(B / (v[n-1]+1)).
	d := decimalBase / (v[n-1] + 1)
	var vn vec
	if d == 1 {
		vn = v
	} else {
		vn = vec(nil).mulWord(v, d)
		vn = vn.resize(n) // mulWord never grows v's limb count here
	}

	un := vec(nil).mulWord(u, d)
	un = un.resize(len(u) + 1) // append the extra limb D1 requires

	qhatv := make(vec, n+1)
	q = make(vec, m+1)

	// D2-D7.
	for j := m; j >= 0; j-- {
		var qhat, rhat Word
		ujn := un[j+n]
		if ujn == vn[n-1] {
			// num/vn[n-1] would be exactly decimalBase, one past the
			// top of a single digit's range; short-circuit per Knuth.
			qhat = decimalBase - 1
			rhat = ujn + un[j+n-1]
		} else {
			num := ujn*decimalBase + un[j+n-1]
			qhat = num / vn[n-1]
			rhat = num % vn[n-1]
		}

		// D3. Refine: while q̂ = B, or (n>1 and q̂·v[n-2] > r̂·B +
		// u[j+n-2]), decrement q̂ and add v[n-1] to r̂. Stop once
		// r̂ >= B: the inequality is then guaranteed false.
		for rhat < decimalBase {
			if qhat >= decimalBase || (n > 1 && qhat*vn[n-2] > rhat*decimalBase+un[j+n-2]) {
				qhat--
				rhat += vn[n-1]
				continue
			}
			break
		}

		// D4. Multiply and subtract: u[j..j+n] -= qhat*v[0..n-1].
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		borrow := subVV(un[j:j+n+1], un[j:j+n+1], qhatv)

		// D5/D6. Add-back on underflow (probability ~2/decimalBase):
		// qhat was one too large. Add v back into u[j..j+n-1]; the
		// carry out of that add cancels the borrow the subtract left
		// in u[j+n], so the final digit there is simply discarded.
		if borrow != 0 {
			qhat--
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] = (un[j+n] + c) % decimalBase
		}

		q[j] = qhat
	}

	// D8. Unnormalize the remainder.
	q = q.trim()
	if d == 1 {
		r = un[:n].trim()
	} else {
		rq := make(vec, n)
		var rr Word
		rr = divWVW(rq, un[:n], d)
		if rr != 0 {
			panic("dbig: internal error: nonzero remainder after unnormalizing")
		}
		r = rq.trim()
	}
	return q, r
}

// div computes q, r = u / v, u % v for unsigned magnitudes. Division by
// zero panics (see divW). The |u|<|v| and |u|==|v| cases are
// short-circuited to avoid degenerate Algorithm D inputs (a
// single-limb, possibly-zero-valued divisor slice).
func div(u, v vec) (q, r vec) {
	if len(v.trim()) == 0 {
		panic("dbig: division by zero")
	}
	u = u.trim()
	v = v.trim()

	switch c := compare(u, v); {
	case c < 0:
		return vec(nil), u.clone()
	case c == 0:
		return vecOne.clone(), vec(nil)
	}

	if len(v) == 1 {
		qq, rr := vec(nil).divW(u, v[0])
		if rr == 0 {
			return qq, vec(nil)
		}
		return qq, vec{rr}
	}

	return divLarge(u, v)
}
