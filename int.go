// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements the public signed-integer type: a magnitude
// plus a sign field. Every method sets its receiver to a freshly
// allocated magnitude and returns it; a result never shares storage
// with an operand. Sign composition for Add/Sub goes
// through addSigned (toom3.go); Cmp goes through compareSigned
// (compare.go); Mul/Div/Mod go through the multiplication dispatcher
// and division kernels (dispatch.go, classicdiv.go);
// ShiftLeft/ShiftRightDigits go through shift.go.

// Int is an arbitrary-precision signed integer. The zero Int
// represents 0 and is ready to use without initialization.
type Int struct {
	mag vec
	neg bool // true iff the value is strictly negative; mag == 0 implies neg == false
}

// NewInt returns an Int with the value of x.
func NewInt(x int64) *Int {
	z := new(Int)
	return z.SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	z.mag = uint64ToVec(u)
	z.neg = neg && !z.mag.isZero()
	return z
}

func uint64ToVec(u uint64) vec {
	if u == 0 {
		return vec(nil)
	}
	var v vec
	for u > 0 {
		v = append(v, Word(u%uint64(decimalBase)))
		u /= uint64(decimalBase)
	}
	return v
}

// Parse parses a base-10 string (with an optional leading '+' or '-')
// into z, returning z and the number of bytes consumed from s. A
// string with no leading digits (after an optional sign) leaves z
// unchanged and returns 0.
func (z *Int) Parse(s string) (*Int, int) {
	mag, neg, n := parseDecimal(s)
	if n == 0 {
		return z, 0
	}
	z.mag = mag
	z.neg = neg
	return z, n
}

// FromString parses s in its entirety as a base-10 integer. ok is
// false if s is not a valid, fully-consumed decimal integer literal.
func FromString(s string) (z *Int, ok bool) {
	z = new(Int)
	_, n := z.Parse(s)
	return z, n == len(s) && n > 0
}

// String returns the base-10 text representation of z.
func (z *Int) String() string {
	return formatDecimal(z.mag, z.neg)
}

// Sign returns -1, 0, or +1 depending on the sign of z.
func (z *Int) Sign() int {
	if z.mag.isZero() {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// IsZero reports whether z == 0.
func (z *Int) IsZero() bool {
	return z.mag.isZero()
}

// Digits returns the number of limbs in z's magnitude's internal
// (decimalBase) representation; zero has a magnitude length of 0.
func (z *Int) Digits() int {
	return len(z.mag.trim())
}

// Cmp compares z and y, returning -1, 0, or +1 as z < y, z == y, or
// z > y.
func (z *Int) Cmp(y *Int) int {
	return compareSigned(z.mag, z.neg, y.mag, y.neg)
}

// Equals reports whether z and y represent the same value.
func (z *Int) Equals(y *Int) bool {
	return z.Cmp(y) == 0
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	mag := x.mag.clone()
	z.mag = mag
	z.neg = !x.neg && !mag.isZero()
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.mag = x.mag.clone()
	z.neg = false
	return z
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	mag, neg := addSigned(x.mag, x.neg, y.mag, y.neg)
	z.mag = mag
	z.neg = neg
	return z
}

// Sub sets z to x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	mag, neg := addSigned(x.mag, x.neg, y.mag, !y.neg)
	z.mag = mag
	z.neg = neg
	return z
}

// Mul sets z to x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	mag := mul(x.mag, y.mag)
	z.mag = mag
	z.neg = (x.neg != y.neg) && !mag.isZero()
	return z
}

// Div sets z to the truncated (toward zero) quotient x/y and returns
// z and a nil error. If y is zero, z is left unchanged and an
// *ArithmeticError is returned.
func (z *Int) Div(x, y *Int) (*Int, error) {
	if y.mag.isZero() {
		return z, &ArithmeticError{Reason: DivideByZero}
	}
	q, _ := div(x.mag, y.mag)
	z.mag = q
	z.neg = (x.neg != y.neg) && !q.isZero()
	return z, nil
}

// Mod sets z to the remainder of truncated division x/y (the sign of
// the result follows x: this is the remainder of truncated division,
// not a Euclidean modulus). If y is zero, z is left unchanged and an
// *ArithmeticError is returned.
func (z *Int) Mod(x, y *Int) (*Int, error) {
	if y.mag.isZero() {
		return z, &ArithmeticError{Reason: DivideByZero}
	}
	_, r := div(x.mag, y.mag)
	z.mag = r
	z.neg = x.neg && !r.isZero()
	return z, nil
}

// ShiftLeftDigits sets z to x * decimalBase^k and returns z (k >= 0).
func (z *Int) ShiftLeftDigits(x *Int, k int) *Int {
	mag := shiftLeft(x.mag, k)
	z.mag = mag
	z.neg = x.neg && !mag.isZero()
	return z
}

// ShiftRightDigits sets z to floor(|x| / decimalBase^k) with x's sign
// (truncating toward zero, consistent with Div) and returns z (k >= 0).
func (z *Int) ShiftRightDigits(x *Int, k int) *Int {
	mag := shiftRight(x.mag, k)
	z.mag = mag
	z.neg = x.neg && !mag.isZero()
	return z
}
