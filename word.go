// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dbig implements arbitrary-precision signed-integer arithmetic
// over a decimal digit-vector representation. The package consumes and
// produces decimal text; internally every value is a little-endian
// vector of base-100 limbs plus a sign.
package dbig

// Word is a single limb of a digit vector: an integer in [0, decimalBase).
// Two limbs multiplied together, or summed with carries across a vector
// of any practical length, fit comfortably in a Word without overflow.
type Word = uint64

// decimalBase is the radix of a single Word: two decimal digits per limb.
const decimalBase Word = 100

// decimalBaseDigits is the number of decimal digits represented by one
// Word (log10(decimalBase)).
const decimalBaseDigits = 2

// Dispatch thresholds for the multiplication dispatcher (dispatch.go),
// expressed in total limb count (len(a)+len(b)).
const (
	karatsubaThreshold = 64  // at or below this, classical multiplication
	toomThreshold      = 256 // at or below this, Karatsuba
	fftThreshold       = 700 // at or below this, Toom-3; above, FFT
)
