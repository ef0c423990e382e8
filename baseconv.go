// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

// This file implements generic base conversion, used by parse.go and
// format.go to move between the parser's intermediate base (10^8, see
// parse.go) and decimalBase (100).

// mulAddGeneric computes acc*mulBy + add, where acc is a digit vector
// already expressed in base `base` and the result is returned in that
// same base. This is the single arithmetic primitive base conversion
// needs: each source limb, from most to least significant, is folded
// in via one multiply-and-add.
func mulAddGeneric(acc []Word, mulBy Word, add Word, base Word) []Word {
	carry := add
	for i := range acc {
		p := acc[i]*mulBy + carry
		acc[i] = p % base
		carry = p / base
	}
	for carry > 0 {
		acc = append(acc, carry%base)
		carry /= base
	}
	return acc
}

// convertBase converts the little-endian digit vector v, expressed in
// base fromBase, into the equivalent vector expressed in base toBase.
// When fromBase == toBase the input is returned unchanged (a copy).
func convertBase(v vec, fromBase, toBase Word) vec {
	if fromBase == toBase {
		return v.clone()
	}
	v = v.trim()
	var acc vec
	for i := len(v) - 1; i >= 0; i-- {
		acc = mulAddGeneric(acc, fromBase, v[i], toBase)
	}
	return acc.trim()
}
