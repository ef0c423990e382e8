// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

import "strconv"

// This file implements decimal text formatting. The magnitude is
// first folded up from decimalBase into blockBase (1e8, see parse.go)
// via convertBase, then rendered block by block: the most significant
// block is written without padding, every other block is zero-padded
// to blockDigits wide.
func formatDecimal(mag vec, neg bool) string {
	mag = mag.trim()
	if mag.isZero() {
		return "0"
	}

	blocks := convertBase(mag, decimalBase, blockBase).trim()
	if len(blocks) == 0 {
		return "0"
	}

	buf := make([]byte, 0, len(blocks)*blockDigits+1)
	if neg {
		buf = append(buf, '-')
	}

	top := strconv.FormatUint(uint64(blocks[len(blocks)-1]), 10)
	buf = append(buf, top...)

	for i := len(blocks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(blocks[i]), 10)
		for pad := blockDigits - len(s); pad > 0; pad-- {
			buf = append(buf, '0')
		}
		buf = append(buf, s...)
	}
	return string(buf)
}
