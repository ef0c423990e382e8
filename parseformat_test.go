// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dbig

import "testing"

func TestParseDecimal(t *testing.T) {
	for _, tc := range []struct {
		in       string
		wantNeg  bool
		wantN    int
		wantText string
	}{
		{"0", false, 1, "0"},
		{"007", false, 3, "7"},
		{"12345", false, 5, "12345"},
		{"-12345", true, 6, "-12345"},
		{"+42", false, 3, "42"},
		{"-0", false, 2, "0"},
		{"123abc", false, 3, "123"},
		{"abc", false, 0, "0"},
		{"", false, 0, "0"},
	} {
		mag, neg, n := parseDecimal(tc.in)
		if n != tc.wantN {
			t.Errorf("parseDecimal(%q) consumed %d, want %d", tc.in, n, tc.wantN)
			continue
		}
		if n == 0 {
			continue
		}
		if neg != tc.wantNeg {
			t.Errorf("parseDecimal(%q) neg = %v, want %v", tc.in, neg, tc.wantNeg)
		}
		if got := formatDecimal(mag, neg); got != tc.wantText {
			t.Errorf("parseDecimal(%q) round-trips to %q, want %q", tc.in, got, tc.wantText)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"100000000", "100000000"},
		{"99999999999999999999", "99999999999999999999"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	} {
		mag, neg, _ := parseDecimal(tc.in)
		if got := formatDecimal(mag, neg); got != tc.want {
			t.Errorf("formatDecimal(parseDecimal(%q)) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
