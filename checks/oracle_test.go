// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checks cross-validates dbig.Int's arithmetic against
// shopspring/decimal, an independently-implemented arbitrary-precision
// library, restricted to integer-valued inputs. Structured the same
// way nehemming-numeric/checks validates its own Numeric type: a
// sibling module with a replace directive back to the root module,
// so the root module itself never depends on a third-party decimal
// library.
package checks

import (
	"strings"
	"testing"

	"github.com/db47h-student/dbig"
	"github.com/shopspring/decimal"
)

func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 60 {
		s = s[:60]
	}
	return s
}

// FuzzArithmeticConsistency fuzzes Add/Sub/Mul/Div/Mod on pairs of
// decimal-integer strings, checking dbig.Int against decimal.Decimal
// (both restricted to integers, so no fractional rounding enters the
// comparison).
func FuzzArithmeticConsistency(f *testing.F) {
	seed := []string{
		"0", "1", "-1", "7", "-7", "2", "99999999999999999999",
		"-99999999999999999999", "12345678901234567890", "98765432109876543210",
	}
	for _, a := range seed {
		for _, b := range seed {
			f.Add(a, b)
		}
	}

	f.Fuzz(func(t *testing.T, aStr, bStr string) {
		aStr = sanitizeInput(aStr)
		bStr = sanitizeInput(bStr)

		dec1, err := decimal.NewFromString(aStr)
		if err != nil || !dec1.IsInteger() {
			t.Skipf("invalid/non-integer decimal input A: %q", aStr)
		}
		dec2, err := decimal.NewFromString(bStr)
		if err != nil || !dec2.IsInteger() {
			t.Skipf("invalid/non-integer decimal input B: %q", bStr)
		}

		num1, ok := dbig.FromString(aStr)
		if !ok {
			t.Skipf("invalid dbig input A: %q", aStr)
		}
		num2, ok := dbig.FromString(bStr)
		if !ok {
			t.Skipf("invalid dbig input B: %q", bStr)
		}

		if got := num1.String(); got != dec1.String() {
			t.Fatalf("parse mismatch for %q: dbig=%s decimal=%s", aStr, got, dec1.String())
		}

		if got, want := new(dbig.Int).Add(num1, num2).String(), dec1.Add(dec2).String(); got != want {
			t.Errorf("add(%s, %s) = %s, want %s", aStr, bStr, got, want)
		}
		if got, want := new(dbig.Int).Sub(num1, num2).String(), dec1.Sub(dec2).String(); got != want {
			t.Errorf("sub(%s, %s) = %s, want %s", aStr, bStr, got, want)
		}
		if got, want := new(dbig.Int).Mul(num1, num2).String(), dec1.Mul(dec2).String(); got != want {
			t.Errorf("mul(%s, %s) = %s, want %s", aStr, bStr, got, want)
		}

		if dec2.IsZero() {
			if _, err := new(dbig.Int).Div(num1, num2); err == nil {
				t.Errorf("Div(%s, 0) did not return an error", aStr)
			}
			return
		}

		wantQ, wantR := dec1.QuoRem(dec2, 0)
		gotQ, err := new(dbig.Int).Div(num1, num2)
		if err != nil {
			t.Fatalf("Div(%s, %s) returned error: %v", aStr, bStr, err)
		}
		if got, want := gotQ.String(), wantQ.String(); got != want {
			t.Errorf("div(%s, %s) = %s, want %s", aStr, bStr, got, want)
		}

		gotR, err := new(dbig.Int).Mod(num1, num2)
		if err != nil {
			t.Fatalf("Mod(%s, %s) returned error: %v", aStr, bStr, err)
		}
		if got, want := gotR.String(), wantR.String(); got != want {
			t.Errorf("mod(%s, %s) = %s, want %s", aStr, bStr, got, want)
		}
	})
}
