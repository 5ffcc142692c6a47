// Package numwords converts non-negative whole currency amounts to their
// English words form, as printed on the receipt's legal-amount line.
package numwords

import (
	"errors"
	"strings"
)

var units = []string{"", "One", "Two", "Three", "Four", "Five", "Six",
	"Seven", "Eight", "Nine"}

var teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
	"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty",
	"Seventy", "Eighty", "Ninety"}

// ErrNegativeAmount is returned for amounts below zero. Registrations
// can never total a negative fee, so a negative here means a caller bug.
var ErrNegativeAmount = errors.New("negative amounts cannot be spelled out")

// Words returns the English spelling of n followed by the word "Only",
// e.g. Words(1230) == "One Thousand Two Hundred Thirty Only".
//
// Zero is the one special case: it returns the bare literal "Zero",
// with no suffix. Amounts are whole currency units — there is no
// fractional support.
func Words(n int) (string, error) {
	if n < 0 {
		return "", ErrNegativeAmount
	}
	if n == 0 {
		return "Zero", nil
	}
	return spell(n) + " Only", nil
}

// spell decomposes n into thousands / hundreds / tens-or-teens / units
// groups, recursively, concatenating each group's words only when the
// group is non-zero.
func spell(n int) string {
	var parts []string

	switch {
	case n >= 1000:
		parts = append(parts, spell(n/1000), "Thousand")
		if rem := n % 1000; rem != 0 {
			parts = append(parts, spell(rem))
		}
	case n >= 100:
		parts = append(parts, units[n/100], "Hundred")
		if rem := n % 100; rem != 0 {
			parts = append(parts, spell(rem))
		}
	case n >= 20:
		parts = append(parts, tens[n/10])
		if rem := n % 10; rem != 0 {
			parts = append(parts, units[rem])
		}
	case n >= 10:
		parts = append(parts, teens[n-10])
	default:
		parts = append(parts, units[n])
	}

	return strings.Join(parts, " ")
}
