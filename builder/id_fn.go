// SPDX-License-Identifier: MIT

// Package builder - label schemes: index -> string.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn renders a zero-based index as a label. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn renders the bare decimal index: 0→"0", 42→"42".
var DefaultIDFn IDFn = PrefixIDFn("", 0)

// excelDigits is the longest bijective base-26 name of a 64-bit index.
const excelDigits = 14

// ExcelColumnIDFn returns spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnIDFn(%d): negative index", idx))
	}
	var buf [excelDigits]byte
	k := len(buf)
	// Bijective base 26: digits run 1..26, so shift by one before each step.
	for n := uint64(idx) + 1; n > 0; n /= 26 {
		n--
		k--
		buf[k] = 'A' + byte(n%26)
	}

	return string(buf[k:])
}

// PrefixIDFn returns prefix + zero-padded decimal index, e.g. PrefixIDFn("r", 3)
// yields "r000", "r001", ... Padding keeps lexical and numeric order equal
// up to 10^width labels; width <= 0 disables padding.
func PrefixIDFn(prefix string, width int) IDFn {
	if width <= 0 {
		return func(idx int) string { return prefix + strconv.Itoa(idx) }
	}

	return func(idx int) string { return fmt.Sprintf("%s%0*d", prefix, width, idx) }
}
