// Package identifier formats and advances human-readable sequential identifiers
// such as "U-101" or "O-2048".
package identifier

import (
	"strconv"
	"strings"
)

// DefaultFloor is the value the first identifier of a kind is allocated after.
const DefaultFloor int64 = 100

// Identifier prefixes, one per entity kind.
const (
	PrefixUser    = "U"
	PrefixProduct = "P"
	PrefixAddress = "A"
	PrefixDesign  = "D"
	PrefixOrder   = "O"
)

const separator = "-"

// Format renders prefix and n as "<prefix>-<n>".
func Format(prefix string, n int64) string {
	return prefix + separator + strconv.FormatInt(n, 10)
}

// Parse splits id into its prefix and numeric suffix.
// ok is false when id has no separator, an empty prefix, or a suffix that is
// not a non-negative integer.
func Parse(id string) (prefix string, n int64, ok bool) {
	prefix, suffix, found := strings.Cut(strings.TrimSpace(id), separator)
	if !found || prefix == "" || suffix == "" {
		return "", 0, false
	}

	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || n < 0 {
		return "", 0, false
	}

	return prefix, n, true
}

// Next returns the identifier following last for the given prefix.
// An empty, foreign or unparseable last identifier restarts the sequence at
// floor+1, and the sequence never drops below floor+1.
func Next(prefix, last string, floor int64) string {
	return Format(prefix, NextValue(prefix, last, floor))
}

// NextValue is Next without formatting.
func NextValue(prefix, last string, floor int64) int64 {
	p, n, ok := Parse(last)
	if !ok || p != prefix || n < floor {
		return floor + 1
	}

	return n + 1
}
