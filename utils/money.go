package utils

import (
	"strconv"
	"strings"
)

// FormatUSD formats an amount in cents as a string like "$1,234.56".
// Uses comma as thousands separator and always prints two decimals.
func FormatUSD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	dollars := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + $ + .cc
	b.Grow(len(dollars) + len(dollars)/3 + 5)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(dollars) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(dollars[:rem])
	for i := rem; i < len(dollars); i += 3 {
		b.WriteByte(',')
		b.WriteString(dollars[i : i+3])
	}

	b.WriteByte('.')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))

	return b.String()
}

// FormatWholeUSD formats a whole-dollar amount as "$12,500"
func FormatWholeUSD(dollars int64) string {
	s := FormatUSD(dollars * 100)
	return strings.TrimSuffix(s, ".00")
}
