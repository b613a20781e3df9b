package literal

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt parses cell as a 32-bit signed integer. Surrounding whitespace is
// ignored. A blank or unparseable cell yields 0 with usedDefault set.
func ParseInt(cell string) (value int64, usedDefault bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 32)
	if err != nil {
		return 0, true
	}

	return v, false
}

// ParseFloat parses cell as a finite single-precision float. Surrounding
// whitespace is ignored. A blank, unparseable, out-of-range or non-finite cell
// yields 0 with usedDefault set.
func ParseFloat(cell string) (value float32, usedDefault bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true
	}

	return float32(v), false
}

// FormatInt renders an int literal.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders a float literal with the fewest digits that round-trip
// the single-precision value, at least one fractional digit and the f suffix.
func FormatFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s + "f"
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Quote renders s as a double-quoted string literal.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
