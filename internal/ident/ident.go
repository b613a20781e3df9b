// Package ident maps arbitrary cell text to valid C# identifiers.
package ident

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultField is used when a header has no letters or digits at all.
	DefaultField = "Field"
	// DefaultMember is used for blank enum member text.
	DefaultMember = "Member"
)

// FieldIdentifier converts header text into a PascalCase property name.
// Examples:
//   - "item name" -> "ItemName"
//   - "max-hp" -> "MaxHp"
//   - "1st" -> "_1st"
//   - "--" -> "Field"
func FieldIdentifier(text string) string {
	runs := splitRuns(text)
	if len(runs) == 0 {
		runs = []string{DefaultField}
	}

	var sb strings.Builder
	for _, run := range runs {
		sb.WriteString(upperFirst(run))
	}

	return finish(sb.String())
}

// MemberIdentifier converts a data value into an enum member name.
// Casing and word boundaries are preserved, only invalid runes are replaced.
func MemberIdentifier(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return DefaultMember
	}

	return finish(trimmed)
}

// IsIdentifier reports whether s is already a valid identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 && !isStart(r) {
			return false
		}

		if !isPart(r) {
			return false
		}
	}

	return true
}

// finish prefixes '_' when s does not start with an identifier start rune and
// replaces every remaining non-identifier rune with '_'.
func finish(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 1)

	for i, r := range s {
		if i == 0 && !isStart(r) {
			sb.WriteByte('_')
		}

		if isPart(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}

	return sb.String()
}

// splitRuns splits s into maximal runs of letters and digits.
func splitRuns(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

func isStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
