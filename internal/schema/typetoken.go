package schema

import "strings"

// TypeHint is a parsed type-hint cell.
type TypeHint struct {
	// Attributes are the bracket contents in encounter order, brackets stripped.
	Attributes []string
	// TypeName is the trimmed text after the last attribute group.
	TypeName string
	// Kind classifies TypeName.
	Kind Kind
	// Unterminated is set when a '[' had no closing ']'. Parsing stopped there
	// and the remainder, bracket included, became TypeName.
	Unterminated bool
}

// ParseTypeToken splits a type-hint cell into its leading attribute groups and
// the bare type name. It never fails.
func ParseTypeToken(raw string) TypeHint {
	var hint TypeHint

	rest := strings.TrimSpace(raw)
	for strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			hint.Unterminated = true
			break
		}

		if attr := strings.TrimSpace(rest[1:end]); attr != "" {
			hint.Attributes = append(hint.Attributes, attr)
		}

		rest = strings.TrimSpace(rest[end+1:])
	}

	hint.TypeName = rest
	hint.Kind = ParseKind(rest)

	return hint
}
