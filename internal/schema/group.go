package schema

import (
	"sheetgen/internal/common"
	"sheetgen/internal/ident"
)

// ColumnGroup is one logical field: a named header column plus the run of
// blank-header columns that follow it.
type ColumnGroup struct {
	// Header is the raw header text of the starting column.
	Header string
	// PropertyName is Header sanitized into an identifier.
	PropertyName string
	// TypeToken is the raw type hint of the starting column.
	TypeToken string
	// TypeName is the bare type name parsed from TypeToken.
	TypeName string
	// Kind classifies TypeName.
	Kind Kind
	// Attributes parsed from TypeToken, in order.
	Attributes []string
	// Columns are the contiguous 0-based column indices of the group.
	Columns []int
	// IsEnum is set for `enum` typed groups.
	IsEnum bool
	// MalformedAttribute is set when TypeToken had an unterminated '['.
	MalformedAttribute bool
}

// Start returns the index of the column that carries the header.
func (g ColumnGroup) Start() int {
	start, _ := common.First(g.Columns)
	return start
}

// Group partitions the header columns into column groups, left to right.
// Blank header columns that precede the first named header are skipped.
// Only the starting column's type hint is used; continuation columns' hints
// are ignored. typeHints may be shorter than headers.
func Group(headers, typeHints []string) []ColumnGroup {
	var groups []ColumnGroup

	i := 0
	for i < len(headers) {
		if common.IsBlank(headers[i]) {
			i++
			continue
		}

		token := ""
		if i < len(typeHints) {
			token = typeHints[i]
		}

		hint := ParseTypeToken(token)

		g := ColumnGroup{
			Header:             headers[i],
			PropertyName:       ident.FieldIdentifier(headers[i]),
			TypeToken:          token,
			TypeName:           hint.TypeName,
			Kind:               hint.Kind,
			Attributes:         hint.Attributes,
			Columns:            []int{i},
			IsEnum:             hint.Kind == KindEnum,
			MalformedAttribute: hint.Unterminated,
		}

		i++
		for i < len(headers) && common.IsBlank(headers[i]) {
			g.Columns = append(g.Columns, i)
			i++
		}

		groups = append(groups, g)
	}

	return groups
}
