// Package literal renders a field's cells of one data row as a source literal.
//
// Formatting is total: unparseable numbers become zero, missing enum values
// become the enum's zero value and empty arrays render as empty array
// literals. Values that fell back to a default are reported in
// Literal.Fallbacks so callers may surface them.
package literal

import (
	"strings"

	"sheetgen/internal/common"
	"sheetgen/internal/grid"
	"sheetgen/internal/ident"
	"sheetgen/internal/schema"
)

// Literal is a rendered value.
type Literal struct {
	// Text is the source fragment, e.g. `12`, `1.5f`, `"a"`, `Category.Weapon`.
	Text string
	// Fallbacks are the non-blank raw values that could not be parsed and were
	// replaced by the type's zero value.
	Fallbacks []string
}

// Format renders the value of field f in row.
//
// Scalars use the first non-blank cell among the field's columns. Arrays use
// every non-blank cell, each further split on ',' or ';'. Enum values are
// sanitized like enum members. Custom types are rendered as strings.
func Format(f schema.FieldDefinition, row grid.Row) Literal {
	switch {
	case f.Kind == schema.KindEnum:
		return formatEnum(f, row)
	case f.Kind.IsArray():
		return formatArray(f, row)
	}

	cell, _ := firstNonBlank(row, f.Columns)

	return formatScalar(f.Kind, cell)
}

func formatEnum(f schema.FieldDefinition, row grid.Row) Literal {
	cell, ok := firstNonBlank(row, f.Columns)
	if !ok {
		return Literal{Text: "(" + f.Type + ")0"}
	}

	return Literal{Text: f.Type + "." + ident.MemberIdentifier(cell)}
}

func formatArray(f schema.FieldDefinition, row grid.Row) Literal {
	elem := f.Kind.Elem()

	var (
		items     []string
		fallbacks []string
	)

	for _, c := range f.Columns {
		cell := row.Cell(c)
		if common.IsBlank(cell) {
			continue
		}

		for _, part := range splitValues(cell) {
			lit := formatScalar(elem, part)
			items = append(items, lit.Text)
			fallbacks = append(fallbacks, lit.Fallbacks...)
		}
	}

	typeName := strings.TrimSuffix(f.Type, "[]")
	if len(items) == 0 {
		return Literal{Text: "new " + typeName + "[] { }"}
	}

	return Literal{
		Text:      "new " + typeName + "[] { " + strings.Join(items, ", ") + " }",
		Fallbacks: fallbacks,
	}
}

func formatScalar(kind schema.Kind, cell string) Literal {
	switch kind {
	case schema.KindInt:
		v, usedDefault := ParseInt(cell)
		return Literal{Text: FormatInt(v), Fallbacks: fallback(cell, usedDefault)}
	case schema.KindFloat:
		v, usedDefault := ParseFloat(cell)
		return Literal{Text: FormatFloat(v), Fallbacks: fallback(cell, usedDefault)}
	default:
		return Literal{Text: Quote(cell)}
	}
}

// fallback reports cell as a fallback only when it held text that failed to parse.
func fallback(cell string, usedDefault bool) []string {
	if !usedDefault || common.IsBlank(cell) {
		return nil
	}

	return []string{cell}
}

func firstNonBlank(row grid.Row, columns []int) (string, bool) {
	for _, c := range columns {
		if cell := row.Cell(c); !common.IsBlank(cell) {
			return cell, true
		}
	}

	return "", false
}

// splitValues splits a cell on ',' and ';', trimming parts and dropping empty ones.
func splitValues(cell string) []string {
	parts := strings.FieldsFunc(cell, func(r rune) bool { return r == ',' || r == ';' })

	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
