package schema

import (
	"fmt"
	"strings"

	"sheetgen/internal/diagnostic"
	"sheetgen/internal/grid"
)

// ExtractOptions configures Extract.
type ExtractOptions struct {
	// Namespace wraps the generated declarations when not blank.
	Namespace string
	// TypeName is the name of the record type. Required.
	TypeName string
	// EnumNaming maps enum fields to enum type names. Nil means FieldEnumName.
	EnumNaming EnumNaming
}

// Extract builds the record schema of g.
//
// A grid with fewer than two rows or no columns, or a blank type name, fails
// with an *ExtractError. Every other input problem is recovered and recorded in
// the returned diagnostics: fields with a blank type are dropped, unterminated
// attribute brackets end attribute parsing, enums without values get a
// placeholder member and short rows read as blank.
func Extract(g grid.Grid, opts ExtractOptions) (*RecordSchema, *diagnostic.Diagnostics, error) {
	typeName := strings.TrimSpace(opts.TypeName)

	switch {
	case g.Rows() < 2:
		return nil, nil, &ExtractError{TypeName: typeName, Err: ErrTooFewRows}
	case g.Width() == 0:
		return nil, nil, &ExtractError{TypeName: typeName, Err: ErrNoColumns}
	case typeName == "":
		return nil, nil, &ExtractError{Err: ErrMissingTypeName}
	}

	naming := opts.EnumNaming
	if naming == nil {
		naming = FieldEnumName
	}

	diags := &diagnostic.Diagnostics{}
	dataRows := g.DataRows()

	s := &RecordSchema{
		Namespace: strings.TrimSpace(opts.Namespace),
		TypeName:  typeName,
	}

	var inferred []EnumDefinition

	for _, grp := range Group(g.Headers(), g.TypeHints()) {
		loc := location(grp)

		if grp.MalformedAttribute {
			diags.AddWarning(diagnostic.CodeMalformedAttribute,
				fmt.Sprintf("unterminated '[' in type hint %q", grp.TypeToken), typeName, loc)
		}

		if grp.Kind == KindInvalid {
			diags.AddInfo(diagnostic.CodeFieldDropped, "blank type hint, field not emitted", typeName, loc)
			continue
		}

		field := FieldDefinition{
			Name:       grp.PropertyName,
			Type:       grp.TypeName,
			Kind:       grp.Kind,
			Attributes: grp.Attributes,
			Columns:    grp.Columns,
		}

		if grp.IsEnum {
			def := InferEnum(grp, dataRows)
			def.Name = naming(grp.PropertyName)
			field.Type = def.Name
			inferred = append(inferred, def)
		}

		s.Fields = append(s.Fields, field)
	}

	// Fields mapped to the same enum name share one enum.
	s.Enums = mergeEnums(inferred)

	for _, e := range s.Enums {
		if e.Placeholder {
			diags.AddWarning(diagnostic.CodeEmptyEnum,
				fmt.Sprintf("no values observed, using placeholder member %s", PlaceholderMember), typeName, e.Name)
		}
	}

	for _, r := range g.Ragged() {
		diags.AddInfo(diagnostic.CodeRaggedRow, "row shorter than header, missing cells read as blank",
			typeName, fmt.Sprintf("row %d", r+1))
	}

	return s, diags, nil
}

func location(grp ColumnGroup) string {
	return fmt.Sprintf("%s (column %d)", grp.PropertyName, grp.Start()+1)
}
