package schema

import (
	"sheetgen/internal/common"
	"sheetgen/internal/grid"
	"sheetgen/internal/ident"
)

// PlaceholderMember is the single member of an enum with no observed values.
const PlaceholderMember = "None"

// EnumDefinition is an enum type inferred from data values.
type EnumDefinition struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members,flow"`
	// Placeholder is set when no values were observed and Members holds only
	// PlaceholderMember.
	Placeholder bool `yaml:"-"`
}

// EnumNaming maps an enum field's property name to the name of its enum type.
// Fields whose names map to the same type share one enum with merged members.
type EnumNaming func(propertyName string) string

// FieldEnumName is the default EnumNaming: the enum is named after its field.
func FieldEnumName(propertyName string) string {
	return propertyName
}

// InferEnum builds the enum of an `enum` typed group. Data rows are scanned in
// order and, within a row, the group's columns in order; each non-blank cell is
// sanitized with ident.MemberIdentifier and kept on first sight. An enum with no
// values gets PlaceholderMember so the emitted type is never empty.
func InferEnum(group ColumnGroup, dataRows []grid.Row) EnumDefinition {
	var members common.OrderedSet[string]

	for _, row := range dataRows {
		for _, c := range group.Columns {
			cell := row.Cell(c)
			if common.IsBlank(cell) {
				continue
			}

			members.Add(ident.MemberIdentifier(cell))
		}
	}

	return newEnum(group.PropertyName, members.Values())
}

// mergeEnums combines definitions sharing a name, keeping the first-seen
// order of names and of members. A placeholder survives only when no
// definition of that name observed a value.
func mergeEnums(defs []EnumDefinition) []EnumDefinition {
	sets := map[string]*common.OrderedSet[string]{}

	var order []string

	for _, d := range defs {
		set, ok := sets[d.Name]
		if !ok {
			set = &common.OrderedSet[string]{}
			sets[d.Name] = set
			order = append(order, d.Name)
		}

		if d.Placeholder {
			continue
		}

		for _, m := range d.Members {
			set.Add(m)
		}
	}

	out := make([]EnumDefinition, 0, len(order))
	for _, name := range order {
		out = append(out, newEnum(name, sets[name].Values()))
	}

	return out
}

func newEnum(name string, members []string) EnumDefinition {
	if len(members) == 0 {
		return EnumDefinition{Name: name, Members: []string{PlaceholderMember}, Placeholder: true}
	}

	return EnumDefinition{Name: name, Members: members}
}
