package schema

// FieldDefinition is one emitted property of the record.
type FieldDefinition struct {
	// Name is the property identifier.
	Name string `yaml:"name"`
	// Type is the resolved type name: the type hint's bare name, or the enum
	// type name for enum fields.
	Type string `yaml:"type"`
	// Kind classifies the field for value formatting.
	Kind Kind `yaml:"kind"`
	// Attributes are emitted one per line above the property.
	Attributes []string `yaml:"attributes,omitempty,flow"`
	// Columns are the 0-based grid columns the field reads values from.
	Columns []int `yaml:"columns,flow"`
}

// RecordSchema is the immutable result of extraction.
type RecordSchema struct {
	Namespace string            `yaml:"namespace,omitempty"`
	TypeName  string            `yaml:"type"`
	Fields    []FieldDefinition `yaml:"fields"`
	Enums     []EnumDefinition  `yaml:"enums,omitempty"`
}
