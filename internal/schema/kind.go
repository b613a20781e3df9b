package schema

import "strings"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a field's resolved type name.
type Kind int

const (
	KindInvalid Kind = iota // blank type name; the field is dropped
	KindCustom              // any type name not recognised below, passed through verbatim
	KindInt
	KindFloat
	KindString
	KindIntArray
	KindFloatArray
	KindStringArray
	KindEnum
)

// ParseKind classifies a bare type name. Matching is case-sensitive except for "enum".
func ParseKind(typeName string) Kind {
	switch typeName {
	case "":
		return KindInvalid
	case "int":
		return KindInt
	case "float":
		return KindFloat
	case "string":
		return KindString
	case "int[]":
		return KindIntArray
	case "float[]":
		return KindFloatArray
	case "string[]":
		return KindStringArray
	}

	if strings.EqualFold(typeName, "enum") {
		return KindEnum
	}

	return KindCustom
}

// IsArray reports whether values of this kind aggregate every column of the group.
func (k Kind) IsArray() bool {
	switch k {
	case KindIntArray, KindFloatArray, KindStringArray:
		return true
	default:
		return false
	}
}

// Elem returns the scalar kind of an array kind, or k itself.
func (k Kind) Elem() Kind {
	switch k {
	case KindIntArray:
		return KindInt
	case KindFloatArray:
		return KindFloat
	case KindStringArray:
		return KindString
	default:
		return k
	}
}

// MarshalYAML renders the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}
