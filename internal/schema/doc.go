// Package schema extracts a record schema from a raw string grid.
//
// Extraction runs once per generation call and produces an immutable
// RecordSchema: fields in header order, each backed by a column group, plus the
// enums inferred from the data rows of every `enum` typed field.
//
// # Type hints
//
// The second grid row carries one type hint per field:
//
//	('[' attribute ']')* typeName
//
// e.g. "[PrimaryKey]int", "[Key(0)][Required]string", "enum". Known type names
// are int, float, string, int[], float[], string[] (case-sensitive) and enum
// (case-insensitive). Anything else is kept verbatim as a custom type. An
// unterminated '[' ends attribute parsing and the rest becomes the type name.
//
// # Column groups
//
// A non-blank header starts a field; the blank-header columns right after it
// belong to the same field. Array fields use this to spread values over
// several columns:
//
//	Params   |        |      | Name
//	float[]  |        |      | string
//	1.5      | 2      | 3;4  | Sword
package schema
