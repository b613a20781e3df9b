package emit

import "strings"

// Options configures rendering of all artifacts.
type Options struct {
	// Usings are extra using directives, with or without "using" and ';'.
	Usings []string
	// TypeAttributes are emitted above the class declaration, with or without brackets.
	TypeAttributes []string
	// Sealed adds the sealed modifier to class declarations.
	Sealed bool
	// Partial adds the partial modifier to the class declaration. The data
	// file and binary builder are always partial.
	Partial bool
	// SeparateEnums leaves enums out of the class source; they are expected in
	// the enum source instead.
	SeparateEnums bool
	// NewLine is the line terminator, "\n" when empty.
	NewLine string
	// BinaryOutputPath is the default output path baked into the binary
	// builder. Empty means Assets/Generated/<Type>.bytes.
	BinaryOutputPath string
}

// classDecl renders a class declaration line.
func classDecl(name string, sealed, partial bool) string {
	parts := []string{"public"}
	if sealed {
		parts = append(parts, "sealed")
	}

	if partial {
		parts = append(parts, "partial")
	}

	parts = append(parts, "class", name)

	return strings.Join(parts, " ")
}
