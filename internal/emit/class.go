package emit

import (
	"strings"

	"sheetgen/internal/schema"
)

// FieldSection renders field declarations, one blank line between fields.
func FieldSection(fields []schema.FieldDefinition) Lines {
	var out Lines

	for i, f := range fields {
		if i > 0 {
			out = append(out, blank())
		}

		for _, attr := range f.Attributes {
			if strings.TrimSpace(attr) == "" {
				continue
			}

			out = append(out, line(0, attributeLine(attr)))
		}

		out = append(out, line(0, "public "+f.Type+" "+f.Name+" { get; set; }"))
	}

	return out
}

// ClassSection renders the type attributes and the class declaration with its fields.
func ClassSection(s *schema.RecordSchema, opts Options) Lines {
	var out Lines

	for _, attr := range opts.TypeAttributes {
		if strings.TrimSpace(attr) == "" {
			continue
		}

		out = append(out, line(0, attributeLine(attr)))
	}

	return concat(
		out,
		Lines{line(0, classDecl(s.TypeName, opts.Sealed, opts.Partial)), line(0, "{")},
		FieldSection(s.Fields).Indent(1),
		Lines{line(0, "}")},
	)
}

// ClassLines renders the whole class artifact: directives, then the namespace
// wrapping the class and, unless opts.SeparateEnums, every enum.
func ClassLines(s *schema.RecordSchema, opts Options) Lines {
	body := ClassSection(s, opts)

	if !opts.SeparateEnums {
		for _, e := range s.Enums {
			body = concat(body, Lines{blank()}, EnumSection(e))
		}
	}

	return concat(Directives(opts.Usings), wrapNamespace(s.Namespace, body))
}

// ClassSource renders the class artifact as text.
func ClassSource(s *schema.RecordSchema, opts Options) string {
	return Render(ClassLines(s, opts), opts.NewLine)
}
