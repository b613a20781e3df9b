package emit

import "sheetgen/internal/schema"

// EnumSection renders one enum declaration.
func EnumSection(e schema.EnumDefinition) Lines {
	out := Lines{line(0, "public enum "+e.Name), line(0, "{")}

	for i, m := range e.Members {
		if i < len(e.Members)-1 {
			m += ","
		}

		out = append(out, line(1, m))
	}

	return append(out, line(0, "}"))
}

// EnumLines renders the enum artifact: directives and every enum inside the
// namespace, one blank line between enums.
func EnumLines(s *schema.RecordSchema, opts Options) Lines {
	var body Lines

	for i, e := range s.Enums {
		if i > 0 {
			body = append(body, blank())
		}

		body = concat(body, EnumSection(e))
	}

	return concat(Directives(opts.Usings), wrapNamespace(s.Namespace, body))
}

// EnumSource renders the enum artifact as text.
func EnumSource(s *schema.RecordSchema, opts Options) string {
	return Render(EnumLines(s, opts), opts.NewLine)
}
