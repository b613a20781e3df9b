package emit

import (
	"slices"

	"sheetgen/internal/schema"
)

// CollectionsUsing is required by the List<T> initializer.
const CollectionsUsing = "System.Collections.Generic"

// Row holds the rendered literals of one data row, aligned with the schema's fields.
type Row []string

// DataSection renders the List<T> initializer with one object initializer
// per row, in row order.
func DataSection(s *schema.RecordSchema, rows []Row) Lines {
	t := s.TypeName

	out := Lines{
		line(0, "public readonly static List<"+t+"> Data = new List<"+t+">()"),
		line(0, "{"),
	}

	for ri, row := range rows {
		out = append(out, line(1, "new "+t), line(1, "{"))

		for fi, f := range s.Fields {
			value := ""
			if fi < len(row) {
				value = row[fi]
			}

			text := f.Name + " = " + value
			if fi < len(s.Fields)-1 {
				text += ","
			}

			out = append(out, line(2, text))
		}

		closing := "}"
		if ri < len(rows)-1 {
			closing += ","
		}

		out = append(out, line(1, closing))
	}

	return append(out, line(0, "};"))
}

// DataList renders the bare List<T> initializer snippet.
func DataList(s *schema.RecordSchema, rows []Row, opts Options) string {
	return Render(DataSection(s, rows), opts.NewLine)
}

// DataFileLines renders a complete file holding the initializer in a partial
// class, so it can sit next to the class artifact.
func DataFileLines(s *schema.RecordSchema, rows []Row, opts Options) Lines {
	usings := append(slices.Clone(opts.Usings), CollectionsUsing)

	body := concat(
		Lines{line(0, classDecl(s.TypeName, opts.Sealed, true)), line(0, "{")},
		DataSection(s, rows).Indent(1),
		Lines{line(0, "}")},
	)

	return concat(Directives(usings), wrapNamespace(s.Namespace, body))
}

// DataFile renders the data file artifact as text.
func DataFile(s *schema.RecordSchema, rows []Row, opts Options) string {
	return Render(DataFileLines(s, rows, opts), opts.NewLine)
}
