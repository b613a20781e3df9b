package emit

import "strings"

const indentUnit = "    "

// Line is one output line at a nesting depth. A Line with empty Text renders
// as an empty line regardless of depth.
type Line struct {
	Depth int
	Text  string
}

// Lines is an ordered sequence of output lines.
type Lines []Line

// line is shorthand for a Line at depth d.
func line(d int, text string) Line {
	return Line{Depth: d, Text: text}
}

// blank is an empty line.
func blank() Line {
	return Line{}
}

// Indent returns a copy of l nested n levels deeper.
func (l Lines) Indent(n int) Lines {
	out := make(Lines, len(l))
	for i, ln := range l {
		out[i] = Line{Depth: ln.Depth + n, Text: ln.Text}
	}

	return out
}

// concat joins sections into a new Lines value.
func concat(sections ...Lines) Lines {
	n := 0
	for _, s := range sections {
		n += len(s)
	}

	out := make(Lines, 0, n)
	for _, s := range sections {
		out = append(out, s...)
	}

	return out
}

// Render joins lines with newline, indenting each by its depth. The result
// ends with a newline unless lines is empty.
func Render(lines Lines, newline string) string {
	if newline == "" {
		newline = "\n"
	}

	var sb strings.Builder
	for _, ln := range lines {
		if ln.Text != "" {
			sb.WriteString(strings.Repeat(indentUnit, max(ln.Depth, 0)))
			sb.WriteString(ln.Text)
		}

		sb.WriteString(newline)
	}

	return sb.String()
}

// textLines splits a block of text into depth-0 lines, dropping one trailing
// newline. Whitespace-only lines become empty lines.
func textLines(text string) Lines {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	parts := strings.Split(text, "\n")
	out := make(Lines, 0, len(parts))

	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			p = ""
		}

		out = append(out, line(0, p))
	}

	return out
}
