// Package grid holds the raw string table a schema is extracted from and the
// readers that produce it from CSV and xlsx files.
//
// Row 0 holds headers, row 1 holds type hints and every following row is data.
// Rows may be ragged; missing trailing cells read as blank.
package grid

// Grid is a rectangular-ish sequence of rows of cell text.
type Grid [][]string

// Row is one grid row.
type Row []string

const (
	// HeaderRow is the index of the header row.
	HeaderRow = 0
	// TypeHintRow is the index of the type-hint row.
	TypeHintRow = 1
	// FirstDataRow is the index of the first data row.
	FirstDataRow = 2
)

// Cell returns the cell at column c, or "" when the row is too short.
func (r Row) Cell(c int) string {
	if c < 0 || c >= len(r) {
		return ""
	}

	return r[c]
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		w = max(w, len(row))
	}

	return w
}

// Row returns row r, or nil when out of range.
func (g Grid) Row(r int) Row {
	if r < 0 || r >= len(g) {
		return nil
	}

	return Row(g[r])
}

// Cell returns the cell at (r, c), or "" when out of range.
func (g Grid) Cell(r, c int) string {
	return g.Row(r).Cell(c)
}

// Headers returns the header row padded to Width.
func (g Grid) Headers() []string {
	return g.padded(HeaderRow)
}

// TypeHints returns the type-hint row padded to Width.
func (g Grid) TypeHints() []string {
	return g.padded(TypeHintRow)
}

// DataRows returns all rows after the type-hint row.
func (g Grid) DataRows() []Row {
	if len(g) <= FirstDataRow {
		return nil
	}

	rows := make([]Row, 0, len(g)-FirstDataRow)
	for _, r := range g[FirstDataRow:] {
		rows = append(rows, Row(r))
	}

	return rows
}

// Ragged returns the indices of rows shorter than Width.
func (g Grid) Ragged() []int {
	w := g.Width()

	var out []int
	for i, row := range g {
		if len(row) < w {
			out = append(out, i)
		}
	}

	return out
}

func (g Grid) padded(r int) []string {
	w := g.Width()
	row := g.Row(r)

	out := make([]string, w)
	for c := range out {
		out[c] = row.Cell(c)
	}

	return out
}
