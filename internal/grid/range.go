package grid

import "fmt"

// Range is a 1-based inclusive cell range. An EndRow or EndColumn <= 0 means
// the last used row or column.
type Range struct {
	StartRow    int
	StartColumn int
	EndRow      int
	EndColumn   int
}

// FullRange covers the whole used area.
func FullRange() Range {
	return Range{StartRow: 1, StartColumn: 1}
}

// Crop returns the cells of rng as a new grid. Every row of the result has
// the width of the range; cells beyond the source read as blank.
func (g Grid) Crop(rng Range) (Grid, error) {
	if rng.StartRow < 1 {
		return nil, fmt.Errorf("start row must be >= 1, got %d", rng.StartRow)
	}

	if rng.StartColumn < 1 {
		return nil, fmt.Errorf("start column must be >= 1, got %d", rng.StartColumn)
	}

	endRow := rng.EndRow
	if endRow <= 0 {
		endRow = max(g.Rows(), rng.StartRow)
	}

	endCol := rng.EndColumn
	if endCol <= 0 {
		endCol = max(g.Width(), rng.StartColumn)
	}

	if endRow < rng.StartRow {
		return nil, fmt.Errorf("end row %d must be >= start row %d", endRow, rng.StartRow)
	}

	if endCol < rng.StartColumn {
		return nil, fmt.Errorf("end column %d must be >= start column %d", endCol, rng.StartColumn)
	}

	out := make(Grid, 0, endRow-rng.StartRow+1)

	for r := rng.StartRow; r <= endRow; r++ {
		src := g.Row(r - 1)

		row := make([]string, 0, endCol-rng.StartColumn+1)
		for c := rng.StartColumn; c <= endCol; c++ {
			row = append(row, src.Cell(c-1))
		}

		out = append(out, row)
	}

	return out, nil
}
