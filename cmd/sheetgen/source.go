package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sheetgen/internal/grid"
)

// sourceFlags selects the input grid.
type sourceFlags struct {
	input      string
	sheet      string
	sheetIndex int
	rng        grid.Range
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.input, "input", "i", "", "Input .csv or Excel workbook")
	f.StringVar(&s.sheet, "sheet", "", "Worksheet name (default: first sheet)")
	f.IntVar(&s.sheetIndex, "sheet-index", 0, "1-based worksheet index, used when --sheet is empty")
	f.IntVar(&s.rng.StartRow, "start-row", 1, "1-based row of the header row")
	f.IntVar(&s.rng.StartColumn, "start-column", 1, "1-based first column")
	f.IntVar(&s.rng.EndRow, "end-row", 0, "1-based last row (default: last used row)")
	f.IntVar(&s.rng.EndColumn, "end-column", 0, "1-based last column (default: last used column)")
}

func (s *sourceFlags) read() (grid.Grid, error) {
	if s.input == "" {
		return nil, fmt.Errorf("--input is required")
	}

	return readGrid(s.input, grid.Sheet{Name: s.sheet, Index: s.sheetIndex}, s.rng)
}

func readGrid(path string, sheet grid.Sheet, rng grid.Range) (grid.Grid, error) {
	g, err := grid.ReadFile(path, sheet, rng)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	slog.Debug("grid loaded", "input", path, "rows", g.Rows(), "columns", g.Width())

	return g, nil
}
