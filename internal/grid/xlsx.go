package grid

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("worksheet not found")

// Sheet selects a worksheet by name or by 1-based index. Name wins when set.
type Sheet struct {
	Name  string
	Index int
}

// ReadXLSX opens the workbook at path and reads rng from the selected sheet.
func ReadXLSX(path string, sheet Sheet, rng Range) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	return ReadWorkbook(f, sheet, rng)
}

// ReadWorkbook reads rng from the selected sheet of an open workbook. Cells are
// returned as their formatted text, the same text a user sees in the sheet.
func ReadWorkbook(f *excelize.File, sheet Sheet, rng Range) (Grid, error) {
	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}

	g, err := Grid(rows).Crop(rng)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}

	return g, nil
}

func resolveSheet(f *excelize.File, sheet Sheet) (string, error) {
	if sheet.Name != "" {
		idx, err := f.GetSheetIndex(sheet.Name)
		if err != nil || idx < 0 {
			return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheet.Name)
		}

		return sheet.Name, nil
	}

	list := f.GetSheetList()

	index := sheet.Index
	if index == 0 {
		index = 1
	}

	if index < 1 || index > len(list) {
		return "", fmt.Errorf("%w: index %d (workbook has %d sheets)", ErrSheetNotFound, index, len(list))
	}

	return list[index-1], nil
}
