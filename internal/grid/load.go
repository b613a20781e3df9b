package grid

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates an input file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ReadFile reads rng from a CSV or xlsx file, chosen by extension. The sheet
// selection is ignored for CSV input.
func ReadFile(path string, sheet Sheet, rng Range) (Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		g, err := ReadCSVFile(path)
		if err != nil {
			return nil, err
		}

		return g.Crop(rng)
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return ReadXLSX(path, sheet, rng)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// IsSupported reports whether ReadFile can read path.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx", ".xlsm", ".xltx", ".xltm":
		return true
	default:
		return false
	}
}
