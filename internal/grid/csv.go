package grid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadCSV reads a whole CSV document into a Grid.
// A UTF-8 or UTF-16 byte order mark is honoured and stripped; without one the
// input is taken as UTF-8. Rows may have differing field counts.
func ReadCSV(r io.Reader) (Grid, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var g Grid

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}

		g = append(g, rec)
	}

	return g, nil
}

// ReadCSVFile reads the CSV file at path.
func ReadCSVFile(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// WriteCSV writes g as UTF-8 CSV with a leading byte order mark so spreadsheet
// applications detect the encoding. Ragged rows are padded to the grid width.
func WriteCSV(w io.Writer, g Grid) error {
	enc := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())

	cw := csv.NewWriter(enc)
	width := g.Width()

	for r := range g {
		rec := make([]string, width)
		for c := range rec {
			rec[c] = g.Cell(r, c)
		}

		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row %d: %w", r, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return enc.Close()
}

// WriteCSVFile writes g to path, creating or truncating it.
func WriteCSVFile(path string, g Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv %s: %w", path, err)
	}

	if err := WriteCSV(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
