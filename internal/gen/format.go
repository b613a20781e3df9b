package gen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"sheetgen/internal/diagnostic"
	"sheetgen/internal/emit"
	"sheetgen/internal/grid"
	"sheetgen/internal/literal"
	"sheetgen/internal/schema"
)

type fallback struct {
	field string
	raw   string
}

// FormatRows renders every field of every data row as a literal. At most
// workers rows are formatted at once; workers <= 0 means no limit. The result
// is in input order. Values that fell back to a zero value are reported as
// value_defaulted warnings.
func FormatRows(
	ctx context.Context, s *schema.RecordSchema, rows []grid.Row, workers int,
) ([]emit.Row, *diagnostic.Diagnostics, error) {
	out := make([]emit.Row, len(rows))
	fallbacks := make([][]fallback, len(rows))

	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for i, row := range rows {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			rendered := make(emit.Row, len(s.Fields))

			for fi, f := range s.Fields {
				lit := literal.Format(f, row)
				rendered[fi] = lit.Text

				for _, raw := range lit.Fallbacks {
					fallbacks[i] = append(fallbacks[i], fallback{field: f.Name, raw: raw})
				}
			}

			out[i] = rendered

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, nil, fmt.Errorf("formatting rows: %w", err)
	}

	diags := &diagnostic.Diagnostics{}

	for i, fbs := range fallbacks {
		for _, fb := range fbs {
			diags.AddWarning(diagnostic.CodeValueDefaulted,
				fmt.Sprintf("cannot parse %q, using zero value", fb.raw),
				s.TypeName, fmt.Sprintf("%s (row %d)", fb.field, grid.FirstDataRow+i+1))
		}
	}

	return out, diags, nil
}
