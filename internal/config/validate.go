package config

import (
	"fmt"
	"strings"

	"sheetgen/internal/diagnostic"
	"sheetgen/internal/grid"
	"sheetgen/internal/ident"
)

// Validate checks a job file for structural problems before any input is read.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeInvalidConfig, "job file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("unsupported version %q, expected %q", f.Version, CurrentVersion), "", "version")
	}

	if _, ok := newLines[f.Defaults.NewLine]; !ok {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("newline must be lf or crlf, got %q", f.Defaults.NewLine), "", "defaults.newline")
	}

	if len(f.Tables) == 0 {
		res.AddWarning(diagnostic.CodeInvalidConfig, "no tables defined", "", "tables")
	}

	seen := map[string]int{}

	for i := range f.Tables {
		validateTable(res, &f.Tables[i], i, seen)
	}

	return res
}

func validateTable(res *diagnostic.Diagnostics, t *Table, index int, seen map[string]int) {
	loc := fmt.Sprintf("tables[%d]", index)
	typeName := strings.TrimSpace(t.Type)

	switch {
	case typeName == "":
		res.AddError(diagnostic.CodeInvalidConfig, "type is required", "", loc+".type")
	case !ident.IsIdentifier(typeName):
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("type %q is not a valid identifier", typeName), typeName, loc+".type")
	}

	if typeName != "" {
		if prev, ok := seen[typeName]; ok {
			res.AddError(diagnostic.CodeInvalidConfig,
				fmt.Sprintf("duplicate type, first defined in tables[%d]", prev), typeName, loc+".type")
		} else {
			seen[typeName] = index
		}
	}

	switch {
	case strings.TrimSpace(t.Input) == "":
		res.AddError(diagnostic.CodeInvalidConfig, "input is required", typeName, loc+".input")
	case !grid.IsSupported(t.Input):
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("input %q is neither .csv nor an Excel workbook", t.Input), typeName, loc+".input")
	}

	if t.SheetIndex < 0 {
		res.AddError(diagnostic.CodeInvalidConfig, "sheetIndex must be >= 1", typeName, loc+".sheetIndex")
	}

	r := t.Range
	if r.StartRow < 1 || r.StartColumn < 1 {
		res.AddError(diagnostic.CodeInvalidConfig, "range start must be >= 1", typeName, loc+".range")
	}

	if (r.EndRow > 0 && r.EndRow < r.StartRow) || (r.EndColumn > 0 && r.EndColumn < r.StartColumn) {
		res.AddError(diagnostic.CodeInvalidConfig, "range end must not precede its start", typeName, loc+".range")
	}
}
