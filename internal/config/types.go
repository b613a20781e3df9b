package config

import (
	"sheetgen/internal/gen"
	"sheetgen/internal/grid"
)

// CurrentVersion is the only supported job file version.
const CurrentVersion = "1"

// File is the root of a job file.
type File struct {
	Version  string   `yaml:"version"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Tables   []Table  `yaml:"tables"`

	// BaseDir resolves relative input and output paths. Load sets it to the
	// directory of the job file.
	BaseDir string `yaml:"-"`
}

// Defaults apply to every table unless the table overrides them.
type Defaults struct {
	Namespace    string   `yaml:"namespace,omitempty"`
	Usings       []string `yaml:"usings,omitempty"`
	Attributes   []string `yaml:"attributes,omitempty"`
	OutDir       string   `yaml:"outdir,omitempty"`
	MasterMemory bool     `yaml:"masterMemory,omitempty"`
	Strict       bool     `yaml:"strict,omitempty"`
	// NewLine is "lf" or "crlf".
	NewLine string `yaml:"newline,omitempty"`
	Workers int    `yaml:"workers,omitempty"`
}

// Table describes one generated type.
type Table struct {
	// Type is the record class name.
	Type  string `yaml:"type"`
	Input string `yaml:"input"`
	// Sheet selects a worksheet by name; SheetIndex selects one by 1-based
	// position when Sheet is empty.
	Sheet      string `yaml:"sheet,omitempty"`
	SheetIndex int    `yaml:"sheetIndex,omitempty"`
	Range      Range  `yaml:"range,omitempty"`

	// Namespace overrides Defaults.Namespace when set.
	Namespace string `yaml:"namespace,omitempty"`
	// Usings and Attributes are appended to the defaults.
	Usings     []string `yaml:"usings,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
	// MasterMemory overrides Defaults.MasterMemory when set.
	MasterMemory *bool  `yaml:"masterMemory,omitempty"`
	Sealed       bool   `yaml:"sealed,omitempty"`
	Partial      bool   `yaml:"partial,omitempty"`
	OutDir       string `yaml:"outdir,omitempty"`

	Outputs          Outputs `yaml:"outputs,omitempty"`
	BinaryOutputPath string  `yaml:"binaryOutputPath,omitempty"`
}

// Range is a 1-based cell range; zero ends mean the last used row or column.
type Range struct {
	StartRow    int `yaml:"startRow,omitempty"`
	StartColumn int `yaml:"startColumn,omitempty"`
	EndRow      int `yaml:"endRow,omitempty"`
	EndColumn   int `yaml:"endColumn,omitempty"`
}

// Outputs names the file of each generated artifact. An artifact is only
// produced when its filename is set.
type Outputs struct {
	Class         string `yaml:"class,omitempty"`
	Enums         string `yaml:"enums,omitempty"`
	Data          string `yaml:"data,omitempty"`
	DataList      string `yaml:"dataList,omitempty"`
	BinaryBuilder string `yaml:"binaryBuilder,omitempty"`
}

// Filenames maps each requested artifact to its filename.
func (o Outputs) Filenames() map[gen.Artifact]string {
	out := map[gen.Artifact]string{}

	for a, name := range map[gen.Artifact]string{
		gen.ArtifactClass:         o.Class,
		gen.ArtifactEnums:         o.Enums,
		gen.ArtifactData:          o.Data,
		gen.ArtifactDataList:      o.DataList,
		gen.ArtifactBinaryBuilder: o.BinaryBuilder,
	} {
		if name != "" {
			out[a] = name
		}
	}

	return out
}

// GridSheet returns the worksheet selection of the table.
func (t *Table) GridSheet() grid.Sheet {
	return grid.Sheet{Name: t.Sheet, Index: t.SheetIndex}
}

// GridRange returns the cell range of the table.
func (t *Table) GridRange() grid.Range {
	return grid.Range{
		StartRow:    t.Range.StartRow,
		StartColumn: t.Range.StartColumn,
		EndRow:      t.Range.EndRow,
		EndColumn:   t.Range.EndColumn,
	}
}
