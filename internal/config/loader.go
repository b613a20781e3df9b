package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"sheetgen/internal/gen"
)

// Load loads and parses a YAML job file from the given path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	f.BaseDir = filepath.Dir(path)

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.Defaults.NewLine == "" {
		f.Defaults.NewLine = "lf"
	}

	for i := range f.Tables {
		t := &f.Tables[i]

		if t.Range.StartRow == 0 {
			t.Range.StartRow = 1
		}

		if t.Range.StartColumn == 0 {
			t.Range.StartColumn = 1
		}

		if t.Outputs == (Outputs{}) {
			t.Outputs = Outputs{
				Class: gen.ArtifactClass.DefaultFilename(t.Type),
				Data:  gen.ArtifactData.DefaultFilename(t.Type),
			}
		}
	}
}

// InputPath returns the table's input path resolved against the job file.
func (f *File) InputPath(t *Table) string {
	return f.resolve(t.Input)
}

// OutputDir returns the directory the table's files are written to.
func (f *File) OutputDir(t *Table) string {
	dir := t.OutDir
	if dir == "" {
		dir = f.Defaults.OutDir
	}

	return f.resolve(dir)
}

func (f *File) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || f.BaseDir == "" {
		return p
	}

	return filepath.Join(f.BaseDir, p)
}

// GeneratorConfig merges the table with the job defaults.
func (f *File) GeneratorConfig(t *Table) gen.GeneratorConfig {
	d := f.Defaults

	cfg := gen.DefaultGeneratorConfig()
	cfg.Namespace = d.Namespace
	cfg.TypeName = t.Type
	cfg.Usings = append(slices.Clone(d.Usings), t.Usings...)
	cfg.Attributes = append(slices.Clone(d.Attributes), t.Attributes...)
	cfg.MasterMemory = d.MasterMemory
	cfg.Sealed = t.Sealed
	cfg.Partial = t.Partial
	cfg.Strict = d.Strict
	cfg.BinaryOutputPath = t.BinaryOutputPath

	if t.Namespace != "" {
		cfg.Namespace = t.Namespace
	}

	if t.MasterMemory != nil {
		cfg.MasterMemory = *t.MasterMemory
	}

	if nl, ok := newLines[d.NewLine]; ok {
		cfg.NewLine = nl
	}

	if d.Workers > 0 {
		cfg.Workers = d.Workers
	}

	cfg.Filenames = t.Outputs.Filenames()
	cfg.Artifacts = nil

	for _, a := range gen.AllArtifacts {
		if _, ok := cfg.Filenames[a]; ok {
			cfg.Artifacts = append(cfg.Artifacts, a)
		}
	}

	return cfg
}

var newLines = map[string]string{
	"lf":   "\n",
	"crlf": "\r\n",
}
