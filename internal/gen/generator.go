package gen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"strings"

	"sheetgen/internal/common"
	"sheetgen/internal/diagnostic"
	"sheetgen/internal/emit"
	"sheetgen/internal/grid"
	"sheetgen/internal/schema"
)

// ErrStrict is returned by Generate in strict mode when warnings were recorded.
var ErrStrict = errors.New("warnings reported in strict mode")

// GeneratorConfig holds configuration for one table.
type GeneratorConfig struct {
	// Namespace wraps the generated declarations. Empty means none.
	Namespace string
	// TypeName is the record class name. Required.
	TypeName string
	// Usings are extra using directives.
	Usings []string
	// Attributes are type-level attributes emitted above the class.
	Attributes []string
	// MasterMemory adds the MemoryTable attribute and its usings and makes
	// the class sealed partial.
	MasterMemory bool
	// Sealed adds the sealed modifier to the class.
	Sealed bool
	// Partial adds the partial modifier to the class.
	Partial bool
	// NewLine is the line terminator of generated files.
	NewLine string
	// Workers limits concurrent row formatting. <= 0 means no limit.
	Workers int
	// Strict makes Generate fail when any warning was recorded.
	Strict bool
	// Artifacts selects the generated files, in AllArtifacts order.
	Artifacts []Artifact
	// Filenames overrides Artifact.DefaultFilename per artifact.
	Filenames map[Artifact]string
	// BinaryOutputPath is the default .bytes path of the binary builder.
	BinaryOutputPath string
	// EnumNaming maps enum fields to enum type names. Nil names each enum after its field.
	EnumNaming schema.EnumNaming
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		NewLine:   "\n",
		Workers:   runtime.GOMAXPROCS(0),
		Artifacts: []Artifact{ArtifactClass, ArtifactData},
	}
}

// Generator renders C# sources from grids.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated C# source file.
type GeneratedFile struct {
	// Artifact is the kind of file.
	Artifact Artifact
	// Filename is the name of the file (e.g., "ItemData.cs").
	Filename string
	// Content is the rendered source.
	Content []byte
}

// Result is the outcome of one Generate call.
type Result struct {
	Schema      *schema.RecordSchema
	Rows        []emit.Row
	Files       []GeneratedFile
	Diagnostics *diagnostic.Diagnostics
}

// Generate extracts the schema of g, formats its data rows and renders the
// configured artifacts.
//
// Fatal grid problems are returned as errors. Everything else is recorded in
// Result.Diagnostics. In strict mode recorded warnings fail the call with
// ErrStrict; the returned Result then carries the schema and diagnostics but
// no files.
func (g *Generator) Generate(ctx context.Context, in grid.Grid) (*Result, error) {
	s, diags, err := schema.Extract(in, schema.ExtractOptions{
		Namespace:  g.config.Namespace,
		TypeName:   g.config.TypeName,
		EnumNaming: g.config.EnumNaming,
	})
	if err != nil {
		return nil, err
	}

	rows, rowDiags, err := FormatRows(ctx, s, in.DataRows(), g.config.Workers)
	if err != nil {
		return nil, err
	}

	diags.Merge(*rowDiags)

	res := &Result{Schema: s, Rows: rows, Diagnostics: diags}

	if g.config.Strict {
		if werr := diags.WarningsError(); werr != nil {
			return res, fmt.Errorf("%w: %w", ErrStrict, werr)
		}
	}

	opts := g.options(s)

	for _, a := range AllArtifacts {
		if !slices.Contains(g.config.Artifacts, a) {
			continue
		}

		if a == ArtifactEnums && common.IsEmpty(s.Enums) {
			slog.Debug("no enums inferred, skipping artifact", "type", s.TypeName, "artifact", a)
			continue
		}

		content, err := render(a, s, rows, opts)
		if err != nil {
			return nil, fmt.Errorf("generating %s for %s: %w", a, s.TypeName, err)
		}

		file := GeneratedFile{Artifact: a, Filename: g.filename(a, s.TypeName), Content: []byte(content)}
		res.Files = append(res.Files, file)

		slog.Debug("artifact generated",
			"type", s.TypeName, "artifact", a, "file", file.Filename, "bytes", len(file.Content))
	}

	return res, nil
}

func render(a Artifact, s *schema.RecordSchema, rows []emit.Row, opts emit.Options) (string, error) {
	switch a {
	case ArtifactClass:
		return emit.ClassSource(s, opts), nil
	case ArtifactEnums:
		return emit.EnumSource(s, opts), nil
	case ArtifactData:
		return emit.DataFile(s, rows, opts), nil
	case ArtifactDataList:
		return emit.DataList(s, rows, opts), nil
	case ArtifactBinaryBuilder:
		return emit.BinaryBuilder(s, opts)
	default:
		return "", fmt.Errorf("unknown artifact %q", a)
	}
}

func (g *Generator) filename(a Artifact, typeName string) string {
	if name := strings.TrimSpace(g.config.Filenames[a]); name != "" {
		return name
	}

	return a.DefaultFilename(typeName)
}

// options maps the configuration onto emit options, applying the MasterMemory preset.
func (g *Generator) options(s *schema.RecordSchema) emit.Options {
	opts := emit.Options{
		Usings:           slices.Clone(g.config.Usings),
		TypeAttributes:   slices.Clone(g.config.Attributes),
		Sealed:           g.config.Sealed,
		Partial:          g.config.Partial,
		SeparateEnums:    slices.Contains(g.config.Artifacts, ArtifactEnums) && !common.IsEmpty(s.Enums),
		NewLine:          g.config.NewLine,
		BinaryOutputPath: g.config.BinaryOutputPath,
	}

	if g.config.MasterMemory {
		opts.Usings = append(opts.Usings, "MasterMemory", "MessagePack")
		opts.TypeAttributes = append(
			[]string{fmt.Sprintf("MemoryTable(%q), MessagePackObject(true)", MemoryTableName(s.TypeName))},
			opts.TypeAttributes...)
		opts.Sealed = true
		opts.Partial = true
	}

	return opts
}

// MemoryTableName is the MasterMemory table name of a type: its name without
// a trailing "Data", matched case-insensitively.
func MemoryTableName(typeName string) string {
	const suffix = "Data"

	if len(typeName) > len(suffix) && strings.EqualFold(typeName[len(typeName)-len(suffix):], suffix) {
		return typeName[:len(typeName)-len(suffix)]
	}

	return typeName
}
