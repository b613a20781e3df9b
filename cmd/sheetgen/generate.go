package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sheetgen/internal/config"
	"sheetgen/internal/gen"
	"sheetgen/internal/grid"
)

type generateOptions struct {
	source     sourceFlags
	configPath string
	outDir     string
	artifacts  string
	typeName   string
	namespace  string
	usings     []string
	attributes []string
	crlf       bool
	cfg        gen.GeneratorConfig
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{cfg: gen.DefaultGeneratorConfig()}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate C# sources for one table, or for every table of a job file",
		Example: `  sheetgen generate -i Sample.xlsx --sheet Equipment -t EquipmentData --master-memory -o Generated
  sheetgen generate --config sheetgen.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.configPath != "" {
				return runJob(cmd, opts)
			}

			return runSingle(cmd, opts)
		},
	}

	opts.source.register(cmd)

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", envOr(envConfig, ""), "YAML job file; table flags are ignored")
	f.StringVarP(&opts.outDir, "out", "o", ".", "Output directory")
	f.StringVar(&opts.artifacts, "artifacts", "class,data", "Comma separated: class, enums, data, dataList, binaryBuilder")
	f.StringVarP(&opts.typeName, "type", "t", "", "Record class name")
	f.StringVarP(&opts.namespace, "namespace", "n", "", "Namespace of the generated code")
	f.StringSliceVarP(&opts.usings, "using", "u", nil, "Extra using directive (repeatable)")
	f.StringArrayVar(&opts.attributes, "attribute", nil, "Type-level attribute (repeatable)")
	f.BoolVar(&opts.cfg.MasterMemory, "master-memory", false, "Add MasterMemory table attribute and usings")
	f.BoolVar(&opts.cfg.Sealed, "sealed", false, "Declare the class sealed")
	f.BoolVar(&opts.cfg.Partial, "partial", false, "Declare the class partial")
	f.BoolVar(&opts.crlf, "crlf", false, "Use CRLF line endings")
	f.IntVar(&opts.cfg.Workers, "workers", opts.cfg.Workers, "Rows formatted concurrently")
	f.BoolVar(&opts.cfg.Strict, "strict", false, "Fail when any value or attribute had to be recovered")
	f.StringVar(&opts.cfg.BinaryOutputPath, "binary-output", "", "Default .bytes path baked into the binary builder")

	return cmd
}

func runSingle(cmd *cobra.Command, opts *generateOptions) error {
	if opts.typeName == "" {
		return errors.New("--type is required without --config")
	}

	artifacts, err := gen.ParseArtifacts(opts.artifacts)
	if err != nil {
		return err
	}

	cfg := opts.cfg
	cfg.TypeName = opts.typeName
	cfg.Namespace = opts.namespace
	cfg.Usings = opts.usings
	cfg.Attributes = opts.attributes
	cfg.Artifacts = artifacts

	if opts.crlf {
		cfg.NewLine = "\r\n"
	}

	g, err := opts.source.read()
	if err != nil {
		return err
	}

	return generateTable(cmd, cfg, g, opts.outDir)
}

func runJob(cmd *cobra.Command, opts *generateOptions) error {
	job, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	diags := config.Validate(job)
	logDiagnostics(diags)

	if diags.HasErrors() {
		return fmt.Errorf("invalid job file %s: %w", opts.configPath, diags.Error())
	}

	for i := range job.Tables {
		t := &job.Tables[i]

		g, err := readGrid(job.InputPath(t), t.GridSheet(), t.GridRange())
		if err != nil {
			return fmt.Errorf("table %s: %w", t.Type, err)
		}

		if err := generateTable(cmd, job.GeneratorConfig(t), g, job.OutputDir(t)); err != nil {
			return fmt.Errorf("table %s: %w", t.Type, err)
		}
	}

	return nil
}

func generateTable(cmd *cobra.Command, cfg gen.GeneratorConfig, g grid.Grid, outDir string) error {
	res, err := gen.NewGenerator(cfg).Generate(cmd.Context(), g)
	if res != nil {
		logDiagnostics(res.Diagnostics)
	}

	if err != nil {
		return err
	}

	paths, err := gen.WriteFiles(res.Files, outDir)
	if err != nil {
		return err
	}

	for _, p := range paths {
		slog.Info("wrote file", "type", cfg.TypeName, "path", p)
	}

	return nil
}
