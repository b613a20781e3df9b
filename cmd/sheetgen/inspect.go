package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"sheetgen/internal/schema"
)

func newInspectCmd() *cobra.Command {
	var (
		source    sourceFlags
		typeName  string
		namespace string
		dump      bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the schema extracted from a table",
		Long: `inspect reads a table and prints the record schema it describes: fields,
their types and attributes, and the enums inferred from the data. Nothing is
written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if typeName == "" {
				return errors.New("--type is required")
			}

			g, err := source.read()
			if err != nil {
				return err
			}

			s, diags, err := schema.Extract(g, schema.ExtractOptions{Namespace: namespace, TypeName: typeName})
			if err != nil {
				return err
			}

			logDiagnostics(diags)

			if dump {
				_, err = fmt.Fprint(cmd.OutOrStdout(), spew.Sdump(s))
				return err
			}

			out, err := schema.MarshalYAML(s)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	source.register(cmd)

	f := cmd.Flags()
	f.StringVarP(&typeName, "type", "t", "", "Record class name")
	f.StringVarP(&namespace, "namespace", "n", "", "Namespace of the generated code")
	f.BoolVar(&dump, "dump", false, "Dump the Go value instead of YAML")

	return cmd
}
