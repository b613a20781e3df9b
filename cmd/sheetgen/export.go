package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"sheetgen/internal/grid"
)

func newExportCSVCmd() *cobra.Command {
	var (
		source sourceFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export-csv",
		Short: "Export a worksheet range to a UTF-8 CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				return errors.New("--out is required")
			}

			g, err := source.read()
			if err != nil {
				return err
			}

			if err := grid.WriteCSVFile(output, g); err != nil {
				return err
			}

			slog.Info("wrote file", "path", output, "rows", g.Rows())

			return nil
		},
	}

	source.register(cmd)
	cmd.Flags().StringVarP(&output, "out", "o", "", "Output .csv path")

	return cmd
}
