package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sheetgen/internal/diagnostic"
	"sheetgen/internal/logging"
)

const (
	envLogLevel  = "SHEETGEN_LOG_LEVEL"
	envLogFormat = "SHEETGEN_LOG_FORMAT"
	envConfig    = "SHEETGEN_CONFIG"
)

func newRootCmd() *cobra.Command {
	var logLevel, logFormat string

	rootCmd := &cobra.Command{
		Use:          "sheetgen",
		Short:        "Generate C# classes, enums and data lists from spreadsheet tables",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(cmd.ErrOrStderr(), logLevel, logFormat)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr(envLogLevel, "info"),
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", envOr(envLogFormat, "text"),
		"Log format: text, json")

	rootCmd.AddCommand(newGenerateCmd(), newInspectCmd(), newExportCSVCmd())

	return rootCmd
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}

// logDiagnostics logs every diagnostic: errors and warnings at their own
// level, notes at debug level.
func logDiagnostics(diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	for _, d := range diags.All() {
		level := slog.LevelDebug

		switch d.Severity {
		case diagnostic.DiagnosticError:
			level = slog.LevelError
		case diagnostic.DiagnosticWarning:
			level = slog.LevelWarn
		}

		slog.Log(context.Background(), level, d.Message,
			"code", d.Code, "table", d.Table, "location", d.Location)
	}
}
