// Package main provides the CLI entrypoint for sheetgen.
//
// sheetgen turns a spreadsheet table (header row, type-hint row, data rows)
// into C# sources:
//   - a record class with attributed properties
//   - enums inferred from the data
//   - a static data list
//   - a MasterMemory binary builder
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
