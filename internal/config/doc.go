// Package config loads YAML job files describing which tables to generate.
//
// A job file lists tables, each naming its input workbook or CSV file, the
// cell range holding the header, type-hint and data rows, and the C# files
// to produce. Shared settings live under defaults.
//
//	version: "1"
//	defaults:
//	  namespace: Game
//	  usings: [System]
//	  outdir: Generated
//	  masterMemory: true
//	tables:
//	  - type: EquipmentData
//	    input: Sample.xlsx
//	    sheet: Equipment
//	    range: {startRow: 1, startColumn: 1}
//	    outputs: {class: EquipmentData.cs, data: EquipmentData_DataOnly.cs}
package config
