// Package gen runs the whole pipeline for one table: it extracts the record
// schema from a grid, formats every data row and renders the requested C#
// artifacts.
//
// Output is deterministic. Rows may be formatted concurrently but are always
// emitted in input order, so regenerating from an unchanged grid yields
// byte-identical files.
package gen
