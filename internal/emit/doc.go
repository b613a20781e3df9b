// Package emit renders a record schema and its formatted rows as C# source.
//
// Every artifact is assembled from Lines, an immutable sequence of
// (depth, text) pairs, and turned into text once by Render. Each section
// (directives, class, enum, data list) is built independently, so the
// indentation and blank-line rules of one section never depend on how another
// was produced:
//
//   - using directives are deduplicated, sorted ordinally and followed by one
//     blank line
//   - a namespace, when present, indents its body by one level
//   - fields are separated by exactly one blank line, with attribute lines
//     directly above each field
//   - every enum is preceded by one blank line, members carry a trailing comma
//     except the last
//   - indentation is four spaces per level
package emit
