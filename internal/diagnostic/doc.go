// Package diagnostic provides structured warnings, errors, and notes
// collected while a grid is turned into source.
//
// Generation never stops for recoverable input problems. Instead the
// condition is recorded here so a stricter caller can surface it:
//   - Dropped fields (blank type hint)
//   - Malformed bracket attributes
//   - Enums without observed values
//   - Numeric cells that fell back to zero
//   - Ragged rows padded with blank cells
package diagnostic
