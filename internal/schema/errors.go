package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewRows indicates the grid lacks the header or type-hint row.
	ErrTooFewRows = errors.New("grid must contain at least a header row and a type row")
	// ErrNoColumns indicates the grid has no columns.
	ErrNoColumns = errors.New("grid has no columns")
	// ErrMissingTypeName indicates the declared type name is blank.
	ErrMissingTypeName = errors.New("type name is required")
)

// ExtractError reports which extraction precondition was violated.
type ExtractError struct {
	TypeName string
	Err      error
}

func (e *ExtractError) Error() string {
	if e.TypeName == "" {
		return fmt.Sprintf("extracting schema: %v", e.Err)
	}

	return fmt.Sprintf("extracting schema for %s: %v", e.TypeName, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
