package tabeval

import (
	"errors"
	"fmt"
)

// Predefined sentinel errors.
var (
	// ErrEmptyInput marks a fit call over an empty label sequence.
	ErrEmptyInput = errors.New("empty input")
	// ErrNotFitted marks a transform call before any successful fit.
	ErrNotFitted = errors.New("not fitted")
)

// UnknownLabelError is returned when a label passed to transform was
// not present at fit time.
type UnknownLabelError struct {
	Label string
}

func (e UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown label %q", e.Label)
}

// CodeRangeError is returned when an integer code lies outside the
// fitted range [0,k).
type CodeRangeError struct {
	Code, K int
}

func (e CodeRangeError) Error() string {
	return fmt.Sprintf("code %d out of range [0,%d)", e.Code, e.K)
}

// UnclassifiedColumnError is returned when a table column appears in
// neither the numeric nor the categorical column set (or in both).
type UnclassifiedColumnError struct {
	Column string
}

func (e UnclassifiedColumnError) Error() string {
	return fmt.Sprintf("column %q not classified as numeric or categorical", e.Column)
}

// SchemaMismatchError is returned when a table does not match the
// schema recorded at fit time.
type SchemaMismatchError struct {
	Column string
	Reason string
}

func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("column %q does not match the fitted schema: %s", e.Column, e.Reason)
}

// UnseenLevelError is returned when a categorical column contains a
// level that was absent at fit time.
type UnseenLevelError struct {
	Column, Level string
}

func (e UnseenLevelError) Error() string {
	return fmt.Sprintf("column %q: unseen level %q", e.Column, e.Level)
}

// DegenerateColumnError is returned when a numeric column has zero
// standard deviation and standardization is requested.
type DegenerateColumnError struct {
	Column string
}

func (e DegenerateColumnError) Error() string {
	return fmt.Sprintf("column %q: zero standard deviation", e.Column)
}
