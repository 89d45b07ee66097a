package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrSchema reports a column set that does not match what was expected.
	ErrSchema = errors.New("schema error")
	// ErrShape reports mismatched lengths across columns, masks or tensors.
	ErrShape = errors.New("shape error")
	// ErrParse reports a malformed row or token during ingestion.
	ErrParse = errors.New("parse error")
	// ErrKey reports a label that cannot be found or an ambiguous label range.
	ErrKey = errors.New("key error")
	// ErrIndex reports an out-of-bounds position.
	ErrIndex = errors.New("index error")
)

// ParseError names the zero-based data row that could not be ingested.
type ParseError struct {
	Row int
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse error at row %d", e.Row)
	}
	return fmt.Sprintf("parse error at row %d: %v", e.Row, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func schemaErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSchema, fmt.Sprintf(format, args...))
}

func shapeErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrShape, fmt.Sprintf(format, args...))
}

func keyErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrKey, fmt.Sprintf(format, args...))
}

func indexErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrIndex, fmt.Sprintf(format, args...))
}
