package xml2excel

import "fmt"

// ParseError means a source document could not be read or was structurally
// invalid. It aborts that file only.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError means the destination could not be created or written. It
// aborts that file only.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// SchemaMismatchError means a worksheet's shape could not be used, for
// example a missing dimension. Callers skip the offending sheet and keep
// going.
type SchemaMismatchError struct {
	Sheet  string
	Reason string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("worksheet %q: %s", e.Sheet, e.Reason)
}
