package proto

import (
	"errors"
	"fmt"
)

// Common errors returned by parsing.
var (
	// ErrRead indicates the source file could not be read.
	ErrRead = errors.New("proto: source not readable")
	// ErrSyntax indicates the source did not match the grammar.
	ErrSyntax = errors.New("proto: syntax error")
	// ErrNoRoot indicates the grammar matched but produced no tree.
	ErrNoRoot = errors.New("proto: parse produced no root")
)

// ReadError reports a failure to read a source file before any parsing
// took place.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrRead }

// SyntaxError reports where parsing stopped and what was expected.
// Line and Column are 1-based; Offset is a byte offset into the
// source. Position fields are zero when the underlying failure carried
// no location.
type SyntaxError struct {
	Path   string
	Line   int
	Column int
	Offset int
	Detail string
}

func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Detail)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Detail)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
