// Package proto parses the interface definition language used to
// describe message schemas. The grammar is deliberately lenient: it
// accepts any syntax revision, ignores options, and leaves semantic
// interpretation of the tree to callers.
package proto

import (
	"errors"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parse parses source into a concrete syntax tree. The name is used
// only for error positions. A grammar mismatch returns a *SyntaxError;
// a match that yields no tree returns ErrNoRoot.
func Parse(name, source string) (*File, error) {
	file, err := fileParser.ParseString(name, source)
	if err != nil {
		return nil, syntaxError(name, err)
	}
	if file == nil {
		return nil, ErrNoRoot
	}
	return file, nil
}

// ParseFile reads and parses the file at path. A read failure returns
// a *ReadError and means nothing was parsed.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return Parse(path, string(data))
}

func syntaxError(name string, err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return &SyntaxError{
			Path:   pos.Filename,
			Line:   pos.Line,
			Column: pos.Column,
			Offset: pos.Offset,
			Detail: perr.Message(),
		}
	}
	return &SyntaxError{Path: name, Detail: err.Error()}
}
