package codegen

import "errors"

// Common errors returned by the generator.
var (
	// ErrNilRequest indicates Generate was called with a nil request.
	ErrNilRequest = errors.New("codegen: nil request")
)
