package models

import "errors"

// Error taxonomy shared by the codec, editor and generation bridge. Callers
// match with errors.Is; concrete errors wrap these with context.
var (
	// ErrInvalidRootShape reports an imported or generated document whose
	// top-level value is not an array.
	ErrInvalidRootShape = errors.New("root value must be an array")

	// ErrInvalidJSON reports import text that does not parse as JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrTypeMismatch reports a scalar assignment that disagrees with the
	// node's kind.
	ErrTypeMismatch = errors.New("value does not match node kind")

	// ErrIndexOutOfRange reports a structural operation with a bad index.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsupportedOperation reports a child operation on a scalar node.
	ErrUnsupportedOperation = errors.New("operation not supported for this kind")

	// ErrExternalService reports a transport or parse failure from the
	// generation service.
	ErrExternalService = errors.New("external service failure")

	// ErrConfiguration reports missing or invalid configuration, such as an
	// absent API credential.
	ErrConfiguration = errors.New("configuration error")
)
