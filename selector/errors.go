package selector

import "errors"

// Errors returned while loading a manifest. Selection itself never fails.
var (
	// ErrInvalidManifest is returned when a manifest cannot be decoded.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrEmptyTypeName is returned when a manifest type has no name.
	ErrEmptyTypeName = errors.New("type name is empty")

	// ErrEmptyMethodName is returned when a manifest method has no name.
	ErrEmptyMethodName = errors.New("method name is empty")

	// ErrDuplicateType is returned when a manifest declares the same type twice.
	ErrDuplicateType = errors.New("duplicate type")

	// ErrDuplicateMethod is returned when a type declares the same method twice.
	ErrDuplicateMethod = errors.New("duplicate method")

	// ErrDuplicateParameter is returned when a method declares the same parameter twice.
	ErrDuplicateParameter = errors.New("duplicate parameter")

	// ErrUnknownCallSite is returned when a manifest lookup finds no such type or method.
	ErrUnknownCallSite = errors.New("unknown call site")
)
