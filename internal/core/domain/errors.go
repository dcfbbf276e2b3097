package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnclassified indicates a ficha code matches no catalog pattern.
	ErrUnclassified = errors.New("ficha code matches no rubro")

	// ErrIncompleteInput indicates a ficha is missing its article or reference file.
	ErrIncompleteInput = errors.New("incomplete ficha input")

	// ErrWriterUnavailable indicates no FichaWriter is configured for publishing.
	ErrWriterUnavailable = errors.New("ficha writer unavailable")
)
