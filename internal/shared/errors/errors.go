package errors

import "errors"

// Domain errors
var (
	// Entry errors
	ErrEntryNotFound        = errors.New("risk entry not found")
	ErrInvalidEntryID       = errors.New("invalid risk entry ID")
	ErrEmptyCryptocurrency  = errors.New("cryptocurrency name cannot be empty")
	ErrEmptyReporter        = errors.New("reporter cannot be empty")
	ErrInvalidRiskLevel     = errors.New("invalid risk level")
	ErrInvalidSentiment     = errors.New("invalid crowd sentiment")
	ErrVolatilityOutOfRange = errors.New("volatility index must be between 0 and 100")

	// Assessment errors
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrEmptyDocument     = errors.New("assessment document is empty")

	// Repository errors
	ErrRepositoryOperation   = errors.New("repository operation failed")
	ErrInvalidData           = errors.New("invalid data")
	ErrSerializationFailed   = errors.New("serialization failed")
	ErrDeserializationFailed = errors.New("deserialization failed")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
)
