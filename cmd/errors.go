package cmd

import (
	"fmt"

	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
)

// EntryNotFoundError indicates a risk entry lookup failure.
type EntryNotFoundError struct {
	ID int64
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("entry %d not found", e.ID)
}

func (e *EntryNotFoundError) Unwrap() error {
	return sharedErrors.ErrEntryNotFound
}

// UnknownFormatError signals an unsupported --format value.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q (want text or json)", e.Format)
}

func (e *UnknownFormatError) Unwrap() error {
	return sharedErrors.ErrUnsupportedFormat
}
