package services

import "errors"

var (
	// ErrValidation marks a malformed payload; rejected before any store
	// access.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedFilingStatus replaces the silent tax_owed=0 the old
	// behavior produced for anything but "single".
	ErrUnsupportedFilingStatus = errors.New("unsupported filing status")
)
