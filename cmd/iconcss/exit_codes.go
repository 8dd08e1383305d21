package main

import (
	"errors"
	"os"

	iconcss "github.com/alnah/go-iconcss"
	"github.com/alnah/go-iconcss/internal/config"
)

// Exit codes for the iconcss CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All classes resolved
	ExitGeneral = 1 // Unresolved classes or unexpected error
	ExitUsage   = 2 // Invalid flags, config, or option values
	ExitIO      = 3 // Unreadable input or broken collection
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, iconcss.ErrCollectionRead) ||
		errors.Is(err, iconcss.ErrDatasetMalformed) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, ErrInvalidEnv) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, iconcss.ErrInvalidScale) ||
		errors.Is(err, iconcss.ErrInvalidMode) ||
		errors.Is(err, iconcss.ErrInvalidPrefix) ||
		errors.Is(err, iconcss.ErrInvalidCustomProperty) ||
		errors.Is(err, iconcss.ErrInvalidCollectionPath) {
		return ExitUsage
	}

	return ExitGeneral
}
