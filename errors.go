package iconcss

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNoMatch is satisfied by every "this reference does not apply" outcome.
	// Hosts should treat it as a rule miss and try other rules.
	ErrNoMatch = errors.New("no matching icon")

	// No-match reasons. Each also satisfies errors.Is(err, ErrNoMatch).
	ErrInvalidReference   = errors.New("invalid icon reference")
	ErrCollectionNotFound = errors.New("icon collection not found")
	ErrIconNotFound       = errors.New("icon not found")

	// Fatal collection errors: the collection exists but cannot be used.
	ErrDatasetMalformed = errors.New("icon collection malformed")
	ErrCollectionRead   = errors.New("failed to read icon collection")

	// Configuration errors.
	ErrInvalidScale          = errors.New("invalid scale")
	ErrInvalidMode           = errors.New("invalid mode")
	ErrInvalidPrefix         = errors.New("invalid prefix")
	ErrInvalidCustomProperty = errors.New("invalid custom property")
	ErrInvalidCollectionPath = errors.New("invalid collection path")
)

// noMatchError reports why a reference did not resolve.
// It matches ErrNoMatch and unwraps to the specific reason.
type noMatchError struct {
	reason  error
	subject string
}

func newNoMatch(reason error, subject string) error {
	return &noMatchError{reason: reason, subject: subject}
}

func (e *noMatchError) Error() string {
	return e.reason.Error() + ": " + e.subject
}

func (e *noMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

func (e *noMatchError) Unwrap() error {
	return e.reason
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
