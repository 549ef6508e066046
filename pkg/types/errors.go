package types

import "errors"

// Validation errors. Returned by title validation on task creation and
// update; the collection is left untouched on failure.
var (
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrTitleTooLong = errors.New("title exceeds maximum length")
)

// Storage errors. Returned by the persistence adapter; every adapter
// failure classifies into exactly one of these.
var (
	ErrNotAvailable  = errors.New("storage is not available")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrDataCorrupted = errors.New("stored data is corrupted")
)

// Lookup errors. Operating by id on an absent id is benign (a UI
// double-click race), so callers treat ErrNotFound as a soft failure.
var ErrNotFound = errors.New("task not found")

// Import errors.
var ErrInvalidImport = errors.New("invalid import payload")

// Kind is the closed classification of failures reported by public
// operations. Every error produced by this module maps to exactly one kind.
type Kind string

const (
	KindEmptyTitle    Kind = "empty_title"
	KindTitleTooLong  Kind = "title_too_long"
	KindNotAvailable  Kind = "not_available"
	KindQuotaExceeded Kind = "quota_exceeded"
	KindDataCorrupted Kind = "data_corrupted"
	KindNotFound      Kind = "not_found"
	KindInvalidImport Kind = "invalid_import"
	KindUnknown       Kind = "unknown"
)

// KindOf classifies err into the error taxonomy. Wrapped errors are
// unwrapped; anything outside the closed set reports KindUnknown.
// A nil error has no kind and reports the empty string.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyTitle):
		return KindEmptyTitle
	case errors.Is(err, ErrTitleTooLong):
		return KindTitleTooLong
	case errors.Is(err, ErrNotAvailable):
		return KindNotAvailable
	case errors.Is(err, ErrQuotaExceeded):
		return KindQuotaExceeded
	case errors.Is(err, ErrDataCorrupted):
		return KindDataCorrupted
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidImport):
		return KindInvalidImport
	default:
		return KindUnknown
	}
}

// IsValidation reports whether k is a validation failure.
func (k Kind) IsValidation() bool {
	return k == KindEmptyTitle || k == KindTitleTooLong || k == KindInvalidImport
}

// IsStorage reports whether k is a storage failure.
func (k Kind) IsStorage() bool {
	return k == KindNotAvailable || k == KindQuotaExceeded || k == KindDataCorrupted
}

// IsLookup reports whether k is a lookup failure.
func (k Kind) IsLookup() bool {
	return k == KindNotFound
}
