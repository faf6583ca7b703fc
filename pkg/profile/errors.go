package profile

import "errors"

var (
	// ErrInvalidProfile wraps every parse failure of a profile document.
	ErrInvalidProfile = errors.New("invalid run profile")

	// ErrEmptyProfile is returned for a document with no content.
	ErrEmptyProfile = errors.New("profile is empty")
)
