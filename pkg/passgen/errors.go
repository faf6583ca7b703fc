package passgen

import "errors"

// Package-specific errors
var (
	// ErrInvalidConfig is the umbrella error for every configuration failure.
	// All validation errors returned by this package match it via errors.Is.
	ErrInvalidConfig = errors.New("invalid generation config")

	// ErrUnknownMode is returned for a Mode outside the supported set.
	ErrUnknownMode = errors.New("unknown generation mode")

	// ErrNoTokenGroups is returned in biographical mode when no token group
	// contains at least one non-empty token.
	ErrNoTokenGroups = errors.New("no usable token groups")

	// ErrNoKeywords is returned in keyword-mix mode for an empty keyword set.
	ErrNoKeywords = errors.New("no keywords provided")

	// ErrInvalidMaxWords is returned in keyword-mix mode when MaxWords < 1.
	ErrInvalidMaxWords = errors.New("max words must be at least 1")

	// ErrInvalidMaxArity is returned in biographical mode when MaxArity is
	// outside the 1..3 range.
	ErrInvalidMaxArity = errors.New("max arity must be between 1 and 3")

	// ErrNegativeSeparatorMax is returned when SeparatorSpec.MaxPerGap is negative.
	ErrNegativeSeparatorMax = errors.New("max symbols per gap must not be negative")
)
