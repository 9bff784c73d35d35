// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an untrusted record fails validation.
	// Validation errors wrap it, so errors.Is works on every one of them.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a date string is not ISO-8601.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownActivityLevel is returned when an activity level has no multiplier.
	ErrUnknownActivityLevel = errors.New("unknown activity level")

	// ErrUnknownFitnessGoal is returned when a fitness goal has no macro split.
	ErrUnknownFitnessGoal = errors.New("unknown fitness goal")

	// ErrUnknownUnit is returned when a measurement unit is not supported.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnknownRecordKind is returned when no schema exists for a record kind.
	ErrUnknownRecordKind = errors.New("unknown record kind")
)
