// Package domain defines the core study-aid entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// ContentValidationError unwraps to it.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTitleOrMaterial is returned when a project is created without
	// a title or without study material.
	ErrEmptyTitleOrMaterial = errors.New("title and study material cannot be empty")

	// ErrTitleTooLong is returned when a project title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("project title is too long")

	// ErrEmptyDeck is returned when a flashcard deck contains no cards.
	ErrEmptyDeck = errors.New("flashcard deck cannot be empty")

	// ErrInvalidAccuracy is returned when an analysis accuracy cannot be read
	// as a percentage between 0 and 100.
	ErrInvalidAccuracy = errors.New("invalid accuracy")
)
