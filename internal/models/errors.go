package models

import "errors"

// Application-wide standard errors
var (
	// ErrSectionNotFound is returned when a section identifier is not in the content table.
	ErrSectionNotFound = errors.New("section not found")

	// ErrInvalidContent signals a content document that breaks the table invariants.
	ErrInvalidContent = errors.New("invalid section content")
)
