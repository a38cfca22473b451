// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState signals an operation that cannot run against the current catalog.
	ErrInvalidState = errors.New("invalid state")
	// ErrDuplicateID signals a record identifier used twice within one list.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrGalleryItemNotFound signals missing gallery item.
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	// ErrTeamMemberNotFound signals missing team member.
	ErrTeamMemberNotFound = errors.New("team member not found")
)
