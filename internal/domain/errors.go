package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrTermExists is returned when a card with the same term is already
	// part of the deck.
	ErrTermExists = errors.New("card term already exists")

	// ErrDefinitionExists is returned when another card already uses the
	// same definition.
	ErrDefinitionExists = errors.New("card definition already exists")

	// ErrCardNotFound is returned when no card matches the requested term.
	ErrCardNotFound = errors.New("card not found")

	// ErrNoCards is returned when an operation needs at least one card.
	ErrNoCards = errors.New("there are no cards")
)
