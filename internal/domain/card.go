package domain

import (
	"errors"
)

// Card-specific validation errors
var (
	// ErrCardMistakesNegative is returned when a card carries a negative mistake count.
	ErrCardMistakesNegative = errors.New("card mistakes cannot be negative")
)

// Card is a single term/definition pair together with the number of wrong
// answers given for it. Cards are identified by their term alone; see Key.
type Card struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Mistakes   int    `json:"mistakes"`
}

// NewCard creates a Card with the given term, definition and mistake count.
// Returns an error if validation fails.
func NewCard(term, definition string, mistakes int) (Card, error) {
	card := Card{
		Term:       term,
		Definition: definition,
		Mistakes:   mistakes,
	}

	if err := card.Validate(); err != nil {
		return Card{}, err
	}

	return card, nil
}

// Key returns the value that identifies the card inside a collection.
// Two cards with the same key are the same card regardless of their
// definitions or mistake counts.
func (c Card) Key() string {
	return c.Term
}

// Validate checks if the Card has valid data.
func (c Card) Validate() error {
	if c.Mistakes < 0 {
		return ErrCardMistakesNegative
	}

	return nil
}

// HasDefinition reports whether the card's definition is exactly definition.
func (c Card) HasDefinition(definition string) bool {
	return c.Definition == definition
}
