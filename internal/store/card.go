package store

import (
	"github.com/phrazzld/scry-cli/internal/domain"
)

// CardStore defines the interface for the deck's card collection.
// Implementations keep cards in insertion order and never hold two cards
// with the same key (see domain.Card.Key).
type CardStore interface {
	// Upsert appends the card, or replaces the definition of the stored
	// card with the same key. The stored card's mistake count is kept.
	Upsert(card domain.Card)

	// Remove deletes the card with the given term. Removing a term that is
	// not stored is a no-op.
	Remove(term string)

	// ExistsByTerm reports whether a card with the given term is stored.
	ExistsByTerm(term string) bool

	// FindTermByDefinition returns the term of the first card, in store
	// order, whose definition equals definition.
	FindTermByDefinition(definition string) (string, bool)

	// ExistsByDefinition reports whether any card uses the given definition.
	ExistsByDefinition(definition string) bool

	// Matches reports whether a card with exactly this term and this
	// definition is stored.
	Matches(term, definition string) bool

	// Hardest returns every card sharing the highest non-zero mistake count,
	// in store order. It is empty when no card has mistakes.
	Hardest() []domain.Card

	// ResetAllMistakes sets the mistake count of every card to zero.
	ResetAllMistakes()

	// PickRandom returns a uniformly chosen card.
	// Returns ErrEmpty if the store holds no cards.
	PickRandom() (domain.Card, error)

	// RecordMistake increments the mistake count of the card with the given
	// term and returns the updated card.
	// Returns ErrCardNotFound if the term is not stored.
	RecordMistake(term string) (domain.Card, error)

	// All returns a copy of the stored cards in store order.
	All() []domain.Card

	// Len returns the number of stored cards.
	Len() int
}
