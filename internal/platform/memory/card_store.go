package memory

import (
	"log/slog"
	"math/rand"

	"github.com/phrazzld/scry-cli/internal/domain"
	"github.com/phrazzld/scry-cli/internal/store"
)

// Option configures a MemoryCardStore.
type Option func(*MemoryCardStore)

// WithRandomIndex replaces the source PickRandom uses to choose a card.
// fn receives the number of stored cards and must return an index in [0, n).
func WithRandomIndex(fn func(n int) int) Option {
	return func(s *MemoryCardStore) {
		s.randomIndex = fn
	}
}

// MemoryCardStore implements the store.CardStore interface on top of an
// ordered slice. It is owned by a single session and is not safe for
// concurrent use.
type MemoryCardStore struct {
	cards       []domain.Card
	randomIndex func(n int) int
	logger      *slog.Logger
}

// NewMemoryCardStore creates an empty in-memory CardStore.
// If logger is nil, a default logger will be used.
func NewMemoryCardStore(logger *slog.Logger, opts ...Option) *MemoryCardStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &MemoryCardStore{
		cards:       make([]domain.Card, 0),
		randomIndex: rand.Intn,
		logger:      logger.With(slog.String("component", "card_store")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure MemoryCardStore implements store.CardStore interface
var _ store.CardStore = (*MemoryCardStore)(nil)

// indexOf returns the position of the card keyed by term, or -1.
func (s *MemoryCardStore) indexOf(term string) int {
	for i := range s.cards {
		if s.cards[i].Key() == term {
			return i
		}
	}
	return -1
}

// Upsert implements store.CardStore.Upsert
func (s *MemoryCardStore) Upsert(card domain.Card) {
	if i := s.indexOf(card.Key()); i >= 0 {
		s.cards[i].Definition = card.Definition
		s.logger.Debug("card definition replaced", slog.String("term", card.Term))
		return
	}

	s.cards = append(s.cards, card)
	s.logger.Debug("card appended",
		slog.String("term", card.Term),
		slog.Int("card_count", len(s.cards)))
}

// Remove implements store.CardStore.Remove
func (s *MemoryCardStore) Remove(term string) {
	i := s.indexOf(term)
	if i < 0 {
		return
	}

	s.cards = append(s.cards[:i], s.cards[i+1:]...)
	s.logger.Debug("card removed",
		slog.String("term", term),
		slog.Int("card_count", len(s.cards)))
}

// ExistsByTerm implements store.CardStore.ExistsByTerm
func (s *MemoryCardStore) ExistsByTerm(term string) bool {
	return s.indexOf(term) >= 0
}

// FindTermByDefinition implements store.CardStore.FindTermByDefinition
func (s *MemoryCardStore) FindTermByDefinition(definition string) (string, bool) {
	for _, card := range s.cards {
		if card.HasDefinition(definition) {
			return card.Term, true
		}
	}
	return "", false
}

// ExistsByDefinition implements store.CardStore.ExistsByDefinition
func (s *MemoryCardStore) ExistsByDefinition(definition string) bool {
	_, ok := s.FindTermByDefinition(definition)
	return ok
}

// Matches implements store.CardStore.Matches
func (s *MemoryCardStore) Matches(term, definition string) bool {
	i := s.indexOf(term)
	return i >= 0 && s.cards[i].HasDefinition(definition)
}

// Hardest implements store.CardStore.Hardest
func (s *MemoryCardStore) Hardest() []domain.Card {
	highest := 0
	for _, card := range s.cards {
		if card.Mistakes > highest {
			highest = card.Mistakes
		}
	}

	hardest := make([]domain.Card, 0)
	if highest == 0 {
		return hardest
	}

	for _, card := range s.cards {
		if card.Mistakes == highest {
			hardest = append(hardest, card)
		}
	}
	return hardest
}

// ResetAllMistakes implements store.CardStore.ResetAllMistakes
func (s *MemoryCardStore) ResetAllMistakes() {
	for i := range s.cards {
		s.cards[i].Mistakes = 0
	}
	s.logger.Debug("mistakes reset", slog.Int("card_count", len(s.cards)))
}

// PickRandom implements store.CardStore.PickRandom
// Returns store.ErrEmpty if there are no cards.
func (s *MemoryCardStore) PickRandom() (domain.Card, error) {
	if len(s.cards) == 0 {
		return domain.Card{}, store.ErrEmpty
	}
	return s.cards[s.randomIndex(len(s.cards))], nil
}

// RecordMistake implements store.CardStore.RecordMistake
// Returns store.ErrCardNotFound if the term is not stored.
func (s *MemoryCardStore) RecordMistake(term string) (domain.Card, error) {
	i := s.indexOf(term)
	if i < 0 {
		return domain.Card{}, store.NewStoreError("card", "record mistake", "no card with this term", store.ErrCardNotFound)
	}

	s.cards[i].Mistakes++
	return s.cards[i], nil
}

// All implements store.CardStore.All
func (s *MemoryCardStore) All() []domain.Card {
	cards := make([]domain.Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

// Len implements store.CardStore.Len
func (s *MemoryCardStore) Len() int {
	return len(s.cards)
}
