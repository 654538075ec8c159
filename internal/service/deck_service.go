package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/phrazzld/scry-cli/internal/domain"
	"github.com/phrazzld/scry-cli/internal/events"
	"github.com/phrazzld/scry-cli/internal/platform/cardfile"
	"github.com/phrazzld/scry-cli/internal/platform/logger"
	"github.com/phrazzld/scry-cli/internal/store"
)

// AnswerResult is the outcome of checking one quiz answer.
type AnswerResult struct {
	// Card is the asked card after the answer was recorded
	Card domain.Card
	// Correct is true when the answer is the card's own definition
	Correct bool
	// MatchesOther is true when the answer is the definition of another card
	MatchesOther bool
	// OtherTerm names that other card when MatchesOther is set
	OtherTerm string
}

// DeckService implements the card-collection actions of a session.
type DeckService struct {
	cards   store.CardStore
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewDeckService creates a DeckService over the given store.
// It validates that all required dependencies are provided.
func NewDeckService(
	cards store.CardStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (*DeckService, error) {
	// Validate dependencies
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		return nil, domain.NewValidationError("emitter", "cannot be nil", domain.ErrValidation)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &DeckService{
		cards:   cards,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "deck_service")),
	}, nil
}

// emit publishes an event. Handler failures are logged and never fail the action.
func (s *DeckService) emit(ctx context.Context, eventType, term string, count int) {
	if err := s.emitter.EmitEvent(ctx, events.NewSessionEvent(eventType, term, count)); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to emit event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
	}
}

// Count returns the number of cards in the deck.
func (s *DeckService) Count() int {
	return s.cards.Len()
}

// Cards returns the deck in store order.
func (s *DeckService) Cards() []domain.Card {
	return s.cards.All()
}

// HasTerm reports whether a card with the given term exists.
func (s *DeckService) HasTerm(term string) bool {
	return s.cards.ExistsByTerm(term)
}

// HasDefinition reports whether any card uses the given definition.
func (s *DeckService) HasDefinition(definition string) bool {
	return s.cards.ExistsByDefinition(definition)
}

// AddCard adds a new card with zero mistakes.
// Returns domain.ErrTermExists or domain.ErrDefinitionExists when either
// value is already used; the deck is unchanged in that case.
func (s *DeckService) AddCard(ctx context.Context, term, definition string) (domain.Card, error) {
	if s.cards.ExistsByTerm(term) {
		return domain.Card{}, fmt.Errorf("%w: %q", domain.ErrTermExists, term)
	}
	if s.cards.ExistsByDefinition(definition) {
		return domain.Card{}, fmt.Errorf("%w: %q", domain.ErrDefinitionExists, definition)
	}

	card, err := domain.NewCard(term, definition, 0)
	if err != nil {
		return domain.Card{}, NewDeckServiceError("add", "invalid card", err)
	}

	s.cards.Upsert(card)
	s.emit(ctx, events.TypeCardAdded, term, 0)
	return card, nil
}

// RemoveCard deletes the card with the given term.
// Returns domain.ErrCardNotFound if there is no such card.
func (s *DeckService) RemoveCard(ctx context.Context, term string) error {
	if !s.cards.ExistsByTerm(term) {
		return fmt.Errorf("%w: %q", domain.ErrCardNotFound, term)
	}

	s.cards.Remove(term)
	s.emit(ctx, events.TypeCardRemoved, term, 0)
	return nil
}

// ParseCount parses the number of questions for a quiz round.
// Negative numbers are accepted and ask nothing.
// Returns ErrInvalidCount if input is not an integer.
func (s *DeckService) ParseCount(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, input)
	}
	return n, nil
}

// NextCard picks a random card to ask.
// Returns domain.ErrNoCards if the deck is empty.
func (s *DeckService) NextCard() (domain.Card, error) {
	card, err := s.cards.PickRandom()
	if errors.Is(err, store.ErrEmpty) {
		return domain.Card{}, domain.ErrNoCards
	}
	if err != nil {
		return domain.Card{}, NewDeckServiceError("next card", "failed to pick a card", err)
	}
	return card, nil
}

// CheckAnswer compares answer with the definition of card. A wrong answer
// increments the card's mistakes; when the answer is the definition of
// another card, MatchesOther is set and that card's term is reported in
// OtherTerm.
func (s *DeckService) CheckAnswer(ctx context.Context, card domain.Card, answer string) (AnswerResult, error) {
	if s.cards.Matches(card.Term, answer) {
		s.emit(ctx, events.TypeAnswerCorrect, card.Term, card.Mistakes)
		return AnswerResult{Card: card, Correct: true}, nil
	}

	otherTerm, matchesOther := s.cards.FindTermByDefinition(answer)

	updated, err := s.cards.RecordMistake(card.Term)
	if store.IsNotFoundError(err) {
		return AnswerResult{}, fmt.Errorf("%w: %q", domain.ErrCardNotFound, card.Term)
	}
	if err != nil {
		return AnswerResult{}, NewDeckServiceError("check answer", "failed to record mistake", err)
	}

	s.emit(ctx, events.TypeAnswerWrong, updated.Term, updated.Mistakes)
	return AnswerResult{Card: updated, MatchesOther: matchesOther, OtherTerm: otherTerm}, nil
}

// Hardest returns the cards with the highest non-zero mistake count.
func (s *DeckService) Hardest() []domain.Card {
	return s.cards.Hardest()
}

// ResetStats sets the mistakes of every card to zero.
func (s *DeckService) ResetStats(ctx context.Context) {
	s.cards.ResetAllMistakes()
	s.emit(ctx, events.TypeStatsReset, "", s.cards.Len())
}

// ImportFile loads the cards stored at path into the deck. A card whose
// term is already in the deck gets the imported definition; its mistakes
// are kept. Returns the number of records read.
// Returns ErrFileNotFound if path does not exist.
func (s *DeckService) ImportFile(ctx context.Context, path string) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := cardfile.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug("deck file does not exist", slog.String("path", path))
		return 0, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return 0, NewDeckServiceError("import", "failed to read deck file", err)
	}

	for _, card := range cards {
		s.cards.Upsert(card)
	}

	log.Info("deck imported",
		slog.String("path", path),
		slog.Int("card_count", len(cards)))
	s.emit(ctx, events.TypeCardsImported, "", len(cards))
	return len(cards), nil
}

// ExportFile overwrites path with the whole deck and returns the number of
// cards written.
func (s *DeckService) ExportFile(ctx context.Context, path string) (int, error) {
	n, err := cardfile.WriteFile(path, s.cards.All())
	if err != nil {
		return 0, NewDeckServiceError("export", "failed to write deck file", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("deck exported",
		slog.String("path", path),
		slog.Int("card_count", n))
	s.emit(ctx, events.TypeCardsExported, "", n)
	return n, nil
}
