package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/scry-cli/internal/service"
)

func (s *Session) add(ctx context.Context) error {
	term, err := s.console.Prompt(promptTerm)
	if err != nil {
		return err
	}
	if s.deck.HasTerm(term) {
		s.console.Printf(msgTermExists, term)
		return nil
	}

	definition, err := s.console.Prompt(promptDefinition)
	if err != nil {
		return err
	}
	if s.deck.HasDefinition(definition) {
		s.console.Printf(msgDefinitionExists, definition)
		return nil
	}

	if _, err := s.deck.AddCard(ctx, term, definition); err != nil {
		return err
	}
	s.console.Printf(msgCardAdded, term, definition)
	return nil
}

func (s *Session) remove(ctx context.Context) error {
	term, err := s.console.Prompt(promptRemove)
	if err != nil {
		return err
	}

	if !s.deck.HasTerm(term) {
		s.console.Printf(msgCannotRemove, term)
		return nil
	}

	if err := s.deck.RemoveCard(ctx, term); err != nil {
		return err
	}
	s.console.Print(msgCardRemoved)
	return nil
}

func (s *Session) ask(ctx context.Context) error {
	if s.deck.Count() == 0 {
		s.console.Print(msgNoCards)
		return nil
	}

	input, err := s.console.Prompt(promptAskCount)
	if err != nil {
		return err
	}
	times, err := s.deck.ParseCount(input)
	if err != nil {
		return err
	}

	for i := 0; i < times; i++ {
		card, err := s.deck.NextCard()
		if err != nil {
			return err
		}

		answer, err := s.console.Prompt(fmt.Sprintf(promptAskCard, card.Term))
		if err != nil {
			return err
		}

		result, err := s.deck.CheckAnswer(ctx, card, answer)
		if err != nil {
			return err
		}

		switch {
		case result.Correct:
			s.console.Print(msgCorrect)
		case result.MatchesOther:
			s.console.Printf(msgWrongOtherCard, card.Definition, result.OtherTerm)
		default:
			s.console.Printf(msgWrong, card.Definition)
		}
	}
	return nil
}

func (s *Session) exportCards(ctx context.Context) error {
	path, err := s.console.Prompt(promptFileName)
	if err != nil {
		return err
	}

	n, err := s.deck.ExportFile(ctx, path)
	if err != nil {
		return err
	}
	s.console.Printf(msgCardsSaved, n)
	return nil
}

func (s *Session) importCards(ctx context.Context) error {
	path, err := s.console.Prompt(promptFileName)
	if err != nil {
		return err
	}

	n, err := s.importFile(ctx, path)
	if err != nil {
		return err
	}
	if n > 0 {
		s.console.Printf(msgCardsLoaded, n)
	}
	return nil
}

// loadStartupFile imports the configured deck file and always reports the count.
func (s *Session) loadStartupFile(ctx context.Context) error {
	n, err := s.importFile(ctx, s.cfg.ImportFile)
	if err != nil {
		return err
	}
	s.console.Printf(msgCardsLoaded, n)
	return nil
}

// importFile imports path, reporting a missing file as zero cards.
func (s *Session) importFile(ctx context.Context, path string) (int, error) {
	n, err := s.deck.ImportFile(ctx, path)
	if errors.Is(err, service.ErrFileNotFound) {
		s.console.Print(msgFileNotFound)
		return 0, nil
	}
	return n, err
}

func (s *Session) exit(ctx context.Context) error {
	s.done = true

	if s.cfg.HasExportFile() {
		n, err := s.deck.ExportFile(ctx, s.cfg.ExportFile)
		if err != nil {
			s.report(CommandExit, err)
		} else {
			s.console.Printf(msgCardsSaved, n)
		}
	}

	s.console.Print(msgBye)
	return nil
}

func (s *Session) saveLog(ctx context.Context) error {
	path, err := s.console.Prompt(promptFileName)
	if err != nil {
		return err
	}

	if err := s.console.Transcript().Save(path); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveLog, err)
	}
	s.console.Print(msgLogSaved)
	return nil
}

func (s *Session) hardest(ctx context.Context) error {
	cards := s.deck.Hardest()

	switch len(cards) {
	case 0:
		s.console.Print(msgNoHardest)
	case 1:
		s.console.Printf(msgHardestOne, cards[0].Term, cards[0].Mistakes)
	default:
		terms := make([]string, 0, len(cards))
		for _, card := range cards {
			terms = append(terms, `"`+card.Term+`"`)
		}
		s.console.Printf(msgHardestMany, strings.Join(terms, ", "), cards[0].Mistakes)
	}
	return nil
}

func (s *Session) resetStats(ctx context.Context) error {
	s.deck.ResetStats(ctx)
	s.console.Print(msgStatsReset)
	return nil
}
