package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-cli/internal/domain"
	"github.com/phrazzld/scry-cli/internal/events"
	"github.com/phrazzld/scry-cli/internal/platform/memory"
)

// Test NewDeckService constructor validation
func TestNewDeckService(t *testing.T) {
	tests := []struct {
		name        string
		withStore   bool
		withEmitter bool
		errorMsg    string
	}{
		{name: "nil store", withStore: false, withEmitter: true, errorMsg: "cards"},
		{name: "nil emitter", withStore: true, withEmitter: false, errorMsg: "emitter"},
		{name: "all dependencies provided", withStore: true, withEmitter: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				cards   *memory.MemoryCardStore
				emitter *mockEmitter
			)
			if tt.withStore {
				cards = memory.NewMemoryCardStore(nil)
			}
			if tt.withEmitter {
				emitter = &mockEmitter{}
			}

			var (
				svc *DeckService
				err error
			)
			// Pass untyped nils so the interface checks see nil
			switch {
			case !tt.withStore:
				svc, err = NewDeckService(nil, emitter, nil)
			case !tt.withEmitter:
				svc, err = NewDeckService(cards, nil, nil)
			default:
				svc, err = NewDeckService(cards, emitter, nil)
			}

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestDeckService_AddCard(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a new card", func(t *testing.T) {
		svc, emitter := newTestService(t, 0)

		card, err := svc.AddCard(ctx, "capital of France", "Paris")

		require.NoError(t, err)
		assert.Equal(t, domain.Card{Term: "capital of France", Definition: "Paris"}, card)
		assert.Equal(t, 1, svc.Count())
		assert.Equal(t, []string{events.TypeCardAdded}, emitter.types())
	})

	t.Run("duplicate term is rejected and deck unchanged", func(t *testing.T) {
		svc, emitter := newTestService(t, 0, domain.Card{Term: "A", Definition: "X"})

		_, err := svc.AddCard(ctx, "A", "Z")

		assert.ErrorIs(t, err, domain.ErrTermExists)
		assert.Equal(t, []domain.Card{{Term: "A", Definition: "X"}}, svc.Cards())
		assert.Empty(t, emitter.events)
	})

	t.Run("duplicate definition is rejected and deck unchanged", func(t *testing.T) {
		svc, _ := newTestService(t, 0, domain.Card{Term: "A", Definition: "X"})

		_, err := svc.AddCard(ctx, "B", "X")

		assert.ErrorIs(t, err, domain.ErrDefinitionExists)
		assert.Equal(t, []domain.Card{{Term: "A", Definition: "X"}}, svc.Cards())
	})

	t.Run("emitter failure does not fail the action", func(t *testing.T) {
		svc, emitter := newTestService(t, 0)
		emitter.err = errors.New("handler down")

		_, err := svc.AddCard(ctx, "A", "X")

		require.NoError(t, err)
		assert.True(t, svc.HasTerm("A"))
	})
}

func TestDeckService_RemoveCard(t *testing.T) {
	ctx := context.Background()
	svc, emitter := newTestService(t, 0,
		domain.Card{Term: "A", Definition: "X"},
		domain.Card{Term: "B", Definition: "Y"},
	)

	err := svc.RemoveCard(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
	assert.Equal(t, 2, svc.Count())

	err = svc.RemoveCard(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Count())
	assert.False(t, svc.HasTerm("A"))
	assert.Equal(t, []string{events.TypeCardRemoved}, emitter.types())
}

func TestDeckService_ParseCount(t *testing.T) {
	svc, _ := newTestService(t, 0)

	tests := []struct {
		input    string
		expected int
		valid    bool
	}{
		{"3", 3, true},
		{"0", 0, true},
		{"-2", -2, true},
		{"two", 0, false},
		{"", 0, false},
		{" 3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := svc.ParseCount(tt.input)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, n)
			} else {
				assert.ErrorIs(t, err, ErrInvalidCount)
			}
		})
	}
}

func TestDeckService_NextCard(t *testing.T) {
	svc, _ := newTestService(t, 1)
	_, err := svc.NextCard()
	assert.ErrorIs(t, err, domain.ErrNoCards)

	svc, _ = newTestService(t, 1,
		domain.Card{Term: "A", Definition: "X"},
		domain.Card{Term: "B", Definition: "Y"},
	)
	card, err := svc.NextCard()
	require.NoError(t, err)
	assert.Equal(t, "B", card.Term)
}

func TestDeckService_CheckAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("correct answer keeps mistakes", func(t *testing.T) {
		svc, emitter := newTestService(t, 0, domain.Card{Term: "capital of France", Definition: "Paris"})
		card, err := svc.NextCard()
		require.NoError(t, err)

		result, err := svc.CheckAnswer(ctx, card, "Paris")

		require.NoError(t, err)
		assert.True(t, result.Correct)
		assert.Zero(t, result.Card.Mistakes)
		assert.Zero(t, svc.Cards()[0].Mistakes)
		assert.Equal(t, []string{events.TypeAnswerCorrect}, emitter.types())
	})

	t.Run("unknown answer records a mistake", func(t *testing.T) {
		svc, emitter := newTestService(t, 0, domain.Card{Term: "capital of France", Definition: "Paris"})
		card, err := svc.NextCard()
		require.NoError(t, err)

		result, err := svc.CheckAnswer(ctx, card, "London")

		require.NoError(t, err)
		assert.False(t, result.Correct)
		assert.False(t, result.MatchesOther)
		assert.Empty(t, result.OtherTerm)
		assert.Equal(t, 1, result.Card.Mistakes)
		assert.Equal(t, 1, svc.Cards()[0].Mistakes)
		assert.Equal(t, []string{events.TypeAnswerWrong}, emitter.types())
	})

	t.Run("definition of another card names that card", func(t *testing.T) {
		svc, _ := newTestService(t, 0,
			domain.Card{Term: "A", Definition: "X"},
			domain.Card{Term: "B", Definition: "Y"},
		)
		card, err := svc.NextCard()
		require.NoError(t, err)
		require.Equal(t, "A", card.Term)

		result, err := svc.CheckAnswer(ctx, card, "Y")

		require.NoError(t, err)
		assert.False(t, result.Correct)
		assert.True(t, result.MatchesOther)
		assert.Equal(t, "B", result.OtherTerm)
		assert.Equal(t, "X", result.Card.Definition)
		assert.Equal(t, 1, svc.Cards()[0].Mistakes)
		assert.Zero(t, svc.Cards()[1].Mistakes)
	})

	t.Run("card removed before the answer", func(t *testing.T) {
		svc, emitter := newTestService(t, 0, domain.Card{Term: "A", Definition: "X"})
		card, err := svc.NextCard()
		require.NoError(t, err)
		require.NoError(t, svc.RemoveCard(ctx, "A"))

		_, err = svc.CheckAnswer(ctx, card, "wrong")

		assert.ErrorIs(t, err, domain.ErrCardNotFound)
		assert.Equal(t, []string{events.TypeCardRemoved}, emitter.types())
	})
}

func TestDeckService_HardestAndReset(t *testing.T) {
	ctx := context.Background()
	svc, emitter := newTestService(t, 0,
		domain.Card{Term: "A", Definition: "X", Mistakes: 2},
		domain.Card{Term: "B", Definition: "Y", Mistakes: 2},
		domain.Card{Term: "C", Definition: "Z", Mistakes: 1},
	)

	hardest := svc.Hardest()
	require.Len(t, hardest, 2)
	assert.Equal(t, "A", hardest[0].Term)
	assert.Equal(t, "B", hardest[1].Term)

	svc.ResetStats(ctx)

	assert.Empty(t, svc.Hardest())
	assert.Equal(t, []string{events.TypeStatsReset}, emitter.types())
	assert.Equal(t, 3, emitter.events[0].Count)
}

func TestDeckService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "capitals.txt")
	cards := []domain.Card{
		{Term: "France", Definition: "Paris", Mistakes: 3},
		{Term: "Japan", Definition: "Tokyo"},
		{Term: "Peru", Definition: "Lima", Mistakes: 1},
	}

	source, emitter := newTestService(t, 0, cards...)
	n, err := source.ExportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{events.TypeCardsExported}, emitter.types())

	target, emitter := newTestService(t, 0)
	n, err = target.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, cards, target.Cards())
	assert.Equal(t, []string{events.TypeCardsImported}, emitter.types())
}

func TestDeckService_ExportImportPunctuation(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "punctuation.txt")
	cards := []domain.Card{
		{Term: "don't", Definition: "do not", Mistakes: 1},
		{Term: "train", Definition: "leaves at 3:15", Mistakes: 2},
		{Term: "quote", Definition: `say "hi"`},
	}

	source, _ := newTestService(t, 0, cards...)
	n, err := source.ExportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	target, _ := newTestService(t, 0)
	n, err = target.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, cards, target.Cards())
}

func TestDeckService_ImportOverwritesDefinition(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "deck.txt")
	require.NoError(t, os.WriteFile(path, []byte("{\"A\":\"new\":9},\n{\"B\":\"Y\":1},\n"), 0o644))

	svc, _ := newTestService(t, 0, domain.Card{Term: "A", Definition: "old", Mistakes: 2})

	n, err := svc.ImportFile(ctx, path)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []domain.Card{
		{Term: "A", Definition: "new", Mistakes: 2},
		{Term: "B", Definition: "Y", Mistakes: 1},
	}, svc.Cards())
}

func TestDeckService_ImportMissingFile(t *testing.T) {
	svc, emitter := newTestService(t, 0)

	n, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Zero(t, n)
	assert.Zero(t, svc.Count())
	assert.Empty(t, emitter.events)
}

func TestDeckService_ImportWithoutRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("nothing to see here\n"), 0o644))
	svc, _ := newTestService(t, 0)

	n, err := svc.ImportFile(context.Background(), path)

	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeckService_ExportFailure(t *testing.T) {
	svc, _ := newTestService(t, 0, domain.Card{Term: "A", Definition: "X"})

	_, err := svc.ExportFile(context.Background(), filepath.Join(t.TempDir(), "no", "dir", "deck.txt"))

	require.Error(t, err)
	var serviceErr *DeckServiceError
	assert.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "export", serviceErr.Operation)
}
