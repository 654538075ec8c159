package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/scry-cli/internal/domain"
	"github.com/phrazzld/scry-cli/internal/events"
	"github.com/phrazzld/scry-cli/internal/platform/memory"
)

// mockEmitter records every emitted event
type mockEmitter struct {
	events []*events.SessionEvent
	err    error
}

func (m *mockEmitter) EmitEvent(ctx context.Context, event *events.SessionEvent) error {
	m.events = append(m.events, event)
	return m.err
}

// types returns the emitted event types in order
func (m *mockEmitter) types() []string {
	types := make([]string, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type)
	}
	return types
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService builds a DeckService over an in-memory store seeded with
// cards. PickRandom always returns the card at index pick.
func newTestService(t *testing.T, pick int, cards ...domain.Card) (*DeckService, *mockEmitter) {
	t.Helper()

	cardStore := memory.NewMemoryCardStore(discardLogger(), memory.WithRandomIndex(func(n int) int {
		return pick
	}))
	for _, card := range cards {
		cardStore.Upsert(card)
	}

	emitter := &mockEmitter{}
	svc, err := NewDeckService(cardStore, emitter, discardLogger())
	require.NoError(t, err)
	return svc, emitter
}
