package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the deck service.
const (
	TypeCardAdded     = "card.added"
	TypeCardRemoved   = "card.removed"
	TypeAnswerCorrect = "answer.correct"
	TypeAnswerWrong   = "answer.wrong"
	TypeCardsImported = "cards.imported"
	TypeCardsExported = "cards.exported"
	TypeStatsReset    = "stats.reset"
)

// SessionEvent records a change to the deck or a quiz answer.
type SessionEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Term is the card the event is about, empty for deck-wide events
	Term string `json:"term,omitempty"`

	// Count carries the number of affected cards for import/export events
	// and the card's mistake count for answer events
	Count int `json:"count"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewSessionEvent creates a new SessionEvent with the specified type, term and count.
func NewSessionEvent(eventType, term string, count int) *SessionEvent {
	return &SessionEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Term:      term,
		Count:     count,
		CreatedAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *SessionEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *SessionEvent) error
}
