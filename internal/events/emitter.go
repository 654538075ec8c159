package events

import (
	"context"
	"log/slog"
)

// InMemoryEventEmitter is a simple implementation of the EventEmitter interface
// that stores registered handlers in memory and dispatches events to them
// synchronously, in registration order.
type InMemoryEventEmitter struct {
	handlers []EventHandler
	logger   *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		handlers: make([]EventHandler, 0),
		logger:   logger.With("component", "in_memory_event_emitter"),
	}
}

// RegisterHandler adds a new event handler to receive events.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.handlers = append(e.handlers, handler)
	e.logger.Debug("registered new event handler", "handler_count", len(e.handlers))
}

// EmitEvent publishes the given event to all registered handlers.
// If any handler returns an error, the event will still be sent to all other handlers,
// and the first error encountered will be returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *SessionEvent) error {
	if len(e.handlers) == 0 {
		return nil
	}

	var firstErr error
	for i, handler := range e.handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// LoggingHandler writes every event it receives to a structured logger.
type LoggingHandler struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLoggingHandler creates a handler that logs events at the given level.
func NewLoggingHandler(logger *slog.Logger, level slog.Level) *LoggingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingHandler{
		logger: logger.With("component", "event_log"),
		level:  level,
	}
}

// HandleEvent implements the EventHandler interface
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *SessionEvent) error {
	h.logger.Log(ctx, h.level, "session event",
		"event_id", event.ID,
		"event_type", event.Type,
		"term", event.Term,
		"count", event.Count,
		"created_at", event.CreatedAt)
	return nil
}
