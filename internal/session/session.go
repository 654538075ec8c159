package session

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/scry-cli/internal/config"
	"github.com/phrazzld/scry-cli/internal/console"
	"github.com/phrazzld/scry-cli/internal/domain"
	"github.com/phrazzld/scry-cli/internal/platform/logger"
	"github.com/phrazzld/scry-cli/internal/service"
)

// action runs one command to completion.
type action func(ctx context.Context) error

// Session is the command loop over one deck. It is driven by a single
// goroutine and is not safe for concurrent use.
type Session struct {
	// ID identifies the session in log records.
	ID uuid.UUID

	deck    *service.DeckService
	console *console.Console
	cfg     config.SessionConfig
	logger  *slog.Logger
	actions map[string]action
	done    bool
}

// New creates a Session. It validates that all required dependencies are provided.
func New(
	deck *service.DeckService,
	c *console.Console,
	cfg config.SessionConfig,
	l *slog.Logger,
) (*Session, error) {
	if deck == nil {
		return nil, domain.NewValidationError("deck", "cannot be nil", domain.ErrValidation)
	}
	if c == nil {
		return nil, domain.NewValidationError("console", "cannot be nil", domain.ErrValidation)
	}
	if l == nil {
		l = slog.Default()
	}

	id := uuid.New()
	s := &Session{
		ID:      id,
		deck:    deck,
		console: c,
		cfg:     cfg,
		logger: l.With(
			slog.String("component", "session"),
			slog.String("session_id", id.String()),
		),
	}
	s.actions = map[string]action{
		CommandAdd:     s.add,
		CommandRemove:  s.remove,
		CommandImport:  s.importCards,
		CommandExport:  s.exportCards,
		CommandAsk:     s.ask,
		CommandExit:    s.exit,
		CommandLog:     s.saveLog,
		CommandHardest: s.hardest,
		CommandReset:   s.resetStats,
	}
	return s, nil
}

// Run loads the startup deck file, if any, then reads and runs commands
// until the exit command or the end of input. Unknown commands are ignored.
// Failed actions are reported on the console and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	ctx = logger.WithLogger(ctx, s.logger)
	s.logger.Info("session started",
		slog.String("import_file", s.cfg.ImportFile),
		slog.String("export_file", s.cfg.ExportFile))

	if s.cfg.HasImportFile() {
		if err := s.loadStartupFile(ctx); err != nil {
			s.report("startup import", err)
		}
	}

	for !s.done {
		if err := ctx.Err(); err != nil {
			return err
		}

		command, err := s.console.Prompt(promptAction)
		if errors.Is(err, io.EOF) {
			s.logger.Warn("input closed before exit")
			return nil
		}
		if err != nil {
			return err
		}

		run, ok := s.actions[command]
		if !ok {
			s.logger.Debug("ignoring unknown command", slog.String("command", command))
			continue
		}

		if err := run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Warn("input closed before exit", slog.String("command", command))
				return nil
			}
			s.report(command, err)
		}
	}

	s.logger.Info("session finished", slog.Int("card_count", s.deck.Count()))
	return nil
}

// report logs a failed action and tells the user.
func (s *Session) report(command string, err error) {
	s.logger.Error("action failed",
		slog.String("command", command),
		slog.String("error", err.Error()))
	s.console.Print(errorMessage(err))
}
