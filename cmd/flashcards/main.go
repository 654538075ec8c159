// Package main implements the entry point for the flashcards console,
// which quizzes the user on a deck of term/definition cards and keeps the
// deck in a plain text file between sessions.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/scry-cli/internal/config"
	"github.com/phrazzld/scry-cli/internal/console"
	"github.com/phrazzld/scry-cli/internal/events"
	"github.com/phrazzld/scry-cli/internal/platform/logger"
	"github.com/phrazzld/scry-cli/internal/platform/memory"
	"github.com/phrazzld/scry-cli/internal/service"
	"github.com/phrazzld/scry-cli/internal/session"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("flashcards: %v", err)
	}
}

// run loads configuration, sets up logging, wires the deck and runs one
// session against the given streams.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, closer, err := logger.Setup(cfg.Log, stderr)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() { _ = closer.Close() }()

	l.Debug("configuration loaded",
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("import_file_present", cfg.Session.HasImportFile()),
		slog.Bool("export_file_present", cfg.Session.HasExportFile()))

	s, err := newSession(cfg, stdin, stdout, l)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// newSession injects the session's dependencies.
func newSession(cfg *config.Config, stdin io.Reader, stdout io.Writer, l *slog.Logger) (*session.Session, error) {
	emitter := events.NewInMemoryEventEmitter(l)
	emitter.RegisterHandler(events.NewLoggingHandler(l, slog.LevelDebug))

	deck, err := service.NewDeckService(memory.NewMemoryCardStore(l), emitter, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}

	s, err := session.New(deck, console.New(stdin, stdout), cfg.Session, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return s, nil
}
