package console

import (
	"fmt"
	"os"
	"strings"
)

// Transcript is the append-only record of a console exchange.
type Transcript struct {
	b strings.Builder
}

// Record appends one line to the transcript.
func (t *Transcript) Record(line string) {
	t.b.WriteString(line)
	t.b.WriteByte('\n')
}

// String returns the whole transcript, one entry per line.
func (t *Transcript) String() string {
	return t.b.String()
}

// Save overwrites path with the transcript recorded so far.
func (t *Transcript) Save(path string) error {
	if err := os.WriteFile(path, []byte(t.String()), 0o644); err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}
	return nil
}
