package cardfile

import (
	"fmt"
	"os"

	"github.com/phrazzld/scry-cli/internal/domain"
)

// WriteFile overwrites path with the encoded cards and returns how many
// records were written.
func WriteFile(path string, cards []domain.Card) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create card file: %w", err)
	}

	n, err := Encode(f, cards)
	if err != nil {
		_ = f.Close()
		return 0, err
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close card file: %w", err)
	}
	return n, nil
}

// ReadFile decodes the cards stored at path. A missing file is reported
// with an error wrapping fs.ErrNotExist.
func ReadFile(path string) ([]domain.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open card file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}
