package cardfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phrazzld/scry-cli/internal/domain"
)

const (
	fieldSeparator = ":"
	quoteChars     = `"'`
)

// Encode writes every card as one record line and returns the number of
// records written.
func Encode(w io.Writer, cards []domain.Card) (int, error) {
	bw := bufio.NewWriter(w)
	for i, card := range cards {
		if _, err := bw.WriteString(FormatRecord(card)); err != nil {
			return i, fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush records: %w", err)
	}
	return len(cards), nil
}

// FormatRecord renders a single card as a record line, trailing newline included.
func FormatRecord(card domain.Card) string {
	return fmt.Sprintf("{\"%s\":\"%s\":%d},\n", card.Term, card.Definition, card.Mistakes)
}

// Decode reads records from r in order. Lines that are not records are
// skipped; only read failures are returned as errors.
func Decode(r io.Reader) ([]domain.Card, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	cards := make([]domain.Card, 0)
	for _, line := range strings.Split(string(data), "\n") {
		if card, ok := ParseRecord(line); ok {
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// ParseRecord tokenizes one record line. It reports false when the line is
// not a record.
//
// The term runs up to the first separator and the mistake count follows the
// last one, so the definition may itself contain separators. A term cannot.
func ParseRecord(line string) (domain.Card, bool) {
	body := strings.TrimSpace(line)
	body = strings.TrimSuffix(body, ",")
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "{") && strings.HasSuffix(body, "}") {
		body = body[1 : len(body)-1]
	}

	rawTerm, rest, found := strings.Cut(body, fieldSeparator)
	if !found {
		return domain.Card{}, false
	}

	term := unquote(rawTerm)
	if term == "" {
		return domain.Card{}, false
	}

	rawDefinition := rest
	mistakes := 0
	if i := strings.LastIndex(rest, fieldSeparator); i >= 0 {
		var ok bool
		mistakes, ok = parseMistakes(rest[i+len(fieldSeparator):])
		if !ok {
			return domain.Card{}, false
		}
		rawDefinition = rest[:i]
	}

	card, err := domain.NewCard(term, unquote(rawDefinition), mistakes)
	if err != nil {
		return domain.Card{}, false
	}
	return card, true
}

// unquote trims blanks and at most one quote on each side of a field.
// Quotes inside the field are kept.
func unquote(field string) string {
	value := strings.TrimSpace(field)
	if value != "" && strings.ContainsRune(quoteChars, rune(value[0])) {
		value = value[1:]
	}
	if value != "" && strings.ContainsRune(quoteChars, rune(value[len(value)-1])) {
		value = value[:len(value)-1]
	}
	return value
}

// parseMistakes accepts a run of digits surrounded by blanks; blank means zero.
func parseMistakes(field string) (int, bool) {
	value := strings.TrimSpace(field)
	if value == "" {
		return 0, true
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
