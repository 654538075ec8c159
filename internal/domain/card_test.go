package domain

import (
	"testing"
)

func TestNewCard(t *testing.T) {
	t.Parallel() // Enable parallel execution

	card, err := NewCard("capital of France", "Paris", 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.Term != "capital of France" {
		t.Errorf("Expected term %q, got %q", "capital of France", card.Term)
	}

	if card.Definition != "Paris" {
		t.Errorf("Expected definition %q, got %q", "Paris", card.Definition)
	}

	if card.Mistakes != 2 {
		t.Errorf("Expected 2 mistakes, got %d", card.Mistakes)
	}

	// Test negative mistakes
	_, err = NewCard("term", "definition", -1)
	if err != ErrCardMistakesNegative {
		t.Errorf("Expected error %v, got %v", ErrCardMistakesNegative, err)
	}
}

func TestCardKey(t *testing.T) {
	t.Parallel()

	a := Card{Term: "A", Definition: "X", Mistakes: 0}
	b := Card{Term: "A", Definition: "Y", Mistakes: 3}

	if a.Key() != b.Key() {
		t.Errorf("Expected cards with the same term to share a key, got %q and %q", a.Key(), b.Key())
	}

	// The struct itself keeps plain value equality
	if a == b {
		t.Error("Expected cards with different definitions to be different values")
	}
}

func TestCardValidate(t *testing.T) {
	t.Parallel()

	validCard := Card{Term: "A", Definition: "X"}
	if err := validCard.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// An empty term is still a card; the console accepts blank input
	emptyTerm := Card{Term: "", Definition: "X"}
	if err := emptyTerm.Validate(); err != nil {
		t.Errorf("Expected no error for empty term, got %v", err)
	}

	invalidCard := validCard
	invalidCard.Mistakes = -3
	if err := invalidCard.Validate(); err != ErrCardMistakesNegative {
		t.Errorf("Expected error %v, got %v", ErrCardMistakesNegative, err)
	}
}

func TestCardHasDefinition(t *testing.T) {
	t.Parallel()

	card := Card{Term: "A", Definition: "X"}
	if !card.HasDefinition("X") {
		t.Error("Expected definition X to match")
	}
	if card.HasDefinition("x") {
		t.Error("Expected definition matching to be case sensitive")
	}
}
