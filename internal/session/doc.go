// Package session implements the interactive command loop of the flashcards
// tool. A Session owns the deck service, the console and its transcript,
// reads one command per line and runs the matching action until the user
// exits or the input ends.
package session
