// Package domain contains the core entities of the flashcards tool: the Card
// value type and the errors that describe rule violations on a deck. It is
// independent of storage, file formats and the console.
package domain
