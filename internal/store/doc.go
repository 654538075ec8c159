// Package store defines interfaces for holding the deck's cards.
// These interfaces keep the session and service logic independent of how
// cards are kept in memory.
package store
