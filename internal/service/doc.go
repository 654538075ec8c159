// Package service provides the deck service: the card-collection actions
// the console session performs (add, remove, quiz, import, export, hardest,
// reset) on top of a store.CardStore, the cardfile codec and the event
// emitter.
package service
