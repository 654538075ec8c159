// Package events provides the session events published by the deck service.
//
// Services emit events without knowing which handlers will process them.
// The only handler shipped with the tool writes events to the structured
// log, which keeps a machine-readable trail of a quiz session next to the
// human-readable transcript.
//
// The primary components are:
// - SessionEvent: something that happened to the deck
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
