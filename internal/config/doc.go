// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, FLASHCARDS_* environment variables
// and the startup arguments. It keeps configuration details separate from
// the session logic.
package config
