// Package memory provides in-process implementations for the storage
// interfaces defined in the internal/store package. Nothing held here
// survives the process; persistence is handled by the cardfile package.
package memory
