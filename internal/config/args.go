package config

import (
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Startup argument names.
const (
	ArgImport = "import"
	ArgExport = "export"
)

// newFlagSet builds the flag set for the startup arguments. Unknown flags and
// positional arguments are ignored.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("flashcards", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.String(ArgImport, "", "deck file to load before the first prompt")
	fs.String(ArgExport, "", "deck file to save to on exit")
	return fs
}

// normalizeArgs rewrites the single-dash long forms "-import" and "-export"
// (with or without "=value") to the double-dash forms pflag expects. A
// startup flag without a value, because it is the last argument or the next
// one is another flag, is dropped.
func normalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))
	for i, arg := range args {
		name, ok := startupFlag(arg)
		if !ok {
			normalized = append(normalized, arg)
			continue
		}
		if !strings.Contains(arg, "=") && !hasValue(args, i) {
			continue
		}
		normalized = append(normalized, "--"+name+strings.TrimPrefix(strings.TrimLeft(arg, "-"), name))
	}
	return normalized
}

// startupFlag reports which startup flag arg names, in any dash form.
func startupFlag(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false
	}
	bare := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	for _, name := range []string{ArgImport, ArgExport} {
		if bare == name || strings.HasPrefix(bare, name+"=") {
			return name, true
		}
	}
	return "", false
}

// hasValue reports whether the flag at args[i] is followed by a value.
func hasValue(args []string, i int) bool {
	return i+1 < len(args) && !strings.HasPrefix(args[i+1], "-")
}

// parseArgs parses the startup arguments into a flag set.
func parseArgs(args []string) (*pflag.FlagSet, error) {
	fs := newFlagSet()
	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return nil, err
	}
	return fs, nil
}
