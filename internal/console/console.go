package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console prints lines to an output and reads answers from an input,
// recording both in its transcript.
type Console struct {
	in         *bufio.Reader
	out        io.Writer
	transcript *Transcript
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:         bufio.NewReader(in),
		out:        out,
		transcript: &Transcript{},
	}
}

// Transcript returns the transcript of everything printed and read so far.
func (c *Console) Transcript() *Transcript {
	return c.transcript
}

// Print writes line to the output and records it.
func (c *Console) Print(line string) {
	c.transcript.Record(line)
	// Terminal write failures are not actionable mid-session.
	_, _ = fmt.Fprintln(c.out, line)
}

// Printf formats according to a format specifier and prints the result as one line.
func (c *Console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// Prompt prints message, then reads and records one line of input without
// its line ending. Returns io.EOF once the input is exhausted.
func (c *Console) Prompt(message string) (string, error) {
	c.Print(message)
	return c.ReadLine()
}

// ReadLine reads and records one line of input without its line ending.
// A final line without a line break is still returned; io.EOF is returned
// only when nothing is left to read.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	c.transcript.Record(line)
	return line, nil
}
