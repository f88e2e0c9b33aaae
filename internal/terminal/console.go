package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console provides line-oriented interaction over an arbitrary
// reader/writer pair: stdin/stdout in production, buffers in tests.
// When color is disabled, all ANSI sequences are stripped on output.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
	color  bool
}

// NewConsole wraps a reader and writer into a Console.
//
// Precondition: r and w must be non-nil.
// Postcondition: Returns a Console ready for reading and writing.
func NewConsole(r io.Reader, w io.Writer, color bool) *Console {
	return &Console{
		reader: bufio.NewReaderSize(r, 4096),
		writer: w,
		color:  color,
	}
}

// ReadLine reads a single line of input without the trailing newline.
// A trailing \r (from \r\n input) is removed as well.
//
// Postcondition: Returns the next line of text input, or an error
// (including io.EOF once input is exhausted).
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	return line, nil
}

// WriteLine sends a line of text followed by a newline.
//
// Precondition: text should not contain a trailing newline.
func (c *Console) WriteLine(text string) error {
	_, err := fmt.Fprintf(c.writer, "%s\n", c.render(text))
	return err
}

// WritePrompt sends a prompt string without a trailing newline.
func (c *Console) WritePrompt(prompt string) error {
	_, err := fmt.Fprint(c.writer, c.render(prompt))
	return err
}

// Blank writes an empty line.
func (c *Console) Blank() error {
	_, err := fmt.Fprintln(c.writer)
	return err
}

// ColorEnabled reports whether ANSI styling is passed through.
func (c *Console) ColorEnabled() bool { return c.color }

func (c *Console) render(text string) string {
	if c.color {
		return text
	}
	return StripANSI(text)
}
