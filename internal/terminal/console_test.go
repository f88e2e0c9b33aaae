package terminal

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_ReadLine(t *testing.T) {
	c := NewConsole(strings.NewReader("hello\nworld\n"), io.Discard, false)

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "world", line)

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsole_ReadLine_CRLF(t *testing.T) {
	c := NewConsole(strings.NewReader("hello\r\n"), io.Discard, false)
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}

// A final line without a trailing newline is still delivered before EOF.
func TestConsole_ReadLine_MissingFinalNewline(t *testing.T) {
	c := NewConsole(strings.NewReader("last"), io.Discard, false)
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsole_WriteLine_ColorEnabled(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, true)
	require.NoError(t, c.WriteLine(Colorize(Red, "alert")))
	assert.Equal(t, "\033[31malert\033[0m\n", out.String())
}

func TestConsole_WriteLine_ColorDisabledStripsANSI(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, false)
	require.NoError(t, c.WriteLine(Colorize(Red, "alert")))
	assert.Equal(t, "alert\n", out.String())
}

func TestConsole_WritePrompt_NoNewline(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, false)
	require.NoError(t, c.WritePrompt("Enter option: "))
	assert.Equal(t, "Enter option: ", out.String())
}

func TestConsole_Blank(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, false)
	require.NoError(t, c.Blank())
	assert.Equal(t, "\n", out.String())
}
