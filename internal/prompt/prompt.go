// Package prompt reads the target sentence from the user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Text is written before reading when the input is interactive
const Text = "Enter target sentence: "

// ReadTarget reads one line from r, without its line ending. The prompt is
// written to w only if interactive is true, keeping piped runs quiet.
func ReadTarget(r io.Reader, w io.Writer, interactive bool) (string, error) {
	if interactive {
		if _, err := io.WriteString(w, Text); err != nil {
			return "", err
		}
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		// last line without a newline
	case errors.Is(err, io.EOF):
		return "", errors.New("reading target: no input")
	default:
		return "", fmt.Errorf("reading target: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
