package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword. In tests, replace it
// with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line. The trailing
// newline is trimmed; a partial line before EOF is still returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetOptionalText is GetSimpleText with an empty answer allowed; the
// fallback is returned instead.
func GetOptionalText(reader *bufio.Reader, prompt, fallback string, w io.Writer) (string, error) {
	v, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if v == "" {
		return fallback, nil
	}
	return v, nil
}

// GetInt reads a line and parses it as an integer, returning fallback for
// an empty answer.
func GetInt(reader *bufio.Reader, prompt string, fallback int, w io.Writer) (int, error) {
	v, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. The returned slice should be wiped by the caller
// when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// wipe zeroes a sensitive byte slice after use.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
