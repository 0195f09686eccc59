package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readSecret reads a password from in without echoing it when in is a
// terminal. Otherwise the first line of in is used.
func readSecret(in *os.File, prompt io.Writer) (string, error) {
	fd := int(in.Fd())

	if term.IsTerminal(fd) {
		fmt.Fprint(prompt, "Enter password: ")
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		return string(password), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
