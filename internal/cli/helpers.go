package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ResolveInput returns the explicit input when the flag was set, otherwise
// reads a single line from stdin (trailing newline stripped). An EOF on an
// empty stdin yields the empty input, which is a valid tape.
func ResolveInput(explicit string, set bool, stdin io.Reader) (string, error) {
	if set {
		return explicit, nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
