package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readLine prompts on Out and reads one trimmed line from In.
func readLine(prompt string) (string, error) {
	fmt.Fprint(Out, prompt)
	r := bufio.NewReader(In)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword prompts without echo when stdin is a terminal, otherwise
// falls back to a plain line read (pipes, tests).
func readPassword(prompt string) (string, error) {
	if f, ok := In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(Out, prompt)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(Out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return readLine(prompt)
}
