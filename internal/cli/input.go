package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword. Tests replace it to
// avoid touching the terminal.
var readPassword = term.ReadPassword

// promptLine prints a prompt and reads one trimmed line. A partial line at
// EOF still counts as input.
func (a *App) promptLine(prompt string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", prompt)
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo.
func (a *App) promptPassword(prompt string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", prompt)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// confirm asks a yes/no question, defaulting to no.
func (a *App) confirm(prompt string) (bool, error) {
	answer, err := a.promptLine(prompt + " [y/N]")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// argOrPrompt returns the first positional argument when present, otherwise
// prompts for the value.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return a.promptLine(prompt)
}
