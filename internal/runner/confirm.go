package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Confirmer asks the user a yes/no question. Abstracted so the prompt loop
// can be driven by scripted answers in tests instead of a real terminal.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// TerminalConfirmer reads confirmations line by line from a terminal.
// Only the literal answers "y" and "Y" are affirmative; anything else,
// including an empty line, declines. There is no re-prompt on bad input.
type TerminalConfirmer struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewTerminalConfirmer creates a confirmer on stdin/stdout.
func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}
}

// Confirm prints the prompt and reads one line of input.
func (c *TerminalConfirmer) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprint(c.out, prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		// EOF counts as a decline
		return false, nil
	}

	answer := c.in.Text()
	return answer == "y" || answer == "Y", nil
}
