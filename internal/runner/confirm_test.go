package runner

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScriptedTerminal(input string) (*TerminalConfirmer, *bytes.Buffer) {
	var out bytes.Buffer
	return &TerminalConfirmer{
		in:  bufio.NewScanner(strings.NewReader(input)),
		out: &out,
	}, &out
}

func TestTerminalConfirmer_Answers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "lowercase y affirms", input: "y\n", expected: true},
		{name: "uppercase Y affirms", input: "Y\n", expected: true},
		{name: "n declines", input: "n\n", expected: false},
		{name: "empty line declines", input: "\n", expected: false},
		{name: "yes declines, only literal y counts", input: "yes\n", expected: false},
		{name: "padded y declines", input: " y\n", expected: false},
		{name: "immediate EOF declines", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmer, out := newScriptedTerminal(tt.input)

			confirmed, err := confirmer.Confirm("Restore snap-1? (y/n): ")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, confirmed)
			assert.Equal(t, "Restore snap-1? (y/n): ", out.String())
		})
	}
}

func TestTerminalConfirmer_SequentialPrompts(t *testing.T) {
	confirmer, _ := newScriptedTerminal("y\nn\nY\n")

	first, err := confirmer.Confirm("one? ")
	require.NoError(t, err)
	second, err := confirmer.Confirm("two? ")
	require.NoError(t, err)
	third, err := confirmer.Confirm("three? ")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.True(t, third)
}
