package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return &prompter{in: bufio.NewReader(strings.NewReader(input)), out: &out}, &out
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "a,b,c", []string{"a", "b", "c"}},
		{"trims whitespace", " ana , reis ", []string{"ana", "reis"}},
		{"drops empties", "a,,b,", []string{"a", "b"}},
		{"empty input", "", nil},
		{"only separators", ", ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, splitList(tt.input))
		})
	}
}

func TestAsk(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed answer", func(t *testing.T) {
		t.Parallel()
		p, _ := newTestPrompter("  ana  \n")
		require.Equal(t, "ana", p.ask("First name", ""))
	})

	t.Run("empty answer falls back to default", func(t *testing.T) {
		t.Parallel()
		p, _ := newTestPrompter("\n")
		require.Equal(t, "3", p.ask("Max words", "3"))
	})

	t.Run("eof falls back to default", func(t *testing.T) {
		t.Parallel()
		p, _ := newTestPrompter("")
		require.Equal(t, "n", p.ask("Continue?", "n"))
	})
}

func TestAskYesNo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"empty keeps default true", "\n", true, true},
		{"empty keeps default false", "\n", false, false},
		{"garbage is no", "maybe\n", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, _ := newTestPrompter(tt.input)
			require.Equal(t, tt.want, p.askYesNo("Continue anyway?", tt.def))
		})
	}
}

func TestAskInt(t *testing.T) {
	t.Parallel()

	t.Run("parses the answer", func(t *testing.T) {
		t.Parallel()
		p, _ := newTestPrompter("5\n")
		require.Equal(t, 5, askInt(p, "Max words", 3))
	})

	t.Run("non-numeric falls back to default", func(t *testing.T) {
		t.Parallel()
		p, _ := newTestPrompter("lots\n")
		require.Equal(t, 3, askInt(p, "Max words", 3))
	})
}
