package wordlist_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lozambet/brutedict/pkg/wordlist"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("one candidate per line in order", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := wordlist.Write(&buf, []string{"anareis", "reisana", "ana_reis"}, nil)
		require.NoError(t, err)
		require.Equal(t, "anareis\nreisana\nana_reis\n", buf.String())
	})

	t.Run("empty input writes nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := wordlist.Write(&buf, nil, nil)
		require.NoError(t, err)
		require.Zero(t, buf.Len())
	})

	t.Run("progress reports monotonically and finishes at total", func(t *testing.T) {
		t.Parallel()
		candidates := make([]string, 250)
		for i := range candidates {
			candidates[i] = "candidate"
		}

		var calls [][2]int
		err := wordlist.Write(&bytes.Buffer{}, candidates, func(current, total int) {
			calls = append(calls, [2]int{current, total})
		})
		require.NoError(t, err)
		require.NotEmpty(t, calls)

		prev := 0
		for _, call := range calls {
			require.Greater(t, call[0], prev)
			require.Equal(t, len(candidates), call[1])
			prev = call[0]
		}
		require.Equal(t, len(candidates), calls[len(calls)-1][0])
	})
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out", "wordlist.txt")
		err := wordlist.WriteFile(path, []string{"anareis"}, nil)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "anareis\n", string(data))
	})

	t.Run("truncates an existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "wordlist.txt")
		require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

		err := wordlist.WriteFile(path, []string{"fresh"}, nil)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "fresh\n", string(data))
	})
}
