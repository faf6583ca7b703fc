package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ProgressFunc observes persistence progress. It is called with the number
// of candidates written so far and the total, at most once per reporting
// step plus a final call at completion. Display concerns (bars, colors)
// live entirely with the caller.
type ProgressFunc func(current, total int)

// Write streams candidates to w, one per line in the given order, with no
// numbering or extra formatting.
func Write(w io.Writer, candidates []string, progress ProgressFunc) error {
	bw := bufio.NewWriter(w)
	total := len(candidates)

	// Roughly one report per percent; always report the final line so the
	// observer can close out its display.
	step := total / 100
	if step < 1 {
		step = 1
	}

	for i, c := range candidates {
		if _, err := bw.WriteString(c); err != nil {
			return fmt.Errorf("write candidate: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write candidate: %w", err)
		}
		if progress != nil && ((i+1)%step == 0 || i+1 == total) {
			progress(i+1, total)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush wordlist: %w", err)
	}
	return nil
}

// WriteFile persists candidates to path, creating parent directories as
// needed and truncating any existing file.
func WriteFile(path string, candidates []string, progress ProgressFunc) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create wordlist directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wordlist file: %w", err)
	}

	if err := Write(f, candidates, progress); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
