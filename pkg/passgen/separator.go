package passgen

import "sort"

// separatorSequences builds every symbol sequence that may fill a gap
// between two token parts, including the empty "join directly" sequence.
// The result is deduplicated and sorted so iteration order is stable; every
// gap in a candidate draws independently from this one set.
func separatorSequences(symbols []string, spec SeparatorSpec) []string {
	symbols = dedupe(cleanTokens(symbols))

	seen := map[string]struct{}{"": {}}
	if len(symbols) > 0 && spec.MaxPerGap > 0 {
		if spec.AllowRepeat {
			collectPower(symbols, spec.MaxPerGap, seen)
		} else {
			maxLen := min(spec.MaxPerGap, len(symbols))
			collectPermutations(symbols, maxLen, seen)
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// dedupe removes duplicate symbols while preserving first-seen order, so a
// twice-entered symbol cannot sneak a repeat past AllowRepeat=false.
func dedupe(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := symbols[:0]
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// collectPower adds every Cartesian power of the symbol alphabet with
// length 1..maxLen (repeats allowed).
func collectPower(symbols []string, maxLen int, out map[string]struct{}) {
	var walk func(prefix string, depth int)
	walk = func(prefix string, depth int) {
		if depth == 0 {
			return
		}
		for _, s := range symbols {
			seq := prefix + s
			out[seq] = struct{}{}
			walk(seq, depth-1)
		}
	}
	walk("", maxLen)
}

// collectPermutations adds every permutation without repetition of distinct
// symbols with length 1..maxLen.
func collectPermutations(symbols []string, maxLen int, out map[string]struct{}) {
	used := make([]bool, len(symbols))

	var walk func(prefix string, depth int)
	walk = func(prefix string, depth int) {
		if depth == 0 {
			return
		}
		for i, s := range symbols {
			if used[i] {
				continue
			}
			used[i] = true
			seq := prefix + s
			out[seq] = struct{}{}
			walk(seq, depth-1)
			used[i] = false
		}
	}
	walk("", maxLen)
}
