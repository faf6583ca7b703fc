package passgen

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// assemble concatenates each token tuple with every combination of
// separator sequences filling the tuple's gaps, applies the firstchar
// policy, and filters by length. Duplicates pass through untouched; the
// finalizer owns deduplication.
func assemble(tuples iter.Seq[[]string], separators []string, caps CapsMode, bounds LengthBounds) iter.Seq[string] {
	return func(yield func(string) bool) {
		emit := func(candidate string) bool {
			if caps == CapsFirstChar {
				candidate = upperFirst(candidate)
			}
			if n := utf8.RuneCountInString(candidate); n < bounds.Min || n > bounds.Max {
				return true
			}
			return yield(candidate)
		}

		var b strings.Builder
		for tuple := range tuples {
			if len(tuple) == 1 {
				if !emit(tuple[0]) {
					return
				}
				continue
			}

			// Each gap independently picks one separator sequence;
			// gapChoice is an odometer over those picks.
			gaps := len(tuple) - 1
			gapChoice := make([]int, gaps)
			for {
				b.Reset()
				for i, part := range tuple {
					b.WriteString(part)
					if i < gaps {
						b.WriteString(separators[gapChoice[i]])
					}
				}
				if !emit(b.String()) {
					return
				}

				pos := gaps - 1
				for pos >= 0 {
					gapChoice[pos]++
					if gapChoice[pos] < len(separators) {
						break
					}
					gapChoice[pos] = 0
					pos--
				}
				if pos < 0 {
					break
				}
			}
		}
	}
}

// upperFirst uppercases the first rune when it is a letter, leaving the
// string unchanged otherwise.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsLetter(r) {
		return s
	}
	u := unicode.ToUpper(r)
	if u == r {
		return s
	}
	return string(u) + s[size:]
}
