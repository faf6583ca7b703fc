package passgen

import "iter"

// keywordTuples enumerates every permutation of 1..maxWords distinct
// keywords. Order matters, a keyword never repeats within one tuple, and
// subset sizes grow from single keywords up to the bound.
func keywordTuples(keywords []string, maxWords int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		maxParts := min(maxWords, len(keywords))
		used := make([]bool, len(keywords))
		tuple := make([]string, maxParts)

		var walk func(pos, parts int) bool
		walk = func(pos, parts int) bool {
			for i, kw := range keywords {
				if used[i] {
					continue
				}
				used[i] = true
				tuple[pos] = kw
				if pos+1 == parts {
					if !yield(tuple[:parts]) {
						used[i] = false
						return false
					}
				} else if !walk(pos+1, parts) {
					used[i] = false
					return false
				}
				used[i] = false
			}
			return true
		}

		for parts := 1; parts <= maxParts; parts++ {
			if !walk(0, parts) {
				return
			}
		}
	}
}
