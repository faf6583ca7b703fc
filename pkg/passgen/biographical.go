package passgen

import "iter"

// biographicalTuples enumerates every ordered arrangement of 1..maxArity
// token parts, where each part comes from a distinct group and all group
// orderings are visited. The sequence is lazy and restartable; nothing is
// shared between iterations of the same run or across runs.
func biographicalTuples(variants [][]string, maxArity int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		maxParts := min(maxArity, len(variants))
		used := make([]bool, len(variants))
		tuple := make([]string, maxParts)

		// walk fixes one group per position, then fans out over that
		// group's variants before recursing into the next position.
		var walk func(pos, parts int) bool
		walk = func(pos, parts int) bool {
			for gi := range variants {
				if used[gi] {
					continue
				}
				used[gi] = true
				for _, v := range variants[gi] {
					tuple[pos] = v
					if pos+1 == parts {
						if !yield(tuple[:parts]) {
							used[gi] = false
							return false
						}
					} else if !walk(pos+1, parts) {
						used[gi] = false
						return false
					}
				}
				used[gi] = false
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
