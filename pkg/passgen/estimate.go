package passgen

import "math"

// The estimator works purely on set sizes so it can gate generation before
// any candidate exists. It deliberately ignores the length filter, which
// makes it an upper bound on (never an undercount of) the true pre-filter
// enumeration; with deduplication downstream the final ResultSet can only
// shrink further.

// estimateBiographical sums, for every arity r up to the bound, the ordered
// r-group selections weighted by each group's variant-set size, times the
// separator choices for the r-1 gaps.
func estimateBiographical(variantSizes []int, maxArity, separatorCount int) int {
	maxParts := min(maxArity, len(variantSizes))
	used := make([]bool, len(variantSizes))

	total := 0
	var walk func(remaining, product int)
	walk = func(remaining, product int) {
		if remaining == 0 {
			return
		}
		// An arrangement closed at this depth has gaps = parts - 1.
		gaps := maxParts - remaining
		for i, size := range variantSizes {
			if used[i] {
				continue
			}
			p := mulSat(product, size)
			total = addSat(total, mulSat(p, powSat(separatorCount, gaps)))
			used[i] = true
			walk(remaining-1, p)
			used[i] = false
		}
	}
	walk(maxParts, 1)
	return total
}

// estimateKeywords counts permutations of 1..maxWords distinct keywords,
// times the separator choices for each arity's gaps.
func estimateKeywords(keywordCount, maxWords, separatorCount int) int {
	maxParts := min(maxWords, keywordCount)

	total := 0
	perms := 1
	for r := 1; r <= maxParts; r++ {
		perms = mulSat(perms, keywordCount-r+1)
		total = addSat(total, mulSat(perms, powSat(separatorCount, r-1)))
	}
	return total
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

func powSat(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out = mulSat(out, base)
	}
	return out
}
