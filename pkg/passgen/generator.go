package passgen

import (
	"iter"
	"math/rand"
	"sort"
	"time"
)

// DefaultThreshold is the estimate above which a configured confirm
// callback must approve the run before generation starts.
const DefaultThreshold = 2_000_000

// ConfirmFunc decides whether a run whose estimate exceeds the threshold
// may proceed. Returning false aborts the run cleanly.
type ConfirmFunc func(estimate int) bool

// ResultSet is the finalized output of one run: deduplicated, shuffled,
// ready for persistence. It is handed off exactly once and never reused.
type ResultSet struct {
	Candidates []string
}

// Count returns the number of unique candidates.
func (rs *ResultSet) Count() int {
	return len(rs.Candidates)
}

// Generator runs the combination pipelines. A Generator carries no state
// between runs and is safe to reuse; each run gets its own token groups,
// separator set and result set.
type Generator struct {
	threshold int
	confirm   ConfirmFunc
	rnd       *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithThreshold overrides the large-run estimate threshold.
func WithThreshold(n int) Option {
	return func(g *Generator) { g.threshold = n }
}

// WithConfirm installs the large-run confirmation callback. Without one,
// runs of any size proceed unasked.
func WithConfirm(f ConfirmFunc) Option {
	return func(g *Generator) { g.confirm = f }
}

// WithRand injects the shuffle randomness source, which makes result order
// reproducible in tests. Nil sources are ignored.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

// New creates a Generator with the default threshold, no confirmation
// gate, and a time-seeded shuffle source.
func New(opts ...Option) *Generator {
	g := &Generator{
		threshold: DefaultThreshold,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Estimate computes the pre-generation cardinality upper bound for the
// config without materializing any candidate.
func (g *Generator) Estimate(cfg Config) (int, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	return estimate(cfg), nil
}

func estimate(cfg Config) int {
	separatorCount := len(separatorSequences(cfg.Symbols, cfg.Separator))

	if cfg.Mode == ModeKeywordMix {
		return estimateKeywords(len(cleanTokens(cfg.Keywords)), cfg.MaxWords, separatorCount)
	}

	lists := variantLists(buildGroups(cfg), cfg.Caps, cfg.CapsScope)
	sizes := make([]int, len(lists))
	for i, l := range lists {
		sizes[i] = len(l)
	}
	return estimateBiographical(sizes, cfg.MaxArity, separatorCount)
}

// Generate runs the full pipeline for the config: enumerate token tuples,
// inject separators, assemble and filter candidates, then deduplicate and
// shuffle. When the estimate exceeds the threshold and a confirm callback
// declines, the run aborts cleanly with an empty ResultSet and no error.
func (g *Generator) Generate(cfg Config) (*ResultSet, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if g.confirm != nil {
		if est := estimate(cfg); est > g.threshold && !g.confirm(est) {
			return &ResultSet{}, nil
		}
	}

	separators := separatorSequences(cfg.Symbols, cfg.Separator)

	var tuples iter.Seq[[]string]
	switch cfg.Mode {
	case ModeKeywordMix:
		tuples = keywordTuples(cleanTokens(cfg.Keywords), cfg.MaxWords)
	default:
		tuples = biographicalTuples(variantLists(buildGroups(cfg), cfg.Caps, cfg.CapsScope), cfg.MaxArity)
	}

	seen := make(map[string]struct{})
	for candidate := range assemble(tuples, separators, cfg.Caps, cfg.Length) {
		seen[candidate] = struct{}{}
	}

	// Sort before shuffling so an injected source yields the same order
	// for the same inputs; map iteration would defeat that.
	out := make([]string, 0, len(seen))
	for candidate := range seen {
		out = append(out, candidate)
	}
	sort.Strings(out)
	g.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return &ResultSet{Candidates: out}, nil
}
