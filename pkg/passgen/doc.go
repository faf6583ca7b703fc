// Package passgen generates targeted password candidates by combining
// user-supplied biographical tokens or keyword sets with numbers, symbol
// separators and capitalization transforms.
//
// Two pipelines feed one assembler. The biographical pipeline builds token
// groups (first name plus nicknames, last name plus surname variants, and
// numbers), then enumerates every ordered arrangement of 1..MaxArity parts
// where each part comes from a distinct group. The keyword-mix pipeline
// permutes 1..MaxWords distinct keywords from a flat set. Both feed the
// assembler, which fills each gap between parts with a symbol sequence,
// applies the capitalization policy and keeps only candidates whose length
// falls inside the configured bounds (6..25 by default).
//
// # Architecture
//
// The engine is a chain of lazy iter.Seq stages: pipeline → separator
// injection → assembly → length filter. Nothing is materialized until the
// finalizer collects the surviving candidates into a set, removing exact
// duplicates, and shuffles the unique remainder with a per-run randomness
// source. The only full materialization point is that set, which is why
// Generate can be gated beforehand by Estimate: a closed-form count over
// group sizes, arrangement arity and separator counts that never undercounts
// the enumeration.
//
// # Usage
//
//	import "github.com/lozambet/brutedict/pkg/passgen"
//
//	gen := passgen.New(
//	    passgen.WithConfirm(func(estimate int) bool {
//	        return estimate < 10_000_000 // or ask the user
//	    }),
//	)
//
//	rs, err := gen.Generate(passgen.Config{
//	    Mode:      passgen.ModeBiographical,
//	    FirstName: "ana",
//	    LastName:  "reis",
//	    Numbers:   []string{"1987"},
//	    Symbols:   []string{"_", "!"},
//	    Separator: passgen.SeparatorSpec{MaxPerGap: 1, AllowRepeat: true},
//	    Caps:      passgen.CapsTokens,
//	})
//	if err != nil {
//	    // configuration problem, matches passgen.ErrInvalidConfig
//	}
//	for _, candidate := range rs.Candidates {
//	    fmt.Println(candidate)
//	}
//
// # Error Handling
//
// Invalid configurations fail synchronously before any generation work:
// every validation error matches ErrInvalidConfig via errors.Is, with a
// more specific sentinel (ErrNoKeywords, ErrInvalidMaxArity, ...) joined in.
// A declined large-run confirmation is not an error: Generate returns an
// empty ResultSet and nil.
//
// # Concurrency
//
// A run is single-threaded and self-contained. The Generator itself holds
// only the threshold, the confirm callback and the shuffle source; reusing
// one Generator across sequential runs is fine, concurrent calls to
// Generate on a shared Generator race on the shuffle source.
package passgen
