package passgen_test

import (
	"math/rand"
	"testing"

	"github.com/lozambet/brutedict/pkg/passgen"
)

func BenchmarkGenerate(b *testing.B) {
	gen := passgen.New(passgen.WithRand(rand.New(rand.NewSource(1))))

	b.Run("Biographical", func(b *testing.B) {
		cfg := passgen.Config{
			Mode:      passgen.ModeBiographical,
			FirstName: "ana",
			LastName:  "reis",
			Nicknames: []string{"ani"},
			Numbers:   []string{"7", "1987"},
			Symbols:   []string{"_", "!"},
			Separator: passgen.SeparatorSpec{MaxPerGap: 1, AllowRepeat: true},
			Caps:      passgen.CapsTokens,
		}
		b.ReportAllocs()
		for b.Loop() {
			_, _ = gen.Generate(cfg)
		}
	})

	b.Run("KeywordMix", func(b *testing.B) {
		cfg := passgen.Config{
			Mode:     passgen.ModeKeywordMix,
			Keywords: []string{"sunrise", "moonset", "eclipse", "horizon"},
			MaxWords: 3,
			Symbols:  []string{"-"},
			Separator: passgen.SeparatorSpec{
				MaxPerGap: 1, AllowRepeat: true,
			},
		}
		b.ReportAllocs()
		for b.Loop() {
			_, _ = gen.Generate(cfg)
		}
	})
}

func BenchmarkEstimate(b *testing.B) {
	gen := passgen.New()
	cfg := passgen.Config{
		Mode:      passgen.ModeBiographical,
		FirstName: "ana",
		LastName:  "reis",
		Nicknames: []string{"ani", "anita"},
		Numbers:   []string{"7", "1987", "87"},
		Symbols:   []string{"_", "!", ".", "-"},
		Separator: passgen.SeparatorSpec{MaxPerGap: 2, AllowRepeat: true},
		Caps:      passgen.CapsTokens,
	}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = gen.Estimate(cfg)
	}
}
