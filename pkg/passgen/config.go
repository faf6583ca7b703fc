package passgen

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which pipeline feeds the assembler.
type Mode string

const (
	// ModeBiographical combines tokens from the biographical groups
	// (names, surnames, numbers).
	ModeBiographical Mode = "biographical"
	// ModeKeywordMix permutes a flat keyword set.
	ModeKeywordMix Mode = "keyword_mix"
)

// CapsMode controls how capitalization is applied to candidates.
type CapsMode string

const (
	// CapsNone leaves tokens as entered (lowercase forms are still added).
	CapsNone CapsMode = "none"
	// CapsTokens adds a capitalized variant of each token whose group kind
	// is covered by CapsScope.
	CapsTokens CapsMode = "tokens"
	// CapsFirstChar uppercases the first character of the assembled
	// candidate when that character is a letter.
	CapsFirstChar CapsMode = "firstchar"
)

// CapsScope narrows CapsTokens to a subset of the biographical groups.
type CapsScope string

const (
	ScopeNames    CapsScope = "names"
	ScopeSurnames CapsScope = "surnames"
	ScopeBoth     CapsScope = "both"
)

// SeparatorSpec governs the symbol sequences injected between token parts.
type SeparatorSpec struct {
	// MaxPerGap is the maximum number of symbol characters in one gap.
	// Zero means parts are always joined directly.
	MaxPerGap int
	// AllowRepeat permits the same symbol to appear more than once within
	// a single gap.
	AllowRepeat bool
}

// LengthBounds is the inclusive candidate length filter, counted in runes.
type LengthBounds struct {
	Min int
	Max int
}

// Default length bounds. These are deliberately not exposed as user-facing
// settings; tests and embedding code may override Config.Length directly.
const (
	DefaultMinLength = 6
	DefaultMaxLength = 25
)

const (
	defaultMaxArity = 3
	defaultMaxWords = 3
)

// Config describes one generation run. It is assembled up front and never
// mutated once handed to the Generator, so a single Config can be reused
// across runs.
type Config struct {
	Mode Mode

	// Biographical mode inputs. FirstName and Nicknames form the name-like
	// group, LastName and SurnameVariants the surname-like group, Numbers a
	// third group. Empty strings are ignored; a fully empty group simply
	// contributes no parts.
	FirstName       string
	LastName        string
	Nicknames       []string
	SurnameVariants []string
	Numbers         []string

	// MaxArity bounds how many token parts one candidate may contain
	// (1..3). Zero selects the default of 3.
	MaxArity int

	// Keyword-mix mode inputs.
	Keywords []string
	// MaxWords bounds how many keywords one candidate may contain.
	// Zero selects the default of 3.
	MaxWords int

	// Symbols is the separator alphabet shared by both modes.
	Symbols   []string
	Separator SeparatorSpec

	Caps      CapsMode
	CapsScope CapsScope

	// Length is the candidate filter. The zero value selects the
	// [DefaultMinLength, DefaultMaxLength] bounds.
	Length LengthBounds
}

// withDefaults returns a copy of the config with zero values replaced by
// package defaults.
func (c Config) withDefaults() Config {
	if c.Mode == "" {
		c.Mode = ModeBiographical
	}
	if c.MaxArity == 0 {
		c.MaxArity = defaultMaxArity
	}
	if c.MaxWords == 0 {
		c.MaxWords = defaultMaxWords
	}
	if c.Caps == "" {
		c.Caps = CapsNone
	}
	if c.CapsScope == "" {
		c.CapsScope = ScopeBoth
	}
	if c.Length == (LengthBounds{}) {
		c.Length = LengthBounds{Min: DefaultMinLength, Max: DefaultMaxLength}
	}
	return c
}

// Validate checks the config before any generation work begins. Every
// returned error matches ErrInvalidConfig via errors.Is.
func (c Config) Validate() error {
	if c.Separator.MaxPerGap < 0 {
		return errors.Join(ErrInvalidConfig, ErrNegativeSeparatorMax)
	}

	switch c.Mode {
	case ModeBiographical:
		if c.MaxArity < 1 || c.MaxArity > 3 {
			return errors.Join(ErrInvalidConfig, ErrInvalidMaxArity)
		}
		if len(buildGroups(c)) == 0 {
			return errors.Join(ErrInvalidConfig, ErrNoTokenGroups)
		}
	case ModeKeywordMix:
		if c.MaxWords < 1 {
			return errors.Join(ErrInvalidConfig, ErrInvalidMaxWords)
		}
		if len(cleanTokens(c.Keywords)) == 0 {
			return errors.Join(ErrInvalidConfig, ErrNoKeywords)
		}
	default:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode))
	}

	return nil
}

// cleanTokens trims whitespace and drops empty entries, preserving order.
func cleanTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
