package passgen

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tokenKind classifies a biographical group for capitalization scoping.
type tokenKind int

const (
	kindName tokenKind = iota
	kindSurname
	kindNumber
)

// group holds alternative tokens: one arrangement draws at most one token
// from each group, so a nickname equal to the first name collapses into a
// single pick.
type group struct {
	kind   tokenKind
	tokens []string
}

// buildGroups assembles the biographical token groups from the config.
// The name-like group carries the first name plus nicknames, the
// surname-like group the last name plus its variants. Empty groups are
// dropped entirely.
func buildGroups(c Config) []group {
	var groups []group

	nameTokens := cleanTokens(append([]string{c.FirstName}, c.Nicknames...))
	if len(nameTokens) > 0 {
		groups = append(groups, group{kind: kindName, tokens: nameTokens})
	}

	surnameTokens := cleanTokens(append([]string{c.LastName}, c.SurnameVariants...))
	if len(surnameTokens) > 0 {
		groups = append(groups, group{kind: kindSurname, tokens: surnameTokens})
	}

	if numbers := cleanTokens(c.Numbers); len(numbers) > 0 {
		groups = append(groups, group{kind: kindNumber, tokens: numbers})
	}

	return groups
}

// inScope reports whether CapsTokens applies to the given group kind.
// Number groups are never capitalized.
func inScope(kind tokenKind, scope CapsScope) bool {
	switch kind {
	case kindName:
		return scope == ScopeNames || scope == ScopeBoth
	case kindSurname:
		return scope == ScopeSurnames || scope == ScopeBoth
	default:
		return false
	}
}

// variantLists expands every group into its sorted, deduplicated set of
// string variants: the token as entered and its lowercase form, plus a
// capitalized form when the CapsTokens policy covers the group. The caser
// is created per run because cases.Caser is not safe for concurrent use.
func variantLists(groups []group, caps CapsMode, scope CapsScope) [][]string {
	caser := cases.Title(language.Und)

	lists := make([][]string, len(groups))
	for i, g := range groups {
		seen := make(map[string]struct{})
		for _, tok := range g.tokens {
			seen[tok] = struct{}{}
			seen[strings.ToLower(tok)] = struct{}{}
			if caps == CapsTokens && inScope(g.kind, scope) {
				seen[caser.String(strings.ToLower(tok))] = struct{}{}
			}
		}

		variants := make([]string, 0, len(seen))
		for v := range seen {
			variants = append(variants, v)
		}
		sort.Strings(variants)
		lists[i] = variants
	}
	return lists
}
