package refactor

import "github.com/CWBudde/go-csrefactor-lsp/internal/symbols"

// IsCompatible reports whether two member-name sets share at least one name.
// It is a coarse gate used to pick a copy source among constructor
// parameters, not a guarantee that any member will be copied.
func IsCompatible(a, b []string) bool {
	if len(a) > len(b) {
		a, b = b, a
	}

	seen := make(map[string]struct{}, len(a))
	for _, name := range a {
		seen[name] = struct{}{}
	}

	for _, name := range b {
		if _, ok := seen[name]; ok {
			return true
		}
	}

	return false
}

// MatchResult is the resolution of one target member against a source type.
type MatchResult struct {
	Target symbols.Member
	// MatchedSource is the name of the source member sharing the target's
	// name, or "" when there is none.
	MatchedSource string
	// Compatible is set only when the source member also has the same type.
	Compatible bool
}

// Resolve returns one result per target member, in target order. The first
// source member with the target's name is considered.
func Resolve(target, source []symbols.Member) []MatchResult {
	byName := make(map[string]symbols.Member, len(source))
	for _, m := range source {
		if _, dup := byName[m.Name]; !dup {
			byName[m.Name] = m
		}
	}

	results := make([]MatchResult, len(target))

	for i, t := range target {
		results[i] = MatchResult{Target: t}

		s, ok := byName[t.Name]
		if !ok {
			continue
		}

		results[i].MatchedSource = s.Name
		results[i].Compatible = s.Type.Equal(t.Type)
	}

	return results
}

// AnyCompatible reports whether at least one result is a strict match.
func AnyCompatible(results []MatchResult) bool {
	for _, r := range results {
		if r.Compatible {
			return true
		}
	}

	return false
}
