package matching

import "strings"

// SkillSet is a de-duplicated list of lower-cased, trimmed skill tokens.
// Order is first-seen order so that every derived output stays deterministic.
type SkillSet []string

// NormalizeToken trims and lower-cases a single skill token.
func NormalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalize drops blank tokens and duplicates after NormalizeToken.
func Normalize(raw []string) SkillSet {
	out := make(SkillSet, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		tok := NormalizeToken(r)
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// Contains reports whether the normalized tok is in s.
func (s SkillSet) Contains(tok string) bool {
	tok = NormalizeToken(tok)
	for _, it := range s {
		if it == tok {
			return true
		}
	}
	return false
}

func (s SkillSet) lookup() map[string]struct{} {
	m := make(map[string]struct{}, len(s))
	for _, it := range s {
		m[it] = struct{}{}
	}
	return m
}

// Similarity is the Jaccard index of a and b. Either side empty yields 0.
func Similarity(a, b SkillSet) float64 {
	a = Normalize(a)
	b = Normalize(b)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	inA := a.lookup()
	inter := 0
	for _, it := range b {
		if _, ok := inA[it]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
