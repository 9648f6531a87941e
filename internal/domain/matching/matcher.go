package matching

import "strings"

// SkillMatcher decides whether a held skill satisfies a wanted skill.
// Both arguments are already normalized.
type SkillMatcher func(have, want string) bool

// ContainmentMatch is the default heuristic: equal, or either token is a
// substring of the other ("react" satisfies "react native" and vice versa).
func ContainmentMatch(have, want string) bool {
	if have == "" || want == "" {
		return false
	}
	return strings.Contains(want, have) || strings.Contains(have, want)
}

func ExactMatch(have, want string) bool {
	return have != "" && have == want
}

// AliasMatcher matches exactly, or through an alias table keyed by canonical
// skill name ("javascript": {"js", "ecmascript"}).
func AliasMatcher(aliases map[string][]string) SkillMatcher {
	canon := make(map[string]string, len(aliases))
	for k, vs := range aliases {
		key := NormalizeToken(k)
		if key == "" {
			continue
		}
		canon[key] = key
		for _, v := range vs {
			v = NormalizeToken(v)
			if v == "" {
				continue
			}
			canon[v] = key
		}
	}

	resolve := func(s string) string {
		if c, ok := canon[s]; ok {
			return c
		}
		return s
	}

	return func(have, want string) bool {
		if have == "" || want == "" {
			return false
		}
		return resolve(have) == resolve(want)
	}
}

// DefaultAliases is a small alias table for AliasMatcher.
var DefaultAliases = map[string][]string{
	"javascript": {"js", "ecmascript"},
	"typescript": {"ts"},
	"postgresql": {"postgres", "psql"},
	"kubernetes": {"k8s"},
	"golang":     {"go"},
	"node.js":    {"node", "nodejs"},
}

func matchAny(m SkillMatcher, have SkillSet, want string) bool {
	for _, h := range have {
		if m(h, want) {
			return true
		}
	}
	return false
}
