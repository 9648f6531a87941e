package matching

import "sort"

// BuildLearningPath collects the skills required by the supplied transitions
// that a does not hold yet, caps them at maxSkills in first-seen order, and
// attaches the direct prerequisites from edges. Skills without prerequisites
// are ranked high and come first.
//
// Prerequisites are resolved one level deep only. Chains (a -> b -> c) are
// not followed and cycles are not detected. A negative maxSkills yields no
// steps.
func BuildLearningPath(a Actor, transitions []Transition, edges []SkillEdge, maxSkills int) []LearningStep {
	have := Normalize(a.Skills).lookup()

	candidates := make([]string, 0)
	seen := make(map[string]struct{})
	for _, t := range transitions {
		for _, s := range Normalize(t.RequiredSkills) {
			if _, ok := have[s]; ok {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			candidates = append(candidates, s)
		}
	}
	candidates = candidates[:clampInt(maxSkills, 0, len(candidates))]

	prereqs := prerequisiteIndex(edges)

	out := make([]LearningStep, 0, len(candidates))
	for _, s := range candidates {
		pre := prereqs[s]
		if pre == nil {
			pre = []string{}
		}
		priority := PriorityHigh
		if len(pre) > 0 {
			priority = PriorityMedium
		}
		out = append(out, LearningStep{Skill: s, Prerequisites: pre, Priority: priority})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority == PriorityHigh && out[j].Priority != PriorityHigh
	})
	return out
}

// prerequisiteIndex maps target skill -> source skills of its incoming
// prerequisite edges, in edge order, de-duplicated.
func prerequisiteIndex(edges []SkillEdge) map[string][]string {
	idx := make(map[string][]string)
	for _, e := range edges {
		if RelationKind(NormalizeToken(string(e.Kind))) != RelationPrerequisite {
			continue
		}
		src := NormalizeToken(e.Source)
		dst := NormalizeToken(e.Target)
		if src == "" || dst == "" || src == dst {
			continue
		}
		dup := false
		for _, existing := range idx[dst] {
			if existing == src {
				dup = true
				break
			}
		}
		if !dup {
			idx[dst] = append(idx[dst], src)
		}
	}
	return idx
}
