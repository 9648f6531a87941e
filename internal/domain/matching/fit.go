package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Fit scores how well a satisfies r on a 0-100 scale:
// skill overlap (0-50) + preferred role match (0 or 30) + GPA tier bonus (0-20).
func Fit(a Actor, r Requirement, cfg Config) MatchResult {
	have := Normalize(a.Skills)
	want := Normalize(r.Skills)
	m := cfg.matcher()

	matched := make([]string, 0, len(want))
	missing := make([]string, 0)
	for _, w := range want {
		if matchAny(m, have, w) {
			matched = append(matched, w)
			continue
		}
		missing = append(missing, w)
	}

	skillScore := 0.0
	if len(want) > 0 {
		skillScore = skillWeight * float64(len(matched)) / float64(len(want))
	}
	skillScore = clampFloat(skillScore, 0, skillWeight)

	prefScore := 0.0
	prefRole, ok := preferredRoleMatch(a.PreferredRoles, r.Title)
	if ok {
		prefScore = preferenceWeight
	}

	bonus := clampFloat(cfg.qualityBonus(a.GPA), 0, maxQualityBonus)

	score := int(math.Round(skillScore + prefScore + bonus))
	score = clampInt(score, 0, maxFitScore)

	return MatchResult{
		ActorID:         a.ID,
		RequirementID:   r.ID,
		Score:           score,
		SkillScore:      skillScore,
		PreferenceScore: prefScore,
		QualityBonus:    bonus,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Reasoning:       fitReasoning(len(matched), len(want), prefRole, bonus),
		PostedAt:        r.PostedAt,
	}
}

func preferredRoleMatch(roles []string, title string) (string, bool) {
	t := NormalizeToken(title)
	if t == "" {
		return "", false
	}
	for _, role := range roles {
		p := NormalizeToken(role)
		if p == "" {
			continue
		}
		if strings.Contains(t, p) || strings.Contains(p, t) {
			return p, true
		}
	}
	return "", false
}

func fitReasoning(matched, required int, prefRole string, bonus float64) string {
	parts := make([]string, 0, 3)
	if required == 0 {
		parts = append(parts, "no required skills listed")
	} else {
		parts = append(parts, fmt.Sprintf("matches %d of %d required skills", matched, required))
	}
	if prefRole != "" {
		parts = append(parts, fmt.Sprintf("title matches preferred role %q", prefRole))
	}
	if bonus > 0 {
		parts = append(parts, fmt.Sprintf("academic bonus %g", bonus))
	}
	return strings.Join(parts, "; ")
}

// ScoreJobFit is the validated single-pair entry point.
func ScoreJobFit(a Actor, r Requirement, cfg Config) (MatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return MatchResult{}, err
	}
	if a.ID == uuid.Nil {
		return MatchResult{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	if r.ID == uuid.Nil {
		return MatchResult{}, fmt.Errorf("%w: requirement id is required", ErrInvalidInput)
	}
	return Fit(a, r, cfg), nil
}

// RankFits drops results under cfg.MinFitScore and orders the rest by score
// descending, then posting recency, then requirement id, then actor id.
// The caller bounds the output.
func RankFits(results []MatchResult, cfg Config) []MatchResult {
	out := make([]MatchResult, 0, len(results))
	for _, res := range results {
		if res.Score < cfg.MinFitScore {
			continue
		}
		out = append(out, res)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.PostedAt.Equal(b.PostedAt) {
			return a.PostedAt.After(b.PostedAt)
		}
		if a.RequirementID != b.RequirementID {
			return a.RequirementID.String() < b.RequirementID.String()
		}
		return a.ActorID.String() < b.ActorID.String()
	})
	return out
}

// RecommendJobs scores a against every requirement and keeps the top cfg.TopJobs.
func RecommendJobs(a Actor, reqs []Requirement, cfg Config) ([]MatchResult, []Diagnostic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if a.ID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	reqs, diags := boundRequirements(reqs, cfg.MaxPoolSize)
	results := make([]MatchResult, 0, len(reqs))
	for i, r := range reqs {
		if r.ID == uuid.Nil {
			diags = append(diags, skipped("requirements", i, "requirement id is required"))
			continue
		}
		results = append(results, Fit(a, r, cfg))
	}
	return truncateResults(RankFits(results, cfg), cfg.TopJobs), diags, nil
}

// MatchCandidates ranks actors against a single requirement and keeps the top cfg.TopCandidates.
func MatchCandidates(r Requirement, actors []Actor, cfg Config) ([]MatchResult, []Diagnostic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if r.ID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: requirement id is required", ErrInvalidInput)
	}

	actors, diags := boundActors(actors, cfg.MaxPoolSize, "candidates")
	results := make([]MatchResult, 0, len(actors))
	for i, a := range actors {
		if a.ID == uuid.Nil {
			diags = append(diags, skipped("candidates", i, "actor id is required"))
			continue
		}
		results = append(results, Fit(a, r, cfg))
	}
	return truncateResults(RankFits(results, cfg), cfg.TopCandidates), diags, nil
}

func truncateResults(in []MatchResult, n int) []MatchResult {
	if n >= 0 && len(in) > n {
		return in[:n]
	}
	return in
}
