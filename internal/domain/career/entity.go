package career

import (
	"math"
	"strings"

	"placement-engine/internal/domain/matching"

	"github.com/google/uuid"
)

// Transition is an observed role change with aggregate outcome statistics.
type Transition struct {
	ID                uuid.UUID
	FromRole          string
	ToRole            string
	RequiredSkills    []string
	SuccessRate       *float64
	AvgTimeMonths     *float64
	SalaryIncreasePct *float64
}

type SkillRelationship struct {
	ID           uuid.UUID
	SourceSkill  string
	TargetSkill  string
	RelationType string
	Strength     *float64
}

func (t Transition) Engine() matching.Transition {
	return matching.Transition{
		FromRole:          strings.TrimSpace(t.FromRole),
		ToRole:            strings.TrimSpace(t.ToRole),
		RequiredSkills:    matching.Normalize(t.RequiredSkills),
		SuccessRate:       orZero(t.SuccessRate),
		AvgTimeMonths:     orZero(t.AvgTimeMonths),
		SalaryIncreasePct: orZero(t.SalaryIncreasePct),
	}
}

func (r SkillRelationship) Edge() matching.SkillEdge {
	return matching.SkillEdge{
		Source:   matching.NormalizeToken(r.SourceSkill),
		Target:   matching.NormalizeToken(r.TargetSkill),
		Kind:     matching.RelationKind(matching.NormalizeToken(r.RelationType)),
		Strength: orZero(r.Strength),
	}
}

func Transitions(in []Transition) []matching.Transition {
	out := make([]matching.Transition, 0, len(in))
	for _, t := range in {
		out = append(out, t.Engine())
	}
	return out
}

func Edges(in []SkillRelationship) []matching.SkillEdge {
	out := make([]matching.SkillEdge, 0, len(in))
	for _, r := range in {
		out = append(out, r.Edge())
	}
	return out
}

func orZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}
