package matching

import (
	"time"

	"github.com/google/uuid"
)

type Outcome struct {
	Placed  bool
	Role    string
	Company string
}

// Actor is a skill-bearing profile (usually a student) for one scoring pass.
type Actor struct {
	ID             uuid.UUID
	Name           string
	Skills         SkillSet
	PreferredRoles []string
	GPA            float64
	Outcome        Outcome
}

type Requirement struct {
	ID              uuid.UUID
	Title           string
	Company         string
	Skills          SkillSet
	ExperienceLevel string
	PostedAt        time.Time
}

type Transition struct {
	FromRole          string
	ToRole            string
	RequiredSkills    SkillSet
	SuccessRate       float64
	AvgTimeMonths     float64
	SalaryIncreasePct float64
}

type RelationKind string

const (
	RelationPrerequisite RelationKind = "prerequisite"
	RelationRelated      RelationKind = "related"
)

type SkillEdge struct {
	Source   string
	Target   string
	Kind     RelationKind
	Strength float64
}

type MatchResult struct {
	ActorID         uuid.UUID
	RequirementID   uuid.UUID
	Score           int
	SkillScore      float64
	PreferenceScore float64
	QualityBonus    float64
	MatchedSkills   []string
	MissingSkills   []string
	Reasoning       string
	PostedAt        time.Time
}

type PeerMatch struct {
	Peer       Actor
	Similarity float64
}

type PeerRanking struct {
	Peers       []PeerMatch
	Diagnostics []Diagnostic
}

type PathRecommendation struct {
	PeerID     uuid.UUID
	PeerName   string
	Role       string
	Company    string
	Similarity float64
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

type LearningStep struct {
	Skill         string
	Prerequisites []string
	Priority      Priority
}

type Timeline struct {
	TimelineMonths int
	Confidence     int
}

// Bundle is the aggregate output of BuildRecommendationBundle.
type Bundle struct {
	ActorID          uuid.UUID
	SimilarPeers     []PeerMatch
	RecommendedPaths []PathRecommendation
	Transitions      []Transition
	LearningPath     []LearningStep
	TimelineMonths   int
	Confidence       int
	Diagnostics      []Diagnostic
}

// Empty reports whether the bundle carries nothing to show ("no matches found").
func (b Bundle) Empty() bool {
	return len(b.SimilarPeers) == 0 && len(b.RecommendedPaths) == 0 && len(b.LearningPath) == 0
}

type DiagnosticKind string

const (
	DiagnosticSkippedRecord DiagnosticKind = "skipped_record"
	DiagnosticTruncated     DiagnosticKind = "truncated"
)

// Diagnostic records a non-fatal problem found while scoring a pool.
type Diagnostic struct {
	Kind    DiagnosticKind
	Source  string
	Index   int
	Message string
}
