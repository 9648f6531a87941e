package dto

import (
	"placement-engine/internal/domain/matching"
	"placement-engine/internal/pkg/response"

	"github.com/google/uuid"
)

type PeerResponse struct {
	StudentID  uuid.UUID `json:"student_id"`
	Name       string    `json:"name"`
	Similarity float64   `json:"similarity"`
	Skills     []string  `json:"skills"`
	Placed     bool      `json:"placed"`
	PlacedRole string    `json:"placed_role,omitempty"`
}

type PathResponse struct {
	StudentID  uuid.UUID `json:"student_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Company    string    `json:"company"`
	Similarity float64   `json:"similarity"`
}

type TransitionResponse struct {
	FromRole          string   `json:"from_role"`
	ToRole            string   `json:"to_role"`
	RequiredSkills    []string `json:"required_skills"`
	SuccessRate       float64  `json:"success_rate"`
	AvgTimeMonths     float64  `json:"avg_time_months"`
	SalaryIncreasePct float64  `json:"salary_increase_pct"`
}

type LearningStepResponse struct {
	Skill         string   `json:"skill"`
	Prerequisites []string `json:"prerequisites"`
	Priority      string   `json:"priority"`
}

type BundleResponse struct {
	StudentID        uuid.UUID              `json:"student_id"`
	SimilarStudents  []PeerResponse         `json:"similar_students"`
	RecommendedPaths []PathResponse         `json:"recommended_paths"`
	CareerInsights   []TransitionResponse   `json:"career_insights"`
	LearningPath     []LearningStepResponse `json:"learning_path"`
	TimelineMonths   int                    `json:"timeline_months"`
	Confidence       int                    `json:"confidence"`
}

func NewPeerResponses(in []matching.PeerMatch) []PeerResponse {
	out := make([]PeerResponse, 0, len(in))
	for _, pm := range in {
		out = append(out, PeerResponse{
			StudentID:  pm.Peer.ID,
			Name:       pm.Peer.Name,
			Similarity: pm.Similarity,
			Skills:     nonNil([]string(pm.Peer.Skills)),
			Placed:     pm.Peer.Outcome.Placed,
			PlacedRole: pm.Peer.Outcome.Role,
		})
	}
	return out
}

func NewBundleResponse(b matching.Bundle) BundleResponse {
	paths := make([]PathResponse, 0, len(b.RecommendedPaths))
	for _, p := range b.RecommendedPaths {
		paths = append(paths, PathResponse{
			StudentID:  p.PeerID,
			Name:       p.PeerName,
			Role:       p.Role,
			Company:    p.Company,
			Similarity: p.Similarity,
		})
	}

	insights := make([]TransitionResponse, 0, len(b.Transitions))
	for _, t := range b.Transitions {
		insights = append(insights, TransitionResponse{
			FromRole:          t.FromRole,
			ToRole:            t.ToRole,
			RequiredSkills:    nonNil([]string(t.RequiredSkills)),
			SuccessRate:       t.SuccessRate,
			AvgTimeMonths:     t.AvgTimeMonths,
			SalaryIncreasePct: t.SalaryIncreasePct,
		})
	}

	steps := make([]LearningStepResponse, 0, len(b.LearningPath))
	for _, s := range b.LearningPath {
		steps = append(steps, LearningStepResponse{
			Skill:         s.Skill,
			Prerequisites: nonNil(s.Prerequisites),
			Priority:      string(s.Priority),
		})
	}

	return BundleResponse{
		StudentID:        b.ActorID,
		SimilarStudents:  NewPeerResponses(b.SimilarPeers),
		RecommendedPaths: paths,
		CareerInsights:   insights,
		LearningPath:     steps,
		TimelineMonths:   b.TimelineMonths,
		Confidence:       b.Confidence,
	}
}

func NewMeta(cached bool, diags []matching.Diagnostic) *response.Meta {
	m := &response.Meta{Cached: cached}
	for _, d := range diags {
		m.Diagnostics = append(m.Diagnostics, response.Diagnostic{
			Kind:    string(d.Kind),
			Source:  d.Source,
			Index:   d.Index,
			Message: d.Message,
		})
	}
	return m
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
