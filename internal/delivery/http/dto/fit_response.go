package dto

import (
	"placement-engine/internal/usecase"

	"github.com/google/uuid"
)

type FitResponse struct {
	StudentID       uuid.UUID `json:"student_id"`
	JobID           uuid.UUID `json:"job_id"`
	Title           string    `json:"title,omitempty"`
	Company         string    `json:"company,omitempty"`
	Name            string    `json:"name,omitempty"`
	Score           int       `json:"score"`
	SkillScore      float64   `json:"skill_score"`
	PreferenceScore float64   `json:"preference_score"`
	QualityBonus    float64   `json:"quality_bonus"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	Reasoning       string    `json:"reasoning"`
}

func NewJobFitResponse(m usecase.JobMatch) FitResponse {
	r := m.MatchResult
	return FitResponse{
		StudentID:       r.ActorID,
		JobID:           r.RequirementID,
		Title:           m.Title,
		Company:         m.Company,
		Score:           r.Score,
		SkillScore:      r.SkillScore,
		PreferenceScore: r.PreferenceScore,
		QualityBonus:    r.QualityBonus,
		MatchedSkills:   nonNil(r.MatchedSkills),
		MissingSkills:   nonNil(r.MissingSkills),
		Reasoning:       r.Reasoning,
	}
}

func NewJobFitResponses(in []usecase.JobMatch) []FitResponse {
	out := make([]FitResponse, 0, len(in))
	for _, m := range in {
		out = append(out, NewJobFitResponse(m))
	}
	return out
}

func NewCandidateResponses(in []usecase.CandidateMatch) []FitResponse {
	out := make([]FitResponse, 0, len(in))
	for _, m := range in {
		r := NewJobFitResponse(usecase.JobMatch{MatchResult: m.MatchResult})
		r.Name = m.Name
		out = append(out, r)
	}
	return out
}
