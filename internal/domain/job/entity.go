package job

import (
	"strings"
	"time"

	"placement-engine/internal/domain/matching"

	"github.com/google/uuid"
)

type Posting struct {
	ID              uuid.UUID
	Title           *string
	Company         *string
	Location        *string
	EmploymentType  *string
	ExperienceLevel *string
	Description     *string
	Skills          []string
	IsOpen          bool
	PostedAt        *time.Time
	CreatedAt       time.Time
}

// Requirement converts the posting into the engine's requirement view.
func (p Posting) Requirement() matching.Requirement {
	r := matching.Requirement{
		ID:              p.ID,
		Title:           deref(p.Title),
		Company:         deref(p.Company),
		Skills:          matching.Normalize(p.Skills),
		ExperienceLevel: deref(p.ExperienceLevel),
	}
	if p.PostedAt != nil {
		r.PostedAt = p.PostedAt.UTC()
	}
	return r
}

func Requirements(in []Posting) []matching.Requirement {
	out := make([]matching.Requirement, 0, len(in))
	for _, p := range in {
		out = append(out, p.Requirement())
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
