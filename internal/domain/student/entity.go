package student

import (
	"strings"
	"time"

	"placement-engine/internal/domain/matching"

	"github.com/google/uuid"
)

type Student struct {
	ID             uuid.UUID
	Name           string
	Email          *string
	Major          *string
	GPA            *float64
	GraduationYear *int16
	Placed         bool
	PlacedRole     *string
	PlacedCompany  *string
	Skills         []string
	PreferredRoles []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Actor converts the stored profile into the engine's view of it.
func (s Student) Actor() matching.Actor {
	a := matching.Actor{
		ID:             s.ID,
		Name:           strings.TrimSpace(s.Name),
		Skills:         matching.Normalize(s.Skills),
		PreferredRoles: append([]string(nil), s.PreferredRoles...),
	}
	if s.GPA != nil {
		a.GPA = *s.GPA
	}
	if s.Placed {
		a.Outcome = matching.Outcome{
			Placed:  true,
			Role:    deref(s.PlacedRole),
			Company: deref(s.PlacedCompany),
		}
	}
	return a
}

func Actors(in []Student) []matching.Actor {
	out := make([]matching.Actor, 0, len(in))
	for _, s := range in {
		out = append(out, s.Actor())
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
