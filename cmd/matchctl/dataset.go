package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"placement-engine/internal/domain/career"
	"placement-engine/internal/domain/job"
	"placement-engine/internal/domain/student"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type datasetFile struct {
	Students    []studentRecord    `yaml:"students"`
	Jobs        []jobRecord        `yaml:"jobs"`
	Transitions []transitionRecord `yaml:"transitions"`
	SkillEdges  []edgeRecord       `yaml:"skill_edges"`
}

type studentRecord struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Skills         []string `yaml:"skills"`
	PreferredRoles []string `yaml:"preferred_roles"`
	GPA            *float64 `yaml:"gpa"`
	Placed         bool     `yaml:"placed"`
	PlacedRole     string   `yaml:"placed_role"`
	PlacedCompany  string   `yaml:"placed_company"`
}

type jobRecord struct {
	ID              string     `yaml:"id"`
	Title           string     `yaml:"title"`
	Company         string     `yaml:"company"`
	ExperienceLevel string     `yaml:"experience_level"`
	Skills          []string   `yaml:"skills"`
	PostedAt        *time.Time `yaml:"posted_at"`
	Closed          bool       `yaml:"closed"`
}

type transitionRecord struct {
	FromRole          string   `yaml:"from_role"`
	ToRole            string   `yaml:"to_role"`
	RequiredSkills    []string `yaml:"required_skills"`
	SuccessRate       *float64 `yaml:"success_rate"`
	AvgTimeMonths     *float64 `yaml:"avg_time_months"`
	SalaryIncreasePct *float64 `yaml:"salary_increase_pct"`
}

type edgeRecord struct {
	Source   string   `yaml:"source"`
	Target   string   `yaml:"target"`
	Relation string   `yaml:"relation"`
	Strength *float64 `yaml:"strength"`
}

// dataset is an in-memory stand-in for the postgres repositories, so the
// CLI runs the same usecases as the server.
type dataset struct {
	students    []student.Student
	jobs        []job.Posting
	transitions []career.Transition
	edges       []career.SkillRelationship
}

func loadDataset(path string) (*dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return decodeDataset(f)
}

func decodeDataset(r io.Reader) (*dataset, error) {
	var raw datasetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	ds := &dataset{}
	for i, s := range raw.Students {
		id, err := parseRecordID(s.ID)
		if err != nil {
			return nil, fmt.Errorf("students[%d]: %w", i, err)
		}
		ds.students = append(ds.students, student.Student{
			ID:             id,
			Name:           s.Name,
			GPA:            s.GPA,
			Placed:         s.Placed,
			PlacedRole:     optional(s.PlacedRole),
			PlacedCompany:  optional(s.PlacedCompany),
			Skills:         s.Skills,
			PreferredRoles: s.PreferredRoles,
		})
	}
	for i, j := range raw.Jobs {
		id, err := parseRecordID(j.ID)
		if err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		ds.jobs = append(ds.jobs, job.Posting{
			ID:              id,
			Title:           optional(j.Title),
			Company:         optional(j.Company),
			ExperienceLevel: optional(j.ExperienceLevel),
			Skills:          j.Skills,
			IsOpen:          !j.Closed,
			PostedAt:        j.PostedAt,
		})
	}
	for _, t := range raw.Transitions {
		ds.transitions = append(ds.transitions, career.Transition{
			FromRole:          t.FromRole,
			ToRole:            t.ToRole,
			RequiredSkills:    t.RequiredSkills,
			SuccessRate:       t.SuccessRate,
			AvgTimeMonths:     t.AvgTimeMonths,
			SalaryIncreasePct: t.SalaryIncreasePct,
		})
	}
	for _, e := range raw.SkillEdges {
		ds.edges = append(ds.edges, career.SkillRelationship{
			SourceSkill:  e.Source,
			TargetSkill:  e.Target,
			RelationType: e.Relation,
			Strength:     e.Strength,
		})
	}
	return ds, nil
}

// parseRecordID accepts an empty id so the engine can report the record
// as skipped instead of the whole file being rejected.
func parseRecordID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func (d *dataset) FindByID(_ context.Context, id uuid.UUID) (student.Student, error) {
	for _, s := range d.students {
		if s.ID == id {
			return s, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (d *dataset) ListPeers(_ context.Context, excludeID uuid.UUID, limit int) ([]student.Student, error) {
	out := make([]student.Student, 0, len(d.students))
	for _, s := range d.students {
		if s.ID != excludeID {
			out = append(out, s)
		}
	}
	return head(out, limit), nil
}

func (d *dataset) ListStudents(_ context.Context, limit int) ([]student.Student, error) {
	return head(append([]student.Student(nil), d.students...), limit), nil
}

func (d *dataset) TopTransitions(_ context.Context, limit int) ([]career.Transition, error) {
	out := append([]career.Transition(nil), d.transitions...)
	sort.SliceStable(out, func(i, j int) bool {
		return deref(out[i].SuccessRate) > deref(out[j].SuccessRate)
	})
	return head(out, limit), nil
}

func (d *dataset) SkillEdges(_ context.Context, limit int) ([]career.SkillRelationship, error) {
	return head(append([]career.SkillRelationship(nil), d.edges...), limit), nil
}

func (d *dataset) DatasetVersion(context.Context) (time.Time, error) {
	return time.Time{}, nil
}

// postings exposes the job side of the dataset as a job.Repository.
type postings struct{ d *dataset }

func (p postings) FindByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	for _, j := range p.d.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Posting{}, job.ErrNotFound
}

func (p postings) ListOpen(_ context.Context, limit int) ([]job.Posting, error) {
	out := make([]job.Posting, 0, len(p.d.jobs))
	for _, j := range p.d.jobs {
		if j.IsOpen {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(i, k int) bool {
		a, b := out[i].PostedAt, out[k].PostedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return head(out, limit), nil
}

func head[T any](in []T, n int) []T {
	if n >= 0 && len(in) > n {
		return in[:n]
	}
	return in
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
