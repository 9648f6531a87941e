package usecase

import (
	"context"
	"encoding/json"
	"time"

	"placement-engine/internal/domain/career"
	"placement-engine/internal/domain/job"
	"placement-engine/internal/domain/student"

	"github.com/google/uuid"
)

type fakeStudents struct {
	items     []student.Student
	err       error
	peerLimit int
}

func (f *fakeStudents) FindByID(_ context.Context, id uuid.UUID) (student.Student, error) {
	if f.err != nil {
		return student.Student{}, f.err
	}
	for _, s := range f.items {
		if s.ID == id {
			return s, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (f *fakeStudents) ListPeers(_ context.Context, excludeID uuid.UUID, limit int) ([]student.Student, error) {
	f.peerLimit = limit
	out := make([]student.Student, 0, len(f.items))
	for _, s := range f.items {
		if s.ID != excludeID {
			out = append(out, s)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStudents) ListStudents(_ context.Context, limit int) ([]student.Student, error) {
	if len(f.items) > limit {
		return f.items[:limit], nil
	}
	return f.items, nil
}

type fakeJobs struct {
	items []job.Posting
	err   error
}

func (f fakeJobs) FindByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return job.Posting{}, job.ErrNotFound
}

func (f fakeJobs) ListOpen(_ context.Context, limit int) ([]job.Posting, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.items) > limit {
		return f.items[:limit], nil
	}
	return f.items, nil
}

type fakeCareers struct {
	transitions []career.Transition
	edges       []career.SkillRelationship
	version     time.Time
	err         error
}

func (f fakeCareers) TopTransitions(_ context.Context, limit int) ([]career.Transition, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.transitions) > limit {
		return f.transitions[:limit], nil
	}
	return f.transitions, nil
}

func (f fakeCareers) SkillEdges(_ context.Context, limit int) ([]career.SkillRelationship, error) {
	if len(f.edges) > limit {
		return f.edges[:limit], nil
	}
	return f.edges, nil
}

func (f fakeCareers) DatasetVersion(context.Context) (time.Time, error) {
	return f.version, nil
}

type mapCache struct {
	data map[string][]byte
	sets int
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.sets++
	c.data[key] = b
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func ptr[T any](v T) *T { return &v }

func newStudent(name string, skills ...string) student.Student {
	return student.Student{ID: uuid.New(), Name: name, Skills: skills}
}
