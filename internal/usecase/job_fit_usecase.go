package usecase

import (
	"context"
	"errors"
	"fmt"

	"placement-engine/internal/domain/job"
	"placement-engine/internal/domain/matching"
	"placement-engine/internal/domain/student"
	"placement-engine/internal/pkg/logger"
	"placement-engine/internal/pkg/metrics"

	"github.com/google/uuid"
)

// JobMatch is a fit result carrying the posting fields callers display.
type JobMatch struct {
	matching.MatchResult
	Title   string
	Company string
}

// CandidateMatch is a fit result carrying the student's display name.
type CandidateMatch struct {
	matching.MatchResult
	Name string
}

type JobFitUsecase interface {
	ScoreJobFit(ctx context.Context, studentID, jobID uuid.UUID) (JobMatch, error)
	RecommendJobs(ctx context.Context, studentID uuid.UUID, ov Overrides) ([]JobMatch, []matching.Diagnostic, error)
	MatchCandidates(ctx context.Context, jobID uuid.UUID, ov Overrides) ([]CandidateMatch, []matching.Diagnostic, error)
}

type JobFit struct {
	students student.Repository
	jobs     job.Repository
	engine   Engine
	metrics  *metrics.Manager
	log      logger.Logger
}

func NewJobFitUsecase(students student.Repository, jobs job.Repository, engine Engine, m *metrics.Manager, log logger.Logger) *JobFit {
	if log == nil {
		log = logger.Nop()
	}
	return &JobFit{students: students, jobs: jobs, engine: engine, metrics: m, log: log.Named("job_fit")}
}

func (u *JobFit) ScoreJobFit(ctx context.Context, studentID, jobID uuid.UUID) (JobMatch, error) {
	if studentID == uuid.Nil || jobID == uuid.Nil {
		return JobMatch{}, fmt.Errorf("%w: student id and job id are required", ErrInvalidInput)
	}

	s, err := u.loadStudent(ctx, studentID)
	if err != nil {
		return JobMatch{}, err
	}
	p, err := u.loadPosting(ctx, jobID)
	if err != nil {
		return JobMatch{}, err
	}

	req := p.Requirement()
	res, err := matching.ScoreJobFit(s.Actor(), req, u.engine.Config)
	if err != nil {
		return JobMatch{}, engineError(err)
	}
	u.metrics.ObserveFitScore(res.Score)
	return JobMatch{MatchResult: res, Title: req.Title, Company: req.Company}, nil
}

func (u *JobFit) RecommendJobs(ctx context.Context, studentID uuid.UUID, ov Overrides) ([]JobMatch, []matching.Diagnostic, error) {
	if studentID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: student id is required", ErrInvalidInput)
	}
	cfg, err := ov.apply(u.engine.Config, topNJobs)
	if err != nil {
		return nil, nil, err
	}

	s, err := u.loadStudent(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}
	postings, err := u.jobs.ListOpen(ctx, cfg.MaxPoolSize+1)
	if err != nil {
		u.log.Error(ctx, "load open postings failed", logger.Error(err))
		return nil, nil, ErrInternal
	}

	reqs := job.Requirements(postings)
	results, diags, err := matching.RecommendJobs(s.Actor(), reqs, cfg)
	if err != nil {
		return nil, nil, engineError(err)
	}
	reportDiagnostics(ctx, u.log, u.metrics, diags)

	byID := make(map[uuid.UUID]matching.Requirement, len(reqs))
	for _, r := range reqs {
		byID[r.ID] = r
	}
	out := make([]JobMatch, 0, len(results))
	for _, res := range results {
		u.metrics.ObserveFitScore(res.Score)
		r := byID[res.RequirementID]
		out = append(out, JobMatch{MatchResult: res, Title: r.Title, Company: r.Company})
	}
	return out, diags, nil
}

func (u *JobFit) MatchCandidates(ctx context.Context, jobID uuid.UUID, ov Overrides) ([]CandidateMatch, []matching.Diagnostic, error) {
	if jobID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	cfg, err := ov.apply(u.engine.Config, topNCandidates)
	if err != nil {
		return nil, nil, err
	}

	p, err := u.loadPosting(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	students, err := u.students.ListStudents(ctx, cfg.MaxPoolSize+1)
	if err != nil {
		u.log.Error(ctx, "load students failed", logger.Error(err))
		return nil, nil, ErrInternal
	}

	actors := student.Actors(students)
	results, diags, err := matching.MatchCandidates(p.Requirement(), actors, cfg)
	if err != nil {
		return nil, nil, engineError(err)
	}
	reportDiagnostics(ctx, u.log, u.metrics, diags)

	names := make(map[uuid.UUID]string, len(actors))
	for _, a := range actors {
		names[a.ID] = a.Name
	}
	out := make([]CandidateMatch, 0, len(results))
	for _, res := range results {
		u.metrics.ObserveFitScore(res.Score)
		out = append(out, CandidateMatch{MatchResult: res, Name: names[res.ActorID]})
	}
	return out, diags, nil
}

func (u *JobFit) loadStudent(ctx context.Context, id uuid.UUID) (student.Student, error) {
	s, err := u.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return student.Student{}, ErrStudentNotFound
		}
		u.log.Error(ctx, "load student failed", logger.String("student_id", id.String()), logger.Error(err))
		return student.Student{}, ErrInternal
	}
	return s, nil
}

func (u *JobFit) loadPosting(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	p, err := u.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Posting{}, ErrJobNotFound
		}
		u.log.Error(ctx, "load posting failed", logger.String("job_id", id.String()), logger.Error(err))
		return job.Posting{}, ErrInternal
	}
	return p, nil
}
