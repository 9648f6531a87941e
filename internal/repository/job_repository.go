package repository

import (
	"context"

	"placement-engine/internal/database"
	"placement-engine/internal/domain/job"

	"github.com/google/uuid"
)

const postingColumns = `j.id, j.title, j.company, j.location, j.employment_type,
	j.experience_level, j.description, j.is_open, j.posted_at, j.created_at`

type PostgresJobRepository struct {
	db database.DB
}

var _ job.Repository = (*PostgresJobRepository)(nil)

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	var p job.Posting
	row := r.db.QueryRow(ctx, `SELECT `+postingColumns+` FROM job_postings j WHERE j.id = $1`, id)
	if err := scanPosting(row, &p); err != nil {
		if isNoRows(err) {
			return job.Posting{}, job.ErrNotFound
		}
		return job.Posting{}, err
	}

	skills, err := r.skillsFor(ctx,
		`SELECT job_id, skill FROM job_posting_skills WHERE job_id = $1 ORDER BY skill`, id)
	if err != nil {
		return job.Posting{}, err
	}
	p.Skills = nonNil(skills[p.ID])
	return p, nil
}

func (r *PostgresJobRepository) ListOpen(ctx context.Context, limit int) ([]job.Posting, error) {
	limit = clampLimit(limit)

	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+`
		 FROM job_postings j
		 WHERE j.is_open = true
		 ORDER BY j.posted_at DESC NULLS LAST, j.id
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var p job.Posting
		if err := scanPosting(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	skills, err := r.skillsFor(ctx,
		`SELECT js.job_id, js.skill
		 FROM job_posting_skills js
		 JOIN (SELECT id FROM job_postings WHERE is_open = true ORDER BY posted_at DESC NULLS LAST, id LIMIT $1) p
		   ON p.id = js.job_id
		 ORDER BY js.job_id, js.skill`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Skills = nonNil(skills[out[i].ID])
	}
	return out, nil
}

func (r *PostgresJobRepository) skillsFor(ctx context.Context, query string, args ...any) (map[uuid.UUID][]string, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]string)
	for rows.Next() {
		var id uuid.UUID
		var skill string
		if err := rows.Scan(&id, &skill); err != nil {
			return nil, err
		}
		out[id] = append(out[id], skill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosting(row scanner, p *job.Posting) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Company, &p.Location, &p.EmploymentType,
		&p.ExperienceLevel, &p.Description, &p.IsOpen, &p.PostedAt, &p.CreatedAt,
	)
}
