package repository

import (
	"context"
	"time"

	"placement-engine/internal/database"
	"placement-engine/internal/domain/career"

	"github.com/google/uuid"
)

type PostgresCareerRepository struct {
	db database.DB
}

var _ career.Repository = (*PostgresCareerRepository)(nil)

func NewPostgresCareerRepository(db database.DB) *PostgresCareerRepository {
	return &PostgresCareerRepository{db: db}
}

const topTransitionsPage = `SELECT id FROM career_transitions
	ORDER BY success_rate DESC NULLS LAST, id LIMIT $1`

func (r *PostgresCareerRepository) TopTransitions(ctx context.Context, limit int) ([]career.Transition, error) {
	limit = clampLimit(limit)

	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.from_role, t.to_role, t.success_rate, t.avg_time_months, t.salary_increase_pct
		 FROM career_transitions t
		 JOIN (`+topTransitionsPage+`) p ON p.id = t.id
		 ORDER BY t.success_rate DESC NULLS LAST, t.id`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]career.Transition, 0)
	for rows.Next() {
		var t career.Transition
		if err := rows.Scan(&t.ID, &t.FromRole, &t.ToRole, &t.SuccessRate, &t.AvgTimeMonths, &t.SalaryIncreasePct); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	skillRows, err := r.db.Query(ctx,
		`SELECT ts.transition_id, ts.skill
		 FROM career_transition_skills ts
		 JOIN (`+topTransitionsPage+`) p ON p.id = ts.transition_id
		 ORDER BY ts.transition_id, ts.position, ts.skill`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer skillRows.Close()

	skills := make(map[uuid.UUID][]string)
	for skillRows.Next() {
		var id uuid.UUID
		var s string
		if err := skillRows.Scan(&id, &s); err != nil {
			return nil, err
		}
		skills[id] = append(skills[id], s)
	}
	if err := skillRows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].RequiredSkills = nonNil(skills[out[i].ID])
	}
	return out, nil
}

func (r *PostgresCareerRepository) SkillEdges(ctx context.Context, limit int) ([]career.SkillRelationship, error) {
	limit = clampLimit(limit)

	rows, err := r.db.Query(ctx,
		`SELECT id, source_skill, target_skill, relation_type, strength
		 FROM skill_relationships
		 ORDER BY relation_type, strength DESC NULLS LAST, id
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]career.SkillRelationship, 0)
	for rows.Next() {
		var e career.SkillRelationship
		if err := rows.Scan(&e.ID, &e.SourceSkill, &e.TargetSkill, &e.RelationType, &e.Strength); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DatasetVersion is the newest updated_at across the tables feeding the engine.
// Cache keys embed it so any data change invalidates cached bundles.
func (r *PostgresCareerRepository) DatasetVersion(ctx context.Context) (time.Time, error) {
	var v *time.Time
	row := r.db.QueryRow(ctx,
		`SELECT GREATEST(
			(SELECT MAX(updated_at) FROM students),
			(SELECT MAX(updated_at) FROM job_postings),
			(SELECT MAX(updated_at) FROM career_transitions),
			(SELECT MAX(updated_at) FROM skill_relationships)
		)`,
	)
	if err := row.Scan(&v); err != nil {
		if isNoRows(err) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	if v == nil {
		return time.Time{}, nil
	}
	return v.UTC(), nil
}
