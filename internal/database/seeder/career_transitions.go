package seeder

import (
	"context"

	"placement-engine/internal/database"
)

type transitionSeed struct {
	From        string
	To          string
	SuccessRate float64
	Months      float64
	SalaryPct   float64
	Skills      []string
}

var defaultTransitions = []transitionSeed{
	{"Student", "Backend Engineer", 0.72, 9, 0, []string{"go", "sql", "docker", "postgresql"}},
	{"Student", "Frontend Engineer", 0.70, 7, 0, []string{"javascript", "typescript", "react"}},
	{"Student", "Data Analyst", 0.68, 6, 0, []string{"sql", "python", "pandas", "statistics"}},
	{"Student", "Platform Engineer", 0.55, 12, 0, []string{"linux", "docker", "kubernetes", "terraform"}},
	{"Data Analyst", "Data Scientist", 0.48, 18, 25, []string{"python", "machine learning", "statistics"}},
	{"Backend Engineer", "Platform Engineer", 0.51, 14, 15, []string{"kubernetes", "terraform", "ci/cd"}},
}

type CareerTransitionSeeder struct{}

func (CareerTransitionSeeder) Name() string { return "career_transitions" }

func (CareerTransitionSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "career_transitions", "id", "from_role", "to_role", "success_rate", "avg_time_months", "salary_increase_pct"); err != nil {
		return err
	}
	empty, err := tableEmpty(ctx, db, "career_transitions")
	if err != nil || !empty {
		return err
	}

	return database.WithTx(ctx, db, func(q database.Querier) error {
		for _, t := range defaultTransitions {
			var id string
			if err := q.QueryRow(
				ctx,
				`INSERT INTO career_transitions (id, from_role, to_role, success_rate, avg_time_months, salary_increase_pct)
				 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
				 RETURNING id::text`,
				t.From, t.To, t.SuccessRate, t.Months, t.SalaryPct,
			).Scan(&id); err != nil {
				return err
			}
			for pos, skill := range t.Skills {
				if _, err := q.Exec(
					ctx,
					`INSERT INTO career_transition_skills (transition_id, skill, position) VALUES ($1::uuid, $2, $3)`,
					id, skill, pos,
				); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
