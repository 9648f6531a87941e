package seeder

import (
	"context"

	"placement-engine/internal/database"
)

type skillEdgeSeed struct {
	Source   string
	Target   string
	Kind     string
	Strength float64
}

// defaultSkillGraph is a small starter prerequisite graph.
var defaultSkillGraph = []skillEdgeSeed{
	{"html", "css", "related", 0.9},
	{"html", "javascript", "prerequisite", 0.7},
	{"javascript", "typescript", "prerequisite", 0.9},
	{"javascript", "react", "prerequisite", 0.9},
	{"javascript", "node.js", "prerequisite", 0.8},
	{"sql", "postgresql", "prerequisite", 0.8},
	{"python", "pandas", "prerequisite", 0.9},
	{"python", "machine learning", "prerequisite", 0.7},
	{"statistics", "machine learning", "prerequisite", 0.8},
	{"linux", "docker", "prerequisite", 0.7},
	{"docker", "kubernetes", "prerequisite", 0.9},
	{"linux", "terraform", "related", 0.4},
	{"git", "ci/cd", "prerequisite", 0.6},
	{"go", "grpc", "related", 0.5},
}

type SkillGraphSeeder struct{}

func (SkillGraphSeeder) Name() string { return "skill_relationships" }

func (SkillGraphSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skill_relationships", "id", "source_skill", "target_skill", "relation_type", "strength"); err != nil {
		return err
	}
	empty, err := tableEmpty(ctx, db, "skill_relationships")
	if err != nil || !empty {
		return err
	}

	return database.WithTx(ctx, db, func(q database.Querier) error {
		for _, e := range defaultSkillGraph {
			if _, err := q.Exec(
				ctx,
				`INSERT INTO skill_relationships (id, source_skill, target_skill, relation_type, strength)
				 VALUES (gen_random_uuid(), $1, $2, $3, $4)
				 ON CONFLICT (source_skill, target_skill, relation_type) DO NOTHING`,
				e.Source, e.Target, e.Kind, e.Strength,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
