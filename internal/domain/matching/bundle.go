package matching

import (
	"fmt"

	"github.com/google/uuid"
)

// BuildRecommendationBundle runs the full pipeline for one actor:
// rank peers, derive recommended paths, assemble the learning path and
// estimate timeline and confidence.
func BuildRecommendationBundle(a Actor, pool []Actor, transitions []Transition, edges []SkillEdge, cfg Config) (Bundle, error) {
	if err := cfg.Validate(); err != nil {
		return Bundle{}, err
	}
	if a.ID == uuid.Nil {
		return Bundle{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	var diags []Diagnostic
	pool, d := boundActors(pool, cfg.MaxPoolSize, "peers")
	diags = append(diags, d...)
	transitions, d = boundTransitions(transitions, cfg.MaxTransitions)
	diags = append(diags, d...)
	edges, d = boundEdges(edges, cfg.MaxSkillEdges)
	diags = append(diags, d...)

	ranking := RankPeers(a, pool, cfg.MinSimilarity, cfg.TopPeers)
	diags = append(diags, ranking.Diagnostics...)

	similar := ranking.Peers
	if len(similar) > cfg.TopSimilar {
		similar = similar[:cfg.TopSimilar]
	}

	est := Estimate(transitions, ranking.Peers, cfg)

	return Bundle{
		ActorID:          a.ID,
		SimilarPeers:     similar,
		RecommendedPaths: RecommendedPaths(ranking.Peers, cfg.TopPaths),
		Transitions:      transitions,
		LearningPath:     BuildLearningPath(a, transitions, edges, cfg.MaxLearningPathSkills),
		TimelineMonths:   est.TimelineMonths,
		Confidence:       est.Confidence,
		Diagnostics:      diags,
	}, nil
}
