package matching

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Estimate aggregates transitions into an expected duration and uses the
// best peer's similarity as a confidence figure. Empty inputs fall back to
// cfg.DefaultTimelineMonths / cfg.DefaultConfidence.
func Estimate(transitions []Transition, peers []PeerMatch, cfg Config) Timeline {
	out := Timeline{
		TimelineMonths: cfg.DefaultTimelineMonths,
		Confidence:     cfg.DefaultConfidence,
	}

	if len(transitions) > 0 {
		months := make([]float64, 0, len(transitions))
		for _, t := range transitions {
			m := t.AvgTimeMonths
			if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
				m = 0
			}
			months = append(months, m)
		}
		out.TimelineMonths = int(math.Round(stat.Mean(months, nil)))
	}

	if len(peers) > 0 {
		top := clampFloat(peers[0].Similarity, 0, 1)
		out.Confidence = int(math.Round(100 * top))
	}
	return out
}
