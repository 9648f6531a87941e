package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// RankPeers scores every pool member against a by Jaccard similarity, drops
// the actor itself and anything under minSimilarity, and returns at most topN
// peers ordered by similarity descending, ties broken by peer id.
// Pool members without an id are skipped and reported as diagnostics.
// A negative topN returns no peers.
func RankPeers(a Actor, pool []Actor, minSimilarity float64, topN int) PeerRanking {
	mine := Normalize(a.Skills)

	out := make([]PeerMatch, 0, len(pool))
	var diags []Diagnostic
	for i, p := range pool {
		if p.ID == uuid.Nil {
			diags = append(diags, skipped("peers", i, "peer id is required"))
			continue
		}
		if p.ID == a.ID {
			continue
		}
		sim := Similarity(mine, p.Skills)
		if !(sim >= minSimilarity) {
			continue
		}
		out = append(out, PeerMatch{Peer: p, Similarity: sim})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].Peer.ID.String() < out[j].Peer.ID.String()
	})

	out = out[:clampInt(topN, 0, len(out))]
	return PeerRanking{Peers: out, Diagnostics: diags}
}

// RankPeersWithConfig validates inputs, bounds the pool by cfg.MaxPoolSize and
// ranks with cfg.MinSimilarity / cfg.TopPeers.
func RankPeersWithConfig(a Actor, pool []Actor, cfg Config) (PeerRanking, error) {
	if err := cfg.Validate(); err != nil {
		return PeerRanking{}, err
	}
	if a.ID == uuid.Nil {
		return PeerRanking{}, fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}

	pool, diags := boundActors(pool, cfg.MaxPoolSize, "peers")
	res := RankPeers(a, pool, cfg.MinSimilarity, cfg.TopPeers)
	res.Diagnostics = append(diags, res.Diagnostics...)
	return res, nil
}

// RecommendedPaths keeps only peers with a recorded placement, preserving
// the incoming order, and truncates to limit.
func RecommendedPaths(peers []PeerMatch, limit int) []PathRecommendation {
	out := make([]PathRecommendation, 0, len(peers))
	for _, pm := range peers {
		if limit >= 0 && len(out) >= limit {
			break
		}
		o := pm.Peer.Outcome
		if !o.Placed {
			continue
		}
		if strings.TrimSpace(o.Role) == "" && strings.TrimSpace(o.Company) == "" {
			continue
		}
		out = append(out, PathRecommendation{
			PeerID:     pm.Peer.ID,
			PeerName:   pm.Peer.Name,
			Role:       strings.TrimSpace(o.Role),
			Company:    strings.TrimSpace(o.Company),
			Similarity: pm.Similarity,
		})
	}
	return out
}
