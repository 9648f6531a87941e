package usecase

import (
	"context"

	"placement-engine/internal/domain/matching"
	"placement-engine/internal/pkg/logger"
	"placement-engine/internal/pkg/metrics"
)

// reportDiagnostics logs every engine diagnostic and feeds the counters.
func reportDiagnostics(ctx context.Context, log logger.Logger, m *metrics.Manager, diags []matching.Diagnostic) {
	skipped := map[string]int{}
	for _, d := range diags {
		log.Warn(ctx, "engine diagnostic",
			logger.String("kind", string(d.Kind)),
			logger.String("source", d.Source),
			logger.Int("index", d.Index),
			logger.String("detail", d.Message),
		)
		switch d.Kind {
		case matching.DiagnosticSkippedRecord:
			skipped[d.Source]++
		case matching.DiagnosticTruncated:
			m.RecordTruncated(d.Source)
		}
	}
	for source, n := range skipped {
		m.RecordSkipped(source, n)
	}
}
