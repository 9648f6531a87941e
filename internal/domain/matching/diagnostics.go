package matching

import "fmt"

func skipped(source string, idx int, msg string) Diagnostic {
	return Diagnostic{Kind: DiagnosticSkippedRecord, Source: source, Index: idx, Message: msg}
}

func truncated(source string, got, limit int) Diagnostic {
	return Diagnostic{
		Kind:    DiagnosticTruncated,
		Source:  source,
		Index:   limit,
		Message: fmt.Sprintf("%d records supplied, limit is %d", got, limit),
	}
}

func boundActors(in []Actor, limit int, source string) ([]Actor, []Diagnostic) {
	if limit > 0 && len(in) > limit {
		return in[:limit], []Diagnostic{truncated(source, len(in), limit)}
	}
	return in, nil
}

func boundRequirements(in []Requirement, limit int) ([]Requirement, []Diagnostic) {
	if limit > 0 && len(in) > limit {
		return in[:limit], []Diagnostic{truncated("requirements", len(in), limit)}
	}
	return in, nil
}

func boundTransitions(in []Transition, limit int) ([]Transition, []Diagnostic) {
	if limit > 0 && len(in) > limit {
		return in[:limit], []Diagnostic{truncated("transitions", len(in), limit)}
	}
	return in, nil
}

func boundEdges(in []SkillEdge, limit int) ([]SkillEdge, []Diagnostic) {
	if limit > 0 && len(in) > limit {
		return in[:limit], []Diagnostic{truncated("skill_edges", len(in), limit)}
	}
	return in, nil
}
