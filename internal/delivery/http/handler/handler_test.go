package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"placement-engine/internal/delivery/http/middleware"
	"placement-engine/internal/domain/matching"
	"placement-engine/internal/pkg/metrics"
	"placement-engine/internal/pkg/response"
	"placement-engine/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommendations struct {
	bundle matching.Bundle
	cached bool
	err    error
	gotOv  usecase.Overrides
}

func (f *fakeRecommendations) GetBundle(_ context.Context, id uuid.UUID, ov usecase.Overrides) (matching.Bundle, bool, error) {
	f.gotOv = ov
	if f.err != nil {
		return matching.Bundle{}, false, f.err
	}
	b := f.bundle
	b.ActorID = id
	return b, f.cached, nil
}

type fakePeers struct {
	res matching.PeerRanking
	err error
}

func (f fakePeers) RankPeers(context.Context, uuid.UUID, usecase.Overrides) (matching.PeerRanking, error) {
	return f.res, f.err
}

type fakeJobFit struct {
	fit        usecase.JobMatch
	jobs       []usecase.JobMatch
	candidates []usecase.CandidateMatch
	err        error
}

func (f fakeJobFit) ScoreJobFit(context.Context, uuid.UUID, uuid.UUID) (usecase.JobMatch, error) {
	return f.fit, f.err
}

func (f fakeJobFit) RecommendJobs(context.Context, uuid.UUID, usecase.Overrides) ([]usecase.JobMatch, []matching.Diagnostic, error) {
	return f.jobs, nil, f.err
}

func (f fakeJobFit) MatchCandidates(context.Context, uuid.UUID, usecase.Overrides) ([]usecase.CandidateMatch, []matching.Diagnostic, error) {
	return f.candidates, nil, f.err
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *response.Meta  `json:"meta"`
}

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	register(app)
	return app
}

func do(t *testing.T, app *fiber.App, target string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

func TestRecommendationHandler(t *testing.T) {
	peer := matching.Actor{ID: uuid.New(), Name: "Budi", Skills: matching.SkillSet{"go"}}
	uc := &fakeRecommendations{
		bundle: matching.Bundle{
			SimilarPeers:   []matching.PeerMatch{{Peer: peer, Similarity: 0.75}},
			LearningPath:   []matching.LearningStep{{Skill: "docker", Priority: matching.PriorityHigh}},
			TimelineMonths: 8,
			Confidence:     75,
			Diagnostics:    []matching.Diagnostic{{Kind: matching.DiagnosticTruncated, Source: "peers", Index: 100}},
		},
		cached: true,
	}
	app := newTestApp(NewRecommendationHandler(uc).RegisterRoutes)
	id := uuid.New()

	status, env := do(t, app, "/students/"+id.String()+"/recommendations?min_similarity=0.3&top_n=4")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, response.MessageOK, env.Message)
	require.NotNil(t, env.Meta)
	assert.True(t, env.Meta.Cached)
	require.Len(t, env.Meta.Diagnostics, 1)
	assert.Equal(t, "truncated", env.Meta.Diagnostics[0].Kind)

	var data struct {
		StudentID       uuid.UUID `json:"student_id"`
		SimilarStudents []struct {
			Name       string  `json:"name"`
			Similarity float64 `json:"similarity"`
		} `json:"similar_students"`
		LearningPath []struct {
			Skill         string   `json:"skill"`
			Prerequisites []string `json:"prerequisites"`
			Priority      string   `json:"priority"`
		} `json:"learning_path"`
		TimelineMonths int `json:"timeline_months"`
		Confidence     int `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, id, data.StudentID)
	assert.Equal(t, "Budi", data.SimilarStudents[0].Name)
	assert.Equal(t, "high", data.LearningPath[0].Priority)
	assert.NotNil(t, data.LearningPath[0].Prerequisites)
	assert.Equal(t, 8, data.TimelineMonths)
	assert.Equal(t, 75, data.Confidence)

	require.NotNil(t, uc.gotOv.MinSimilarity)
	assert.Equal(t, 0.3, *uc.gotOv.MinSimilarity)
	require.NotNil(t, uc.gotOv.TopN)
	assert.Equal(t, 4, *uc.gotOv.TopN)
	assert.Nil(t, uc.gotOv.MinFitScore)
}

func TestRecommendationHandler_EmptyBundle(t *testing.T) {
	app := newTestApp(NewRecommendationHandler(&fakeRecommendations{
		bundle: matching.Bundle{TimelineMonths: 12, Confidence: 50},
	}).RegisterRoutes)

	status, env := do(t, app, "/students/"+uuid.NewString()+"/recommendations")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, response.MessageNoMatches, env.Message)
}

func TestRecommendationHandler_Errors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"bad uuid", "/students/not-a-uuid/recommendations", nil, http.StatusBadRequest},
		{"bad number", "/students/" + uuid.NewString() + "/recommendations?top_n=abc", nil, http.StatusBadRequest},
		{"NaN similarity", "/students/" + uuid.NewString() + "/recommendations?min_similarity=NaN", nil, http.StatusBadRequest},
		{"infinite similarity", "/students/" + uuid.NewString() + "/recommendations?min_similarity=-Inf", nil, http.StatusBadRequest},
		{"invalid config", "/students/" + uuid.NewString() + "/recommendations", usecase.ErrInvalidConfig, http.StatusBadRequest},
		{"not found", "/students/" + uuid.NewString() + "/recommendations", usecase.ErrStudentNotFound, http.StatusNotFound},
		{"internal", "/students/" + uuid.NewString() + "/recommendations", usecase.ErrInternal, http.StatusInternalServerError},
		{"unexpected", "/students/" + uuid.NewString() + "/recommendations", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(NewRecommendationHandler(&fakeRecommendations{err: tc.err}).RegisterRoutes)
			status, env := do(t, app, tc.target)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.status, env.Status)
			if tc.status == http.StatusInternalServerError {
				assert.Equal(t, response.MessageInternalServerError, env.Message)
			}
		})
	}
}

func TestPeerHandler(t *testing.T) {
	peer := matching.Actor{ID: uuid.New(), Name: "Sari", Outcome: matching.Outcome{Placed: true, Role: "SRE"}}
	app := newTestApp(NewPeerHandler(fakePeers{res: matching.PeerRanking{
		Peers: []matching.PeerMatch{{Peer: peer, Similarity: 0.5}},
	}}).RegisterRoutes)

	status, env := do(t, app, "/students/"+uuid.NewString()+"/peers")
	require.Equal(t, http.StatusOK, status)

	var data []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "Sari", data[0]["name"])
	assert.Equal(t, "SRE", data[0]["placed_role"])
	assert.Equal(t, []any{}, data[0]["skills"])
}

func TestJobFitHandler(t *testing.T) {
	sid, jid := uuid.New(), uuid.New()
	fit := usecase.JobMatch{
		MatchResult: matching.MatchResult{ActorID: sid, RequirementID: jid, Score: 80, MatchedSkills: []string{"go"}},
		Title:       "Backend Engineer",
		Company:     "Acme",
	}
	h := NewJobFitHandler(fakeJobFit{
		fit:        fit,
		jobs:       []usecase.JobMatch{fit},
		candidates: []usecase.CandidateMatch{{MatchResult: fit.MatchResult, Name: "Dewi"}},
	})
	app := newTestApp(func(r fiber.Router) {
		r.Get("/students/:student_id/jobs/:job_id/fit", h.GetFit)
		r.Get("/students/:student_id/job-matches", h.GetJobMatches)
		r.Get("/jobs/:job_id/candidates", h.GetCandidates)
	})

	status, env := do(t, app, "/students/"+sid.String()+"/jobs/"+jid.String()+"/fit")
	require.Equal(t, http.StatusOK, status)
	var one map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &one))
	assert.Equal(t, float64(80), one["score"])
	assert.Equal(t, "Acme", one["company"])
	assert.Equal(t, []any{}, one["missing_skills"])

	status, env = do(t, app, "/students/"+sid.String()+"/job-matches?min_score=60")
	require.Equal(t, http.StatusOK, status)
	var many []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &many))
	assert.Len(t, many, 1)

	status, env = do(t, app, "/jobs/"+jid.String()+"/candidates")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &many))
	assert.Equal(t, "Dewi", many[0]["name"])

	status, _ = do(t, app, "/students/"+sid.String()+"/jobs/nope/fit")
	assert.Equal(t, http.StatusBadRequest, status)

	h = NewJobFitHandler(fakeJobFit{err: usecase.ErrJobNotFound})
	app = newTestApp(func(r fiber.Router) { r.Get("/jobs/:job_id/candidates", h.GetCandidates) })
	status, env = do(t, app, "/jobs/"+jid.String()+"/candidates")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Job not found", env.Message)
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	app := newTestApp(NewHealthHandler(map[string]Pinger{"database": pinger{}, "redis": nil}).RegisterRoutes)
	status, env := do(t, app, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"database":"up"}`, string(env.Data))

	app = newTestApp(NewHealthHandler(map[string]Pinger{"database": pinger{err: errors.New("down")}}).RegisterRoutes)
	status, env = do(t, app, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.JSONEq(t, `{"database":"down"}`, string(env.Data))
}

func TestMetricsHandler(t *testing.T) {
	m := metrics.NewManager()
	m.RecordBundle()
	app := fiber.New()
	NewMetricsHandler(m.Handler()).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "placement_engine_bundles_total 1")
}
