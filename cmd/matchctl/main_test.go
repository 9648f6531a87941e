package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dewi   = "00000000-0000-0000-0000-000000000001"
	budi   = "00000000-0000-0000-0000-000000000002"
	sari   = "00000000-0000-0000-0000-000000000003"
	jobGo  = "10000000-0000-0000-0000-000000000001"
	jobPy  = "10000000-0000-0000-0000-000000000002"
	dsYAML = `
students:
  - id: ` + dewi + `
    name: Dewi
    skills: [Go, SQL, Docker, Redis]
    preferred_roles: [backend]
  - id: ` + budi + `
    name: Budi
    skills: [go, sql, docker]
    placed: true
    placed_role: Backend Engineer
    placed_company: Acme
  - id: ` + sari + `
    name: Sari
    skills: [python, ml]
  - name: Nobody
    skills: [go]
jobs:
  - id: ` + jobGo + `
    title: Backend Engineer
    company: Acme
    skills: [go, sql]
    posted_at: 2025-02-01T00:00:00Z
  - id: ` + jobPy + `
    title: Data Scientist
    company: Initech
    skills: [python, statistics]
transitions:
  - from_role: Intern
    to_role: Backend Engineer
    required_skills: [go, kubernetes]
    success_rate: 0.8
    avg_time_months: 6
  - from_role: Intern
    to_role: SRE
    required_skills: [terraform]
    success_rate: 0.6
    avg_time_months: 10
skill_edges:
  - source: linux
    target: terraform
    relation: prerequisite
`
)

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dsYAML), 0o600))
	return path
}

func run(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got), out.String())
	return got, nil
}

func TestBundleCommand(t *testing.T) {
	path := writeDataset(t)

	got, err := run(t, "bundle", "--data", path, "--student", dewi)
	require.NoError(t, err)

	data := got["data"].(map[string]any)
	similar := data["similar_students"].([]any)
	require.Len(t, similar, 1)
	assert.Equal(t, "Budi", similar[0].(map[string]any)["name"])
	assert.Equal(t, float64(8), data["timeline_months"])
	assert.Equal(t, float64(75), data["confidence"])

	diags := got["diagnostics"].([]any)
	require.Len(t, diags, 1)
	assert.Equal(t, "skipped_record", diags[0].(map[string]any)["kind"])
}

func TestFitCommand(t *testing.T) {
	path := writeDataset(t)

	got, err := run(t, "fit", "--data", path, "--student", dewi, "--job", jobGo)
	require.NoError(t, err)
	data := got["data"].(map[string]any)
	assert.Equal(t, float64(80), data["score"])
	assert.Equal(t, "Acme", data["company"])

	got, err = run(t, "fit", "-d", path, "-s", dewi)
	require.NoError(t, err)
	ranked := got["data"].([]any)
	require.Len(t, ranked, 1)
	assert.Equal(t, jobGo, ranked[0].(map[string]any)["job_id"])
}

func TestPeersCommand(t *testing.T) {
	path := writeDataset(t)

	got, err := run(t, "peers", "--data", path, "--student", dewi, "--min-similarity", "0")
	require.NoError(t, err)
	peers := got["data"].([]any)
	require.Len(t, peers, 2)
	assert.Equal(t, "Budi", peers[0].(map[string]any)["name"])

	got, err = run(t, "peers", "--data", path, "--student", dewi, "--matcher", "exact", "--top-n", "1")
	require.NoError(t, err)
	assert.Len(t, got["data"].([]any), 1)
}

func TestCommandErrors(t *testing.T) {
	path := writeDataset(t)

	_, err := run(t, "bundle", "--data", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--student is required")

	_, err = run(t, "bundle", "--data", path, "--student", "00000000-0000-0000-0000-0000000000ff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "student not found")

	_, err = run(t, "peers", "--data", path, "--student", dewi, "--min-similarity", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration error")

	_, err = run(t, "peers", "--data", path, "--student", dewi, "--matcher", "fuzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown skill matcher")

	_, err = run(t, "peers", "--data", filepath.Join(t.TempDir(), "missing.yaml"), "--student", dewi)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "open dataset"))
}

func TestDecodeDataset_RejectsUnknownFieldsAndBadIDs(t *testing.T) {
	_, err := decodeDataset(strings.NewReader("students:\n  - id: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "students[0]")

	_, err = decodeDataset(strings.NewReader("mentors: []\n"))
	require.Error(t, err)

	ds, err := decodeDataset(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ds.students)
}
