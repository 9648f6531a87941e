package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" React ", "react", "", "   ", "PYTHON", "Node.js"})
	assert.Equal(t, SkillSet{"react", "python", "node.js"}, got)

	empty := Normalize(nil)
	require.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestSkillSet_Contains(t *testing.T) {
	s := Normalize([]string{"Go", "SQL"})
	assert.True(t, s.Contains(" go "))
	assert.False(t, s.Contains("golang"))
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a    []string
		b    []string
		want float64
	}{
		{"identical", []string{"Java", "SQL"}, []string{"java", " sql"}, 1.0},
		{"disjoint", []string{"Java", "SQL"}, []string{"Go", "Rust"}, 0.0},
		{"half", []string{"java", "sql"}, []string{"java"}, 0.5},
		{"left empty", nil, []string{"go"}, 0.0},
		{"both empty", []string{}, []string{""}, 0.0},
		{"duplicates ignored", []string{"go", "GO", "sql"}, []string{"go", "docker"}, 1.0 / 3.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Similarity(tc.a, tc.b)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.Equal(t, got, Similarity(tc.b, tc.a), "similarity must be symmetric")
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
