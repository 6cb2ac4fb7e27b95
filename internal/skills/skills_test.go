package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_VocabularyAndAbbreviations(t *testing.T) {
	text := "Built REST services in Python and Flask backed by SQL.\nFrontend in JS with Machine Learning features."

	got := Extract(text)

	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "Flask")
	assert.Contains(t, got, "Sql")
	assert.Contains(t, got, "Machine Learning")
	assert.Contains(t, got, "JavaScript", "abbreviation js expands alongside literal matches")
	assert.IsIncreasing(t, got)
}

func TestExtract_SingleTokensNeedBoundaries(t *testing.T) {
	got := Extract("A good range of rigorous work, managed by the rustic team")

	assert.NotContains(t, got, "Go")
	assert.NotContains(t, got, "R")
	assert.NotContains(t, got, "Rust")
}

func TestExtract_SymbolSkills(t *testing.T) {
	got := Extract("Languages: C++, C# and Node.js")

	assert.Contains(t, got, "C++")
	assert.Contains(t, got, "C#")
}

func TestExtract_Deduplicates(t *testing.T) {
	got := Extract("python PYTHON Python")

	assert.Equal(t, []string{"Python"}, got)
}

func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, Extract(""))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "Machine Learning", Canonical("machine learning"))
	assert.Equal(t, "JavaScript", Canonical("JavaScript"))
}

func TestContainsToken(t *testing.T) {
	tests := []struct {
		text string
		tok  string
		want bool
	}{
		{"i write go daily", "go", true},
		{"google cloud", "go", false},
		{"(go)", "go", true},
		{"go", "go", true},
		{"django dev", "go", false},
		{"", "go", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsToken(tt.text, tt.tok))
		})
	}
}

func TestNormalize(t *testing.T) {
	v := Normalize("  JS ")

	assert.Contains(t, v, "js")
	assert.Contains(t, v, "javascript")
	assert.Contains(t, v, "nodejs")
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"exact ignoring case", "Python", "python", 1.0},
		{"synonym", "JavaScript", "node.js", 1.0},
		{"alias to main", "k8s", "Kubernetes", 1.0},
		{"shared main skill", "mysql", "sqlite", 1.0},
		{"substring", "postgres", "postgresql", 0.8},
		{"unrelated", "python", "java", 0.0},
		{"empty", "", "python", 0.0},
		{"both empty", "", "  ", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Ratio(t *testing.T) {
	got := Similarity("kubernetes", "kubernets")

	assert.Greater(t, got, 0.7)
	assert.Less(t, got, 1.0)
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"python", "pyhton"},
		{"kubernetes", "kubernets"},
		{"react", "reactjs"},
		{"tensorflow", "tensor flow"},
		{"abcd", "bcda"},
		{"Django", "Python"},
		{"scikit-learn", "sklearn"},
	}

	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "%s vs %s", p[0], p[1])
	}
}
