package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumematch/internal/export"
	"github.com/muhammadolammi/resumematch/internal/extract"
	"github.com/muhammadolammi/resumematch/internal/matching"
	"github.com/muhammadolammi/resumematch/internal/resume"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRequirement(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "job.json", `{"title":"Backend Engineer","skills_required":["Go"],"experience_required":"3-5 years"}`)

	req, err := loadRequirement(path)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", req.Title)
	assert.Equal(t, []string{"Go"}, req.SkillsRequired)
	assert.Equal(t, "3-5 years", req.ExperienceRequired)

	_, err = loadRequirement(writeFile(t, dir, "bad.json", "{"))
	assert.ErrorContains(t, err, "decoding job")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	parser := resume.NewParser()

	profile, err := parseFile(parser, writeFile(t, dir, "jane.txt", resumeText))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.CandidateName)

	_, err = parseFile(parser, writeFile(t, dir, "old.doc", "\x00\x01\x02\x03"))
	assert.ErrorIs(t, err, extract.ErrUnsupportedFormat)

	_, err = parseFile(parser, filepath.Join(dir, "missing.txt"))
	assert.ErrorContains(t, err, "reading resume")
}

func TestScoreFiles_RanksAndKeepsFailures(t *testing.T) {
	dir := t.TempDir()
	strong := writeFile(t, dir, "strong.txt", resumeText)
	weak := writeFile(t, dir, "weak.txt", "John Smith\nWarehouse associate\nForklift certified\n")
	broken := writeFile(t, dir, "broken.doc", "\x00\x01\x02\x03")

	matcher, err := matching.New()
	require.NoError(t, err)
	req := matching.Requirement{
		Title:              "Backend Engineer",
		SkillsRequired:     []string{"Python", "Go"},
		ExperienceRequired: "3+ years",
	}

	candidates := scoreFiles(resume.NewParser(), matcher, req, []string{weak, broken, strong}, 2, zap.NewNop())

	require.Len(t, candidates, 3)
	assert.Equal(t, weak, candidates[0].File, "input order is kept")
	assert.NotEmpty(t, candidates[1].Result.Error)
	assert.Nil(t, candidates[1].Profile)

	entries := rankedEntries(export.Rank(candidates))
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, strong, entries[0].File)
	assert.Equal(t, "Jane Doe", entries[0].CandidateName)
	assert.Equal(t, broken, entries[2].File)
	assert.Equal(t, resume.NotSpecified, entries[2].CandidateName)
}

func TestPDFEngines(t *testing.T) {
	for _, e := range pdfEngines(false) {
		assert.NotEqual(t, "pdftotext", e.Name())
	}
	engines := pdfEngines(true)
	require.GreaterOrEqual(t, len(engines), 2)
	assert.Equal(t, "plaintext", engines[0].Name())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeJSON(&buf, map[string]int{"rank": 1}))

	assert.Equal(t, "{\n  \"rank\": 1\n}\n", buf.String())
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "resumematch version: unknown\n", buf.String())
}
