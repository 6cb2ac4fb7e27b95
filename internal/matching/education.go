package matching

import (
	"strings"

	"github.com/muhammadolammi/resumematch/internal/resume"
)

var educationLevels = []struct {
	keyword string
	score   float64
}{
	{"phd", 100},
	{"doctorate", 100},
	{"master", 90},
	{"mba", 90},
	{"bachelor", 80},
	{"degree", 80},
	{"associate", 60},
	{"diploma", 50},
	{"certificate", 50},
	{"high school", 30},
}

const (
	noEducationScore      = 50
	unknownEducationScore = 60
)

// scoreEducation prefers a level the job text asks for and the candidate
// holds, then the candidate's highest recognised level, then a flat default.
func scoreEducation(entries []resume.Education, jobText string) *EducationResult {
	if len(entries) == 0 {
		return &EducationResult{Score: noEducationScore, Details: "No education information found"}
	}

	jobLower := strings.ToLower(jobText)
	var best float64
	matched := -1

	for i := range entries {
		level := strings.ToLower(entries[i].Level())
		for _, el := range educationLevels {
			if el.score > best && strings.Contains(jobLower, el.keyword) && strings.Contains(level, el.keyword) {
				best, matched = el.score, i
			}
		}
	}

	if best == 0 {
		for i := range entries {
			level := strings.ToLower(entries[i].Level())
			for _, el := range educationLevels {
				if el.score > best && strings.Contains(level, el.keyword) {
					best, matched = el.score, i
				}
			}
		}
	}

	if best == 0 {
		best = unknownEducationScore
	}

	out := &EducationResult{Score: best, Details: "Matched: General education"}
	if matched >= 0 {
		e := entries[matched]
		out.MatchedEducation = &e
		out.Details = "Matched: " + e.Level()
	}
	return out
}
