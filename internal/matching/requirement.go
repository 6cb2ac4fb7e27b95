// Package matching scores a parsed résumé profile against a job requirement.
package matching

import (
	"regexp"
	"strconv"
	"strings"
)

// Requirement is the read-only job record a profile is scored against.
type Requirement struct {
	Title              string   `json:"title"`
	SkillsRequired     []string `json:"skills_required"`
	SkillsPreferred    []string `json:"skills_preferred"`
	ExtractedSkills    []string `json:"extracted_skills"`
	ExperienceRequired string   `json:"experience_required"`
	Requirements       string   `json:"requirements"`
	DescriptionText    string   `json:"description_text"`
}

// ExperienceRequirement is the resolved years window of a job.
type ExperienceRequirement struct {
	MinYears int    `json:"min_years"`
	MaxYears int    `json:"max_years"`
	Level    string `json:"level"`
}

const (
	anyLevel        = "any"
	defaultMaxYears = 20
	openEndedSpread = 3
)

type yearsPattern struct {
	re      *regexp.Regexp
	bounded bool
}

// Tried in order; the first pattern that matches sets the window.
var yearsPatterns = []yearsPattern{
	{regexp.MustCompile(`(\d+)\s*(?:-|–|to)\s*(\d+)\s*\+?\s*years?`), true},
	{regexp.MustCompile(`(\d+)\s*\+\s*years?`), false},
	{regexp.MustCompile(`minimum\s*(?:of\s*)?(\d+)\s*years?`), false},
	{regexp.MustCompile(`at least\s*(\d+)\s*years?`), false},
	{regexp.MustCompile(`(\d+)\s*years?`), false},
}

// levels is checked in order; the first keyword found names the level.
var levels = []struct {
	name     string
	min, max int
}{
	{"junior", 0, 2},
	{"entry", 0, 1},
	{"mid", 2, 5},
	{"senior", 5, 10},
	{"lead", 7, 15},
	{"principal", 10, 20},
}

// ParseExperienceRequirement reads a free-text requirement such as
// "3-5 years" or "senior". Numeric years take precedence over level
// defaults; a requirement without an upper bound spans three years.
func ParseExperienceRequirement(text string) ExperienceRequirement {
	out := ExperienceRequirement{MaxYears: defaultMaxYears, Level: anyLevel}
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return out
	}

	numeric := false
	for _, p := range yearsPatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		out.MinYears, _ = strconv.Atoi(m[1])
		out.MaxYears = out.MinYears + openEndedSpread
		if p.bounded {
			out.MaxYears, _ = strconv.Atoi(m[2])
			if out.MaxYears < out.MinYears {
				out.MinYears, out.MaxYears = out.MaxYears, out.MinYears
			}
		}
		numeric = true
		break
	}

	for _, l := range levels {
		if !strings.Contains(lower, l.name) {
			continue
		}
		out.Level = l.name
		if !numeric {
			out.MinYears, out.MaxYears = l.min, l.max
		}
		break
	}
	return out
}
