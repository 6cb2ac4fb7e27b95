package resume

import "strings"

type Section int

const (
	SectionNone Section = iota
	SectionExperience
	SectionEducation
	SectionProjects
	SectionSkills
	SectionCertifications
	numSections
)

func (s Section) String() string {
	switch s {
	case SectionExperience:
		return "experience"
	case SectionEducation:
		return "education"
	case SectionProjects:
		return "projects"
	case SectionSkills:
		return "skills"
	case SectionCertifications:
		return "certifications"
	default:
		return "none"
	}
}

// sectionKeywords is checked in order; the first section whose keyword a
// heading line contains wins.
var sectionKeywords = []struct {
	section  Section
	keywords []string
}{
	{SectionExperience, []string{"experience", "work history", "employment", "career"}},
	{SectionEducation, []string{"education", "academic", "qualification"}},
	{SectionProjects, []string{"projects", "project work", "key projects"}},
	{SectionSkills, []string{"skills"}},
	{SectionCertifications, []string{"certifications"}},
}

// Spans holds the text accumulated under each section heading.
type Spans struct {
	text [numSections]string
}

// Get returns the span for s, or "" if the section never appeared.
func (sp Spans) Get(s Section) string {
	if s <= SectionNone || s >= numSections {
		return ""
	}
	return sp.text[s]
}

// Segment scans text once and assigns lines to sections. A line containing a
// section keyword is a heading: it is not part of any span, it closes the
// current section, and it opens the named one. A closed section is never
// reopened, so later headings for it only end the current span.
func Segment(text string) Spans {
	var (
		b      [numSections]strings.Builder
		closed [numSections]bool
		state  = SectionNone
	)

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		if state != SectionNone && hasKeyword(lower, state) {
			continue
		}
		if next, ok := classify(lower); ok {
			if state != SectionNone {
				closed[state] = true
			}
			state = next
			if closed[next] {
				state = SectionNone
			}
			continue
		}
		if state != SectionNone {
			b[state].WriteString(line)
			b[state].WriteString("\n")
		}
	}

	var sp Spans
	for i := range b {
		sp.text[i] = b[i].String()
	}
	return sp
}

func classify(lower string) (Section, bool) {
	for _, sk := range sectionKeywords {
		if containsAny(lower, sk.keywords) {
			return sk.section, true
		}
	}
	return SectionNone, false
}

func hasKeyword(lower string, s Section) bool {
	for _, sk := range sectionKeywords {
		if sk.section == s {
			return containsAny(lower, sk.keywords)
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
