package resume

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	roleWords    = `Developer|Engineer|Manager|Analyst|Specialist`
	companyWords = `LLC|Inc|Corp|Company|Solutions|Group`
	monthRange   = `[A-Za-z]+ \d{4}\s*[-–—]\s*(?:Present|Current|[A-Za-z]+ \d{4})`
)

var (
	monthYearRangeRe = regexp.MustCompile(`(?i)([A-Za-z]+ \d{4})\s*[-–—]\s*(present|current|[A-Za-z]+ \d{4})(?:\s*\([^)]+\))?`)
	yearRangeRe      = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(present|current|\d{4})`)
	fourDigitsRe     = regexp.MustCompile(`\d{4}`)
	inlineRangeRe    = regexp.MustCompile(`(?i)` + monthRange)

	// jobPatterns run in order over the experience span. Groups are position,
	// company and, when present, duration.
	jobPatterns = []*regexp.Regexp{
		// Title | Company Inc | Jan 2020 - Present
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z \t]+(?:` + roleWords + `|Programmer)[^|\n]*?)[ \t]*\|[ \t]*([^|\n]+?(?:` + companyWords + `|Tech)[^|\n]*?)[ \t]*\|[ \t]*(` + monthRange + `)`),
		// Title
		// Company Inc
		// Jan 2020 - Present
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z \t]+(?:` + roleWords + `))[ \t]*[\n\r]+([^|\n]+(?:` + companyWords + `))[^|\n]*[\n\r]*(` + monthRange + `)`),
		// Title | Company Inc
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z \t]+(?:` + roleWords + `)[^|\n]*?)[ \t]*\|[ \t]*([A-Z][^|\n]+?(?:` + companyWords + `|Tech))`),
		// Title at Company
		regexp.MustCompile(`(?i)([A-Z][a-zA-Z \t]+(?:Developer|Engineer|Manager)[^|\n]*?)[ \t]+at[ \t]+([A-Z][^|\n]+?)[ \t]*(?:\||\n)`),
	}

	summaryYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:experienced|seasoned|senior).*?with\s*(\d+)\s*years?\s*of\s*(?:expertise|experience)`),
		regexp.MustCompile(`(\d+)\s*years?\s*of\s*(?:expertise|experience).*?(?:developer|engineer|professional)`),
		regexp.MustCompile(`professional.*?with\s*(\d+)\s*years?`),
	}
	annotatedYearsRe  = regexp.MustCompile(`\((\d+)\s*years?\)`)
	annotatedMonthsRe = regexp.MustCompile(`\((\d+)\s*months?\)`)
)

type dateRange struct {
	start, end string
	from, to   int
	used       bool
}

func (d *dateRange) String() string { return d.start + " - " + d.end }

// findDateRanges returns the date ranges in section in document order.
// Year-only ranges inside a month-year range are not repeated.
func findDateRanges(section string) []*dateRange {
	var out []*dateRange
	for _, m := range monthYearRangeRe.FindAllStringSubmatchIndex(section, -1) {
		out = append(out, &dateRange{
			start: strings.TrimSpace(section[m[2]:m[3]]),
			end:   strings.TrimSpace(section[m[4]:m[5]]),
			from:  m[0],
			to:    m[1],
		})
	}
	monthYear := len(out)
	for _, m := range yearRangeRe.FindAllStringSubmatchIndex(section, -1) {
		if overlapsRange(out[:monthYear], m[0], m[1]) {
			continue
		}
		out = append(out, &dateRange{
			start: section[m[2]:m[3]],
			end:   section[m[4]:m[5]],
			from:  m[0],
			to:    m[1],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].from < out[j].from })
	return out
}

func overlapsRange(ranges []*dateRange, from, to int) bool {
	for _, r := range ranges {
		if from < r.to && r.from < to {
			return true
		}
	}
	return false
}

// entryStrategy attempts to build experience entries from the experience span.
// A strategy that finds nothing returns an empty slice.
type entryStrategy func(section string, ranges []*dateRange) []Experience

var entryStrategies = []entryStrategy{
	structuredEntries,
	pipeEntries,
	syntheticEntries,
}

type located struct {
	Experience
	pos int
}

// structuredEntries applies jobPatterns. Text already claimed by an earlier
// match is not matched again. Entries without a captured duration take the
// next unused date range.
func structuredEntries(section string, ranges []*dateRange) []Experience {
	var (
		found   []located
		claimed [][2]int
	)

	for _, re := range jobPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(section, -1) {
			if overlapsSpan(claimed, m[0], m[1]) {
				continue
			}
			position := strings.TrimSpace(section[m[2]:m[3]])
			company := strings.TrimSpace(section[m[4]:m[5]])
			if position == "" || company == "" {
				continue
			}

			var duration string
			if len(m) > 7 && m[6] >= 0 {
				duration = strings.TrimSpace(section[m[6]:m[7]])
				for _, r := range ranges {
					if m[6] < r.to && r.from < m[7] {
						r.used = true
					}
				}
			}

			claimed = append(claimed, [2]int{m[0], m[1]})
			found = append(found, located{
				Experience: Experience{Position: position, Company: company, Duration: duration},
				pos:        m[0],
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	out := make([]Experience, 0, len(found))
	for _, f := range found {
		if f.Duration == "" {
			f.Duration = NotSpecified
			for _, r := range ranges {
				if !r.used {
					r.used = true
					f.Duration = r.String()
					break
				}
			}
		}
		out = append(out, f.Experience)
	}
	return out
}

func overlapsSpan(spans [][2]int, from, to int) bool {
	for _, s := range spans {
		if from < s[1] && s[0] < to {
			return true
		}
	}
	return false
}

// pipeEntries splits "Title | Company | Dates" lines that mention a role.
func pipeEntries(section string, _ []*dateRange) []Experience {
	var out []Experience
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "|") {
			continue
		}
		if !strings.Contains(line, "Developer") && !strings.Contains(line, "Engineer") && !strings.Contains(line, "Manager") {
			continue
		}

		parts := strings.Split(line, "|")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < 2 {
			continue
		}

		rest := strings.Join(parts[1:], " | ")
		company, duration := rest, NotSpecified
		if loc := inlineRangeRe.FindStringIndex(rest); loc != nil {
			duration = rest[loc[0]:loc[1]]
			company = strings.Trim(rest[:loc[0]]+rest[loc[1]:], " |")
		}
		out = append(out, Experience{Position: parts[0], Company: company, Duration: duration})
	}
	return out
}

// syntheticEntries emits a placeholder entry per date range.
func syntheticEntries(_ string, ranges []*dateRange) []Experience {
	out := make([]Experience, 0, len(ranges))
	for i, r := range ranges {
		out = append(out, Experience{
			Position: fmt.Sprintf("Position %d", i+1),
			Company:  "Company not specified",
			Duration: r.String(),
		})
	}
	return out
}

type yearsInput struct {
	lower   string
	ranges  []*dateRange
	entries int
	now     time.Time
}

// yearsRule resolves total years from one kind of evidence. ok is false when
// the rule found nothing to go on.
type yearsRule func(in yearsInput) (years int, ok bool)

var yearsRules = []yearsRule{
	summaryYears,
	annotatedYears,
	rangeYears,
	entryCountYears,
}

// summaryYears takes the largest "with N years of experience" style claim.
func summaryYears(in yearsInput) (int, bool) {
	best, ok := 0, false
	for _, re := range summaryYearsPatterns {
		for _, m := range re.FindAllStringSubmatch(in.lower, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 || n > 50 {
				continue
			}
			if n > best {
				best = n
			}
			ok = true
		}
	}
	return best, ok
}

// annotatedYears sums "(N years)" annotations plus whole years of "(N months)".
func annotatedYears(in yearsInput) (int, bool) {
	years, n := sumMatches(annotatedYearsRe, in.lower)
	if n == 0 {
		return 0, false
	}
	months, _ := sumMatches(annotatedMonthsRe, in.lower)
	return years + months/12, true
}

// rangeYears sums the span of every date range, counting at least one year
// per range.
func rangeYears(in yearsInput) (int, bool) {
	total, ok := 0, false
	for _, r := range in.ranges {
		s := fourDigitsRe.FindString(r.start)
		if s == "" {
			continue
		}
		start, _ := strconv.Atoi(s)

		end := in.now.Year()
		lowerEnd := strings.ToLower(r.end)
		if !strings.Contains(lowerEnd, "present") && !strings.Contains(lowerEnd, "current") {
			if e := fourDigitsRe.FindString(r.end); e != "" {
				end, _ = strconv.Atoi(e)
			}
		}

		if start <= 0 || end < start {
			continue
		}
		total += max(end-start, 1)
		ok = true
	}
	return total, ok
}

func entryCountYears(in yearsInput) (int, bool) {
	months, _ := sumMatches(annotatedMonthsRe, in.lower)
	return in.entries + months/12, true
}

// sumMatches adds up the first group of every match of re and reports how
// many matches there were.
func sumMatches(re *regexp.Regexp, s string) (total, count int) {
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += n
			count++
		}
	}
	return total, count
}

// ExtractExperience builds job entries from the experience span and resolves
// total years from the full text. The first strategy or rule that yields a
// result wins.
func ExtractExperience(text, section string, now time.Time) ([]Experience, int) {
	ranges := findDateRanges(section)

	entries := []Experience{}
	for _, strategy := range entryStrategies {
		if found := strategy(section, ranges); len(found) > 0 {
			entries = found
			break
		}
	}

	in := yearsInput{
		lower:   strings.ToLower(text),
		ranges:  ranges,
		entries: len(entries),
		now:     now,
	}
	years := 0
	for _, rule := range yearsRules {
		if n, ok := rule(in); ok {
			years = n
			break
		}
	}
	return entries, max(years, 0)
}
