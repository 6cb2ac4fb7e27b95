package resume

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

var (
	degreeKeywords = []string{
		"bachelor", "master", "phd", "doctorate", "diploma", "certificate",
		"b.tech", "b.sc", "m.tech", "m.sc", "btech", "mtech", "mba", "bba", "be", "me",
		"bs", "ms", "ba", "ma", "bca", "mca",
	}

	// shortDegreeSuffixes lists the endings a short keyword may carry and
	// still name a degree, as in "bsc".
	shortDegreeSuffixes = map[string][]string{"bs": {"c"}, "ms": {"c"}}

	graduationYearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// hasDegreeKeyword matches short keywords such as "ba" or "ms" only at the
// start of a word, and only when the rest of the word is a degree suffix. So
// "BSc" and "MSc" count while "state" and "member" do not.
func hasDegreeKeyword(lower string) bool {
	var words []string
	for _, k := range degreeKeywords {
		if len(k) > 3 {
			if strings.Contains(lower, k) {
				return true
			}
			continue
		}
		if words == nil {
			words = strings.FieldsFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) })
		}
		for _, w := range words {
			rest, ok := strings.CutPrefix(w, k)
			if ok && (rest == "" || slices.Contains(shortDegreeSuffixes[k], rest)) {
				return true
			}
		}
	}
	return false
}

// ExtractEducation reads education records from the education span. A line
// naming a degree opens a record; following lines fill year and institution.
func ExtractEducation(section string) []Education {
	var (
		out []Education
		cur *Education
	)

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if hasDegreeKeyword(strings.ToLower(line)) {
			if cur != nil {
				out = append(out, *cur)
			}
			cur = &Education{Degree: line, Institution: NotSpecified, Year: NotSpecified}
			if y := graduationYears(line); y != "" {
				cur.Year = y
			}
			continue
		}
		if cur == nil {
			continue
		}

		if y := graduationYears(line); y != "" {
			cur.Year = y
			continue
		}
		if cur.Institution == NotSpecified && len(strings.Fields(line)) <= 6 {
			cur.Institution = line
		}
	}
	if cur != nil {
		out = append(out, *cur)
	}
	if out == nil {
		return []Education{}
	}
	return out
}

// graduationYears formats the years on a line as "2013 - 2017" when there are
// two, otherwise as the latest one.
func graduationYears(line string) string {
	found := graduationYearRe.FindAllString(line, -1)
	if len(found) == 0 {
		return ""
	}
	years := make([]int, 0, len(found))
	for _, f := range found {
		y, _ := strconv.Atoi(f)
		years = append(years, y)
	}
	if len(years) == 2 {
		return fmt.Sprintf("%d - %d", slices.Min(years), slices.Max(years))
	}
	return strconv.Itoa(slices.Max(years))
}
