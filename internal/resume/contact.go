package resume

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nameRejectRe = regexp.MustCompile(`[@\d+\-()]`)

	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// Tried in order; the first pattern with any match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
	}

	linkedInPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),
		regexp.MustCompile(`(?i)linkedin\.com/[\w-]+`),
		regexp.MustCompile(`(?i)www\.linkedin\.com/in/[\w-]+`),
	}

	// Patterns with a capture group yield the group, trimmed.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Location[:\s]+([^\n]+)`),
		regexp.MustCompile(`(?i)Address[:\s]+([^\n]+)`),
		regexp.MustCompile(`\b([A-Z][a-z]+,[ \t]*[A-Z][a-z]+)\b`),
		regexp.MustCompile(`\b([A-Z][a-z]+,[ \t]*[A-Z]{2})\b`),
	}
)

// ExtractName returns the first of the leading five lines that looks like a
// person's name, title-cased, or "".
func ExtractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if nameRejectRe.MatchString(line) || len(line) <= 3 {
			continue
		}
		if allAlpha(words) {
			return cases.Title(language.Und).String(line)
		}
	}
	return ""
}

func allAlpha(words []string) bool {
	for _, w := range words {
		w = strings.ReplaceAll(w, ".", "")
		if w == "" {
			return false
		}
		for _, r := range w {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

// ExtractContact runs the contact patterns over text. Unmatched fields are "".
func ExtractContact(text string) ContactInfo {
	return ContactInfo{
		Email:    emailRe.FindString(text),
		Phone:    firstMatch(text, phonePatterns),
		LinkedIn: firstMatch(text, linkedInPatterns),
		Location: firstMatch(text, locationPatterns),
	}
}

func firstMatch(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}
