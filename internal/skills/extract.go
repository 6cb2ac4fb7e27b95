package skills

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Extract returns the canonical skills mentioned in text, deduplicated and
// sorted. Multi-word skills match by substring, single tokens only when they
// stand alone.
func Extract(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]struct{})

	for _, skill := range vocabulary {
		var hit bool
		if strings.Contains(skill, " ") {
			hit = strings.Contains(lower, skill)
		} else {
			hit = ContainsToken(lower, skill)
		}
		if hit {
			found[Canonical(skill)] = struct{}{}
		}
	}

	for _, a := range abbreviations {
		if ContainsToken(lower, a.short) {
			found[a.full] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Canonical title-cases an all-lowercase label and keeps any other casing.
func Canonical(skill string) string {
	skill = strings.TrimSpace(skill)
	if !isLower(skill) {
		return skill
	}
	return cases.Title(language.Und).String(skill)
}

// ContainsToken reports whether tok occurs in text with no letter or digit
// directly before or after it.
func ContainsToken(text, tok string) bool {
	if tok == "" {
		return false
	}
	for start := 0; start <= len(text)-len(tok); {
		i := strings.Index(text[start:], tok)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(tok)
		if !wordRuneBefore(text, i) && !wordRuneAfter(text, end) {
			return true
		}
		start = i + 1
	}
	return false
}

func wordRuneBefore(text string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordRuneAfter(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}
