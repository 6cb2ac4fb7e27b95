package skills

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// StrongMatchThreshold is the similarity at or above which two skills
	// count as the same skill.
	StrongMatchThreshold = 0.8

	substringSimilarity = 0.8
	minRatio            = 0.7
)

// Normalize lowercases and trims skill and returns it together with every
// known synonym of it.
func Normalize(skill string) map[string]struct{} {
	s := strings.ToLower(strings.TrimSpace(skill))
	variants := map[string]struct{}{s: {}}

	for main, aliases := range synonyms {
		switch {
		case s == main:
			for _, a := range aliases {
				variants[a] = struct{}{}
			}
		case contains(aliases, s):
			variants[main] = struct{}{}
			for _, a := range aliases {
				variants[a] = struct{}{}
			}
		}
	}
	return variants
}

// Similarity scores how alike two skill strings are, in [0, 1].
//
// Exact (case-insensitive) and synonym matches score 1, substring containment
// scores 0.8, otherwise the sequence-matching ratio is used when above 0.7.
func Similarity(a, b string) float64 {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == lb {
		return 1
	}
	if la == "" || lb == "" {
		return 0
	}
	if intersects(Normalize(la), Normalize(lb)) {
		return 1
	}
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return substringSimilarity
	}

	r := ratio(la, lb)
	if r > minRatio {
		return r
	}
	return 0
}

// ratio orders its operands so that the result does not depend on argument
// order; the matcher itself is not symmetric.
func ratio(a, b string) float64 {
	if a > b {
		a, b = b, a
	}
	m := difflib.NewMatcher(runes(a), runes(b))
	return m.Ratio()
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func intersects(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
