package resume

import (
	"strings"

	"github.com/muhammadolammi/resumematch/internal/skills"
)

var (
	bulletMarkers = []string{"•", "-", "*"}
	actionVerbs   = []string{"Built", "Developed", "Implemented", "Created", "Designed"}
)

// isProjectTitle reports whether line starts a new project: a short line that
// is neither a bullet nor a sentence opening with an action verb.
func isProjectTitle(line string) bool {
	for _, p := range bulletMarkers {
		if strings.HasPrefix(line, p) {
			return false
		}
	}
	for _, v := range actionVerbs {
		if strings.HasPrefix(line, v) {
			return false
		}
	}
	return len(strings.Fields(line)) <= 8
}

// ExtractProjects reads project records from the projects span. Technologies
// are the vocabulary skills mentioned in a project's name or description.
func ExtractProjects(section string) []Project {
	var (
		out []Project
		cur *Project
	)

	flush := func() {
		if cur == nil {
			return
		}
		cur.Technologies = skills.Extract(cur.Name + " " + cur.Description)
		out = append(out, *cur)
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isProjectTitle(line) {
			flush()
			cur = &Project{Name: line}
			continue
		}
		if cur == nil {
			continue
		}

		desc := strings.TrimSpace(strings.TrimLeft(line, "•-* "))
		if cur.Description != "" {
			cur.Description += " "
		}
		cur.Description += desc
	}
	flush()

	if out == nil {
		return []Project{}
	}
	return out
}
