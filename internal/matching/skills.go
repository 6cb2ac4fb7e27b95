package matching

import "github.com/muhammadolammi/resumematch/internal/skills"

// requiredShare is the fraction of an undifferentiated skill list treated as
// required.
const requiredShare = 60

// splitSkills returns the required and preferred lists, deriving them from
// ExtractedSkills when the job gives no explicit split.
func splitSkills(req Requirement) (required, preferred []string) {
	required, preferred = req.SkillsRequired, req.SkillsPreferred
	if len(required) > 0 || len(preferred) > 0 {
		return required, preferred
	}
	all := req.ExtractedSkills
	if len(all) == 0 {
		return nil, nil
	}
	split := max(1, len(all)*requiredShare/100)
	return all[:split], all[split:]
}

// bestMatch returns the résumé skill most similar to jobSkill. Ties keep the
// earliest résumé skill.
func bestMatch(jobSkill string, resumeSkills []string) (best float64, skill string) {
	for _, rs := range resumeSkills {
		if s := skills.Similarity(jobSkill, rs); s > best {
			best, skill = s, rs
		}
	}
	return best, skill
}

func scoreSkills(resumeSkills []string, req Requirement) *SkillsResult {
	out := &SkillsResult{
		MatchedSkills:   []SkillMatch{},
		MissingRequired: []string{},
	}

	required, preferred := splitSkills(req)
	if len(required) == 0 && len(preferred) == 0 {
		return out
	}

	accumulate := func(jobSkills []string, typ MatchType) float64 {
		var sum float64
		for _, js := range jobSkills {
			best, rs := bestMatch(js, resumeSkills)
			if best < skills.StrongMatchThreshold {
				if typ == MatchRequired {
					out.MissingRequired = append(out.MissingRequired, js)
				}
				continue
			}
			sum += best
			out.MatchedSkills = append(out.MatchedSkills, SkillMatch{
				JobSkill:    js,
				ResumeSkill: rs,
				Similarity:  round2(best),
				Type:        typ,
			})
		}
		return sum
	}

	requiredScore, preferredScore := 100.0, 100.0
	if sum := accumulate(required, MatchRequired); len(required) > 0 {
		requiredScore = sum / float64(len(required)) * 100
	}
	if sum := accumulate(preferred, MatchPreferred); len(preferred) > 0 {
		preferredScore = sum / float64(len(preferred)) * 100
	}

	out.Overall = round2(requiredScore*0.8 + preferredScore*0.2)
	out.Required = round2(requiredScore)
	out.Preferred = round2(preferredScore)
	return out
}
