package matching

var recommendationBands = []struct {
	min    float64
	status string
	reason string
}{
	{85, "Highly Recommended", "Strong match across all criteria"},
	{70, "Recommended", "Good overall match with minor gaps"},
	{55, "Consider", "Moderate match, may need additional evaluation"},
	{40, "Weak Match", "Significant gaps in requirements"},
}

const (
	InsightMissingSkills      = "Missing critical required skills"
	InsightExperienceMismatch = "Experience level mismatch"
	InsightExcellentFit       = "Excellent technical fit"
)

func recommend(overall float64, sk *SkillsResult, exp *ExperienceResult) *Recommendation {
	rec := &Recommendation{
		Status:   "Not Recommended",
		Reason:   "Poor match for this position",
		Insights: []string{},
	}
	for _, b := range recommendationBands {
		if overall >= b.min {
			rec.Status, rec.Reason = b.status, b.reason
			break
		}
	}

	if sk.Required < 70 {
		rec.Insights = append(rec.Insights, InsightMissingSkills)
	}
	if exp.Score < 60 {
		rec.Insights = append(rec.Insights, InsightExperienceMismatch)
	}
	if sk.Required > 90 && exp.Score > 85 {
		rec.Insights = append(rec.Insights, InsightExcellentFit)
	}
	return rec
}
