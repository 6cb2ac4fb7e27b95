package matching

// experienceBand grades years against the [lo, hi] window.
func experienceBand(years, lo, hi int) float64 {
	switch {
	case years >= lo && years <= hi:
		return 100
	case years > hi && years <= hi+3:
		return 90
	case years >= lo-1 && years < lo:
		return 75
	case years > hi+5:
		return 70
	case years >= lo-2 && years < lo-1:
		return 50
	default:
		return 25
	}
}

func scoreExperience(years int, requirement string) *ExperienceResult {
	er := ParseExperienceRequirement(requirement)
	return &ExperienceResult{
		Score:       experienceBand(years, er.MinYears, er.MaxYears),
		ResumeYears: years,
		RequiredMin: er.MinYears,
		RequiredMax: er.MaxYears,
		LevelMatch:  er.Level,
	}
}
