package matching

import "github.com/muhammadolammi/resumematch/internal/resume"

type MatchType string

const (
	MatchRequired  MatchType = "required"
	MatchPreferred MatchType = "preferred"
)

type SkillMatch struct {
	JobSkill    string    `json:"job_skill"`
	ResumeSkill string    `json:"resume_skill"`
	Similarity  float64   `json:"similarity"`
	Type        MatchType `json:"type"`
}

type SkillsResult struct {
	Overall         float64      `json:"overall"`
	Required        float64      `json:"required"`
	Preferred       float64      `json:"preferred"`
	MatchedSkills   []SkillMatch `json:"matched_skills"`
	MissingRequired []string     `json:"missing_required"`
}

type ExperienceResult struct {
	Score       float64 `json:"score"`
	ResumeYears int     `json:"resume_years"`
	RequiredMin int     `json:"required_min"`
	RequiredMax int     `json:"required_max"`
	LevelMatch  string  `json:"level_match"`
}

type EducationResult struct {
	Score            float64           `json:"score"`
	MatchedEducation *resume.Education `json:"matched_education"`
	Details          string            `json:"details"`
}

type Recommendation struct {
	Status   string   `json:"status"`
	Reason   string   `json:"reason"`
	Insights []string `json:"insights"`
}

// Breakdown reports the weights used, in percent.
type Breakdown struct {
	SkillsWeight     float64 `json:"skills_weight"`
	ExperienceWeight float64 `json:"experience_weight"`
	EducationWeight  float64 `json:"education_weight"`
}

// Result is one profile scored against one requirement. A result with Error
// set carries only OverallScore 0.
type Result struct {
	OverallScore   float64           `json:"overall_score"`
	Skills         *SkillsResult     `json:"skills,omitempty"`
	Experience     *ExperienceResult `json:"experience,omitempty"`
	Education      *EducationResult  `json:"education,omitempty"`
	Recommendation *Recommendation   `json:"recommendation,omitempty"`
	MatchBreakdown *Breakdown        `json:"match_breakdown,omitempty"`
	Error          string            `json:"error,omitempty"`
}
