// Package resume turns résumé text into a structured candidate profile using
// keyword segmentation and ordered regex heuristics.
package resume

import "errors"

// ErrFieldExtraction wraps any fault raised while extracting profile fields.
var ErrFieldExtraction = errors.New("field extraction failed")

// NotSpecified fills entry fields the heuristics could not resolve.
const NotSpecified = "Not specified"

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	Location string `json:"location"`
}

type Experience struct {
	Position string `json:"position"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Level is the text scored against education keywords.
func (e Education) Level() string { return e.Degree }

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Profile is the structured result of parsing one document. It is built once
// and not modified afterwards.
type Profile struct {
	RawText              string       `json:"raw_text"`
	CandidateName        string       `json:"candidate_name"`
	ContactInfo          ContactInfo  `json:"contact_info"`
	Skills               []string     `json:"skills"`
	Experience           []Experience `json:"experience"`
	Education            []Education  `json:"education"`
	Projects             []Project    `json:"projects"`
	TotalExperienceYears int          `json:"total_experience_years"`
	ParsingStatus        Status       `json:"parsing_status"`
	Error                string       `json:"error,omitempty"`
}

// Failed reports whether the profile is a degraded one.
func (p *Profile) Failed() bool { return p.ParsingStatus == StatusFailed }

// FailedProfile returns a degraded profile carrying err's message. Every
// collection is empty and total years is zero.
func FailedProfile(err error) *Profile {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Profile{
		Skills:        []string{},
		Experience:    []Experience{},
		Education:     []Education{},
		Projects:      []Project{},
		ParsingStatus: StatusFailed,
		Error:         msg,
	}
}
