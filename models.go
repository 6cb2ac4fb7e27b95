package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumematch/internal/database"
	"github.com/muhammadolammi/resumematch/internal/matching"
	"github.com/muhammadolammi/resumematch/internal/resume"
	"github.com/muhammadolammi/resumematch/internal/skills"
)

const (
	ActionAnalyze     = "analyze"
	ActionRecalculate = "recalculate"
)

const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Store is the subset of database.Queries the worker needs.
type Store interface {
	GetJob(ctx context.Context, id uuid.UUID) (database.Job, error)
	UpdateJobStatus(ctx context.Context, arg database.UpdateJobStatusParams) error
	GetResumesByJob(ctx context.Context, jobID uuid.UUID) ([]database.Resume, error)
	UpdateResumeParsedData(ctx context.Context, arg database.UpdateResumeParsedDataParams) error
	UpdateResumeMatchScore(ctx context.Context, arg database.UpdateResumeMatchScoreParams) error
	CreateOrUpdateAnalysesResults(ctx context.Context, arg database.CreateOrUpdateAnalysesResultsParams) error
}

// ObjectFetcher downloads uploaded résumé files by object key.
type ObjectFetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

type Publisher interface {
	PublishJobUpdate(jobID uuid.UUID, update JobUpdate) error
}

type WorkerConfig struct {
	DB          Store
	Objects     ObjectFetcher
	Updates     Publisher
	Parser      *resume.Parser
	Matcher     *matching.Matcher
	Logger      *zap.Logger
	RABBITMQUrl string
	Queue       string
	// Concurrency bounds re-scoring within one recalculate job.
	Concurrency int
	Now         func() time.Time
}

// JobMessage is one queue delivery. An empty action means analyze.
type JobMessage struct {
	JobID  uuid.UUID `json:"job_id"`
	Action string    `json:"action"`
}

type JobUpdate struct {
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalysesResult is one résumé's entry in a job's stored results.
type AnalysesResult struct {
	ResumeID       uuid.UUID        `json:"resume_id"`
	Filename       string           `json:"filename"`
	CandidateName  string           `json:"candidate_name,omitempty"`
	CandidateEmail string           `json:"candidate_email,omitempty"`
	ParsingStatus  resume.Status    `json:"parsing_status,omitempty"`
	Match          *matching.Result `json:"match,omitempty"`
	// Error result entry
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

type AnalysesResults struct {
	JobID   uuid.UUID        `json:"job_id"`
	Results []AnalysesResult `json:"results"`
}

func errorResult(r database.Resume, format string, err error) AnalysesResult {
	return AnalysesResult{
		ResumeID:      r.ID,
		Filename:      r.OriginalFilename,
		IsErrorResult: true,
		Error:         format + ": " + err.Error(),
	}
}

func scoredResult(r database.Resume, profile *resume.Profile, match matching.Result) AnalysesResult {
	res := AnalysesResult{
		ResumeID:       r.ID,
		Filename:       r.OriginalFilename,
		CandidateName:  profile.CandidateName,
		CandidateEmail: profile.ContactInfo.Email,
		ParsingStatus:  profile.ParsingStatus,
		Match:          &match,
	}
	if match.Error != "" {
		res.IsErrorResult = true
		res.Error = "scoring error: " + match.Error
	}
	return res
}

// requirementFromJob maps a stored job to the requirement profiles are scored
// against. Skills named in the free text back up an empty explicit split.
func requirementFromJob(job database.Job) matching.Requirement {
	req := matching.Requirement{
		Title:              job.Title,
		SkillsRequired:     job.SkillsRequired,
		SkillsPreferred:    job.SkillsPreferred,
		ExperienceRequired: job.ExperienceRequired,
		Requirements:       job.Requirements,
		DescriptionText:    job.Description,
	}
	if len(req.SkillsRequired) == 0 && len(req.SkillsPreferred) == 0 {
		req.ExtractedSkills = skills.Extract(job.Requirements + "\n" + job.Description)
	}
	return req
}
