package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muhammadolammi/resumematch/internal/database"
	"github.com/muhammadolammi/resumematch/internal/resume"
)

var errNotParsed = errors.New("resume has no parsed data")

// recalculateJob re-scores every résumé of a job from its stored profile with
// the matcher's current weights and replaces the job's results. Résumés that
// were never parsed keep an error entry so the job still lists all of them.
func recalculateJob(ctx context.Context, workerConfig *WorkerConfig, jobID uuid.UUID) (*AnalysesResults, error) {
	job, err := retry(3, func() (database.Job, error) {
		return workerConfig.DB.GetJob(ctx, jobID)
	})
	if err != nil {
		return nil, fmt.Errorf("error getting job %v: %w", jobID, err)
	}
	req := requirementFromJob(job)

	resumes, err := retry(3, func() ([]database.Resume, error) {
		return workerConfig.DB.GetResumesByJob(ctx, jobID)
	})
	if err != nil {
		return nil, fmt.Errorf("error getting resumes for job %v: %w", jobID, err)
	}

	results := &AnalysesResults{JobID: jobID, Results: make([]AnalysesResult, len(resumes))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workerConfig.Concurrency, 1))
	for i, r := range resumes {
		i, r := i, r
		g.Go(func() error {
			if len(r.ParsedData) == 0 {
				results.Results[i] = errorResult(r, "recalculate error", errNotParsed)
				return nil
			}
			var profile resume.Profile
			if err := json.Unmarshal(r.ParsedData, &profile); err != nil {
				workerConfig.Logger.Warn("stored profile unreadable", zap.Stringer("resume_id", r.ID), zap.Error(err))
				results.Results[i] = errorResult(r, "recalculate error", err)
				return nil
			}
			results.Results[i] = scoreAndStore(gctx, workerConfig, r, &profile, req)
			return nil
		})
	}
	// per-résumé failures are recorded as entries, never returned
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	weights := workerConfig.Matcher.Weights()
	workerConfig.Logger.Info("job recalculated",
		zap.Stringer("job_id", jobID),
		zap.Int("resumes", len(resumes)),
		zap.Float64("skills_weight", weights.Skills),
		zap.Float64("experience_weight", weights.Experience),
		zap.Float64("education_weight", weights.Education),
	)
	if err := saveResults(ctx, workerConfig, results); err != nil {
		return nil, err
	}
	return results, nil
}
