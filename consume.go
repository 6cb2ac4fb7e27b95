package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumematch/internal/database"
	"github.com/muhammadolammi/resumematch/internal/extract"
	"github.com/muhammadolammi/resumematch/internal/logger"
	"github.com/muhammadolammi/resumematch/internal/matching"
	"github.com/muhammadolammi/resumematch/internal/resume"
)

var errUnknownAction = errors.New("unknown action")

// analyzeJob downloads, parses and scores every résumé of a job and stores one
// result entry per résumé. Per-résumé failures become error entries; only a
// failure to load the job or persist its results fails the job.
func analyzeJob(ctx context.Context, workerConfig *WorkerConfig, jobID uuid.UUID) error {
	job, err := retry(3, func() (database.Job, error) {
		return workerConfig.DB.GetJob(ctx, jobID)
	})
	if err != nil {
		return fmt.Errorf("error getting job %v: %w", jobID, err)
	}
	req := requirementFromJob(job)

	resumes, err := retry(3, func() ([]database.Resume, error) {
		return workerConfig.DB.GetResumesByJob(ctx, jobID)
	})
	if err != nil {
		return fmt.Errorf("error getting resumes for job %v: %w", jobID, err)
	}

	results := &AnalysesResults{JobID: jobID, Results: make([]AnalysesResult, 0, len(resumes))}
	for _, r := range resumes {
		results.Results = append(results.Results, analyzeResume(ctx, workerConfig, r, req))
	}

	workerConfig.Logger.Info("job analyzed",
		zap.Stringer("job_id", jobID),
		zap.Int("resumes", len(resumes)),
	)
	return saveResults(ctx, workerConfig, results)
}

func analyzeResume(ctx context.Context, workerConfig *WorkerConfig, r database.Resume, req matching.Requirement) AnalysesResult {
	log := workerConfig.Logger.With(zap.Stringer("resume_id", r.ID), zap.String("object_key", r.ObjectKey))

	// Retry downloading file (network failures are transient)
	fileBytes, err := retry(3, func() ([]byte, error) {
		return workerConfig.Objects.Fetch(ctx, r.ObjectKey)
	})
	if err != nil {
		log.Warn("download failed after retries", zap.Error(err))
		return errorResult(r, "file download error", err)
	}

	format, err := extract.Detect(r.OriginalFilename, r.Mime, fileBytes)
	if err != nil {
		log.Warn("unsupported resume format", zap.String("mime", r.Mime), zap.Error(err))
		return errorResult(r, "text extraction error", err)
	}

	profile, err := workerConfig.Parser.Parse(fileBytes, format)
	if err != nil {
		log.Warn("resume parsing failed", zap.Error(err))
		return errorResult(r, "text extraction error", err)
	}
	if profile.Failed() {
		log.Warn("resume parsed with failed status",
			zap.String("error", profile.Error),
			zap.String("preview", logger.TruncateForLog(profile.RawText, 80)),
		)
	}

	parsed, err := json.Marshal(profile)
	if err != nil {
		return errorResult(r, "profile encoding error", err)
	}
	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.UpdateResumeParsedData(ctx, database.UpdateResumeParsedDataParams{
			ParsedData: parsed,
			ID:         r.ID,
		})
	})
	if err != nil {
		log.Error("failed to store parsed data after retries", zap.Error(err))
		return errorResult(r, "database error", err)
	}

	return scoreAndStore(ctx, workerConfig, r, profile, req)
}

// scoreAndStore scores profile and records the overall score on the résumé.
func scoreAndStore(ctx context.Context, workerConfig *WorkerConfig, r database.Resume, profile *resume.Profile, req matching.Requirement) AnalysesResult {
	match := workerConfig.Matcher.Score(profile, req)
	if match.Error != "" {
		workerConfig.Logger.Error("scoring failed", zap.Stringer("resume_id", r.ID), zap.String("error", match.Error))
		return scoredResult(r, profile, match)
	}

	_, err := retry(3, func() (any, error) {
		return nil, workerConfig.DB.UpdateResumeMatchScore(ctx, database.UpdateResumeMatchScoreParams{
			MatchScore: sql.NullFloat64{Float64: match.OverallScore, Valid: true},
			ID:         r.ID,
		})
	})
	if err != nil {
		workerConfig.Logger.Error("failed to store match score after retries", zap.Stringer("resume_id", r.ID), zap.Error(err))
		return errorResult(r, "database error", err)
	}
	return scoredResult(r, profile, match)
}

func saveResults(ctx context.Context, workerConfig *WorkerConfig, results *AnalysesResults) error {
	resultsJSON, err := json.Marshal(results.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal analyses results: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateAnalysesResults(ctx, database.CreateOrUpdateAnalysesResultsParams{
			Results: resultsJSON,
			JobID:   results.JobID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save analyses results after retries: %w", err)
	}
	return nil
}

// handleMessage runs one delivery and reports its progress on the updates
// exchange and in the job's status column.
func handleMessage(ctx context.Context, workerConfig *WorkerConfig, body []byte) error {
	msg := JobMessage{}
	if err := json.Unmarshal(body, &msg); err != nil {
		workerConfig.Logger.Warn("error unmarshalling message body", zap.Error(err))
		setStatus(ctx, workerConfig, msg.JobID, StatusFailed, "invalid job message")
		return err
	}
	if msg.Action == "" {
		msg.Action = ActionAnalyze
	}

	setStatus(ctx, workerConfig, msg.JobID, StatusProcessing, msg.Action+" started")

	var err error
	switch msg.Action {
	case ActionAnalyze:
		err = analyzeJob(ctx, workerConfig, msg.JobID)
	case ActionRecalculate:
		_, err = recalculateJob(ctx, workerConfig, msg.JobID)
	default:
		err = fmt.Errorf("%w: %q", errUnknownAction, msg.Action)
	}
	if err != nil {
		workerConfig.Logger.Error("job failed",
			zap.Stringer("job_id", msg.JobID),
			zap.String("action", msg.Action),
			zap.Error(err),
		)
		setStatus(ctx, workerConfig, msg.JobID, StatusFailed, msg.Action+" failed")
		return err
	}

	setStatus(ctx, workerConfig, msg.JobID, StatusCompleted, msg.Action+" completed")
	return nil
}

func setStatus(ctx context.Context, workerConfig *WorkerConfig, jobID uuid.UUID, status, message string) {
	if err := workerConfig.DB.UpdateJobStatus(ctx, database.UpdateJobStatusParams{
		Status: status,
		ID:     jobID,
	}); err != nil {
		workerConfig.Logger.Warn("failed to update job status", zap.Stringer("job_id", jobID), zap.Error(err))
	}

	update := JobUpdate{
		JobID:     jobID,
		Status:    status,
		Message:   message,
		Timestamp: workerConfig.Now(),
	}
	if err := workerConfig.Updates.PublishJobUpdate(jobID, update); err != nil {
		workerConfig.Logger.Warn("failed to publish update", zap.Stringer("job_id", jobID), zap.Error(err))
	}
}

func worker(ctx context.Context, id int, workerConfig *WorkerConfig) error {
	log := workerConfig.Logger.With(zap.Int("worker", id+1))

	// to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		return fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error connecting to rabbitmq channel: %w", err)
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		workerConfig.Queue, // queue name
		true,               // durable (survives broker restarts)
		false,              // auto-delete when unused
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	msgs, err := ch.Consume(
		workerConfig.Queue, // queue name
		"",                 // consumer tag
		true,               // auto-ack
		false,              // exclusive
		false,              // no-local
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return fmt.Errorf("error consuming rabbitmq message: %w", err)
	}

	log.Info("worker started", zap.String("queue", workerConfig.Queue))
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			log.Debug("processing message", zap.String("body", logger.TruncateForLog(string(msg.Body), 200)))
			// failures are already reported on the job; keep consuming
			_ = handleMessage(ctx, workerConfig, msg.Body)
		}
	}
}

// StartConsumerWorkerPool blocks until every worker has stopped.
func (workerConfig *WorkerConfig) StartConsumerWorkerPool(ctx context.Context, numWorkers int) error {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	errs := make([]error, numWorkers)
	for i := 0; i < numWorkers; i++ {
		i := i
		go func() {
			defer wg.Done()
			errs[i] = worker(ctx, i, workerConfig)
		}()
	}
	wg.Wait() // block until all workers finish

	return errors.Join(errs...)
}
