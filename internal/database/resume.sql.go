package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const getResumesByJob = `-- name: GetResumesByJob :many
SELECT id, original_filename, mime, size_bytes, storage_provider, object_key, storage_url, upload_status, created_at, job_id, parsed_data, match_score FROM resumes WHERE job_id=$1
ORDER BY created_at, id
`

func (q *Queries) GetResumesByJob(ctx context.Context, jobID uuid.UUID) ([]Resume, error) {
	rows, err := q.db.QueryContext(ctx, getResumesByJob, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Resume
	for rows.Next() {
		var i Resume
		if err := rows.Scan(
			&i.ID,
			&i.OriginalFilename,
			&i.Mime,
			&i.SizeBytes,
			&i.StorageProvider,
			&i.ObjectKey,
			&i.StorageUrl,
			&i.UploadStatus,
			&i.CreatedAt,
			&i.JobID,
			&i.ParsedData,
			&i.MatchScore,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateResumeParsedData = `-- name: UpdateResumeParsedData :exec
UPDATE resumes
SET parsed_data=$1
WHERE id=$2
`

type UpdateResumeParsedDataParams struct {
	ParsedData []byte
	ID         uuid.UUID
}

func (q *Queries) UpdateResumeParsedData(ctx context.Context, arg UpdateResumeParsedDataParams) error {
	_, err := q.db.ExecContext(ctx, updateResumeParsedData, arg.ParsedData, arg.ID)
	return err
}

const updateResumeMatchScore = `-- name: UpdateResumeMatchScore :exec
UPDATE resumes
SET match_score=$1
WHERE id=$2
`

type UpdateResumeMatchScoreParams struct {
	MatchScore sql.NullFloat64
	ID         uuid.UUID
}

func (q *Queries) UpdateResumeMatchScore(ctx context.Context, arg UpdateResumeMatchScoreParams) error {
	_, err := q.db.ExecContext(ctx, updateResumeMatchScore, arg.MatchScore, arg.ID)
	return err
}
