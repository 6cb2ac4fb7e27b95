package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const getJob = `-- name: GetJob :one
SELECT id, created_at, user_id, status, title, description, requirements, skills_required, skills_preferred, experience_required FROM jobs WHERE id=$1
`

func (q *Queries) GetJob(ctx context.Context, id uuid.UUID) (Job, error) {
	row := q.db.QueryRowContext(ctx, getJob, id)
	var i Job
	err := row.Scan(
		&i.ID,
		&i.CreatedAt,
		&i.UserID,
		&i.Status,
		&i.Title,
		&i.Description,
		&i.Requirements,
		pq.Array(&i.SkillsRequired),
		pq.Array(&i.SkillsPreferred),
		&i.ExperienceRequired,
	)
	return i, err
}

const updateJobStatus = `-- name: UpdateJobStatus :exec
UPDATE jobs
SET status=$1
WHERE id=$2
`

type UpdateJobStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateJobStatus(ctx context.Context, arg UpdateJobStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateJobStatus, arg.Status, arg.ID)
	return err
}
