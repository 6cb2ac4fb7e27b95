package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID                 uuid.UUID
	CreatedAt          time.Time
	UserID             uuid.UUID
	Status             string
	Title              string
	Description        string
	Requirements       string
	SkillsRequired     []string
	SkillsPreferred    []string
	ExperienceRequired string
}

type Resume struct {
	ID               uuid.UUID
	OriginalFilename string
	Mime             string
	SizeBytes        int64
	StorageProvider  string
	ObjectKey        string
	StorageUrl       string
	UploadStatus     string
	CreatedAt        time.Time
	JobID            uuid.UUID
	ParsedData       []byte
	MatchScore       sql.NullFloat64
}
