package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Schema for the generated_resumes table:
//
//	CREATE TABLE generated_resumes (
//	    id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//	    resume       JSONB NOT NULL,
//	    job_skills   JSONB NOT NULL,
//	    generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);

// SaveGeneratedResume stores a tailored resume with the job skills it was
// generated against and returns the new record's ID.
func (db *DB) SaveGeneratedResume(ctx context.Context, resume *types.Resume, jobSkills *types.JobSkills, generatedAt time.Time) (uuid.UUID, error) {
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}
	skillsJSON, err := json.Marshal(jobSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job skills: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO generated_resumes (resume, job_skills, generated_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		resumeJSON, skillsJSON, generatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save generated resume: %w", err)
	}
	return id, nil
}

// ListGeneratedResumes returns every stored resume, newest first.
func (db *DB) ListGeneratedResumes(ctx context.Context) ([]matching.StoredResume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume, job_skills, generated_at
		 FROM generated_resumes ORDER BY generated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated resumes: %w", err)
	}
	defer rows.Close()

	var stored []matching.StoredResume
	for rows.Next() {
		record, err := scanStoredResume(rows)
		if err != nil {
			return nil, err
		}
		stored = append(stored, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read generated resumes: %w", err)
	}
	return stored, nil
}

// GetGeneratedResume retrieves one stored resume by ID. Returns nil without
// error when no record exists.
func (db *DB) GetGeneratedResume(ctx context.Context, id uuid.UUID) (*matching.StoredResume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, resume, job_skills, generated_at
		 FROM generated_resumes WHERE id = $1`,
		id,
	)
	record, err := scanStoredResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// DeleteGeneratedResume removes a stored resume.
func (db *DB) DeleteGeneratedResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM generated_resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete generated resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("generated resume not found: %s", id)
	}
	return nil
}

func scanStoredResume(row pgx.Row) (matching.StoredResume, error) {
	var record matching.StoredResume
	var resumeJSON, skillsJSON []byte

	if err := row.Scan(&record.ID, &resumeJSON, &skillsJSON, &record.GeneratedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return record, err
		}
		return record, fmt.Errorf("failed to scan generated resume: %w", err)
	}

	record.Resume = &types.Resume{}
	if err := json.Unmarshal(resumeJSON, record.Resume); err != nil {
		return record, fmt.Errorf("failed to unmarshal resume %s: %w", record.ID, err)
	}
	record.JobSkills = &types.JobSkills{}
	if err := json.Unmarshal(skillsJSON, record.JobSkills); err != nil {
		return record, fmt.Errorf("failed to unmarshal job skills %s: %w", record.ID, err)
	}
	return record, nil
}
