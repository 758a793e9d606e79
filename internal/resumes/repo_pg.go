package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/resume/model"
)

// PGRepo implements Repo using Postgres. Resume content lives in a JSONB
// column so the stored shape tracks the client payload without migrations.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    title,
    template,
    data,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("marshal resume data: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		rec.Title,
		rec.Template,
		data,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Record, error) {
	const query = `
SELECT id, user_id, title, template, data, created_at, updated_at
FROM resumes
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`

	var rec Record
	var data []byte
	err := r.DB.QueryRowContext(ctx, query, userID, id).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Title,
		&rec.Template,
		&data,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if err := json.Unmarshal(data, &rec.Data); err != nil {
		return Record{}, fmt.Errorf("unmarshal resume data: %w", err)
	}
	return rec, nil
}

// ListByUser lists resumes ordered by most recent update.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, title, template, data, created_at, updated_at
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var rec Record
		var data []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Title,
			&rec.Template,
			&data,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &rec.Data); err != nil {
			rec.Data = model.Resume{}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update replaces the stored resume content.
func (r *PGRepo) Update(ctx context.Context, rec Record) error {
	const query = `
UPDATE resumes
SET title = $1, template = $2, data = $3, updated_at = $4
WHERE user_id = $5 AND id = $6 AND deleted_at IS NULL`

	data, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("marshal resume data: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, rec.Title, rec.Template, data, rec.UpdatedAt, rec.UserID, rec.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes a resume for a user.
func (r *PGRepo) Delete(ctx context.Context, userID, id string) error {
	const query = `
UPDATE resumes
SET deleted_at = NOW()
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`

	res, err := r.DB.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
