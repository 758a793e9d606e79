package export

import (
	"context"
	"database/sql"
)

// PGHistoryRepo implements HistoryRepo using Postgres.
type PGHistoryRepo struct {
	DB *sql.DB
}

// Create inserts a new export record.
func (r *PGHistoryRepo) Create(ctx context.Context, rec HistoryRecord) error {
	const query = `
INSERT INTO exports (
    id,
    user_id,
    resume_id,
    template,
    file_name,
    size_bytes,
    pages,
    attempts,
    duration_ms,
    storage_key,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var resumeID sql.NullString
	if rec.ResumeID != "" {
		resumeID = sql.NullString{String: rec.ResumeID, Valid: true}
	}
	var storageKey sql.NullString
	if rec.StorageKey != "" {
		storageKey = sql.NullString{String: rec.StorageKey, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		resumeID,
		rec.Template,
		rec.FileName,
		rec.SizeBytes,
		rec.Pages,
		rec.Attempts,
		rec.DurationMS,
		storageKey,
		rec.CreatedAt,
	)
	return err
}

// ListByUser returns export records for a user, newest first.
func (r *PGHistoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]HistoryRecord, error) {
	const query = `
SELECT id, user_id, resume_id, template, file_name, size_bytes, pages, attempts, duration_ms, storage_key, created_at
FROM exports
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []HistoryRecord{}
	for rows.Next() {
		var rec HistoryRecord
		var resumeID sql.NullString
		var storageKey sql.NullString
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&resumeID,
			&rec.Template,
			&rec.FileName,
			&rec.SizeBytes,
			&rec.Pages,
			&rec.Attempts,
			&rec.DurationMS,
			&storageKey,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.ResumeID = resumeID.String
		rec.StorageKey = storageKey.String
		out = append(out, rec)
	}
	return out, rows.Err()
}
