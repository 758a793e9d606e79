package export

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGHistoryRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGHistoryRepo{DB: db}
	rec := HistoryRecord{
		ID:         "export-1",
		UserID:     "user-1",
		ResumeID:   "res-1",
		Template:   "three",
		FileName:   "Backend_CV.pdf",
		SizeBytes:  20480,
		Pages:      2,
		Attempts:   1,
		DurationMS: 1432.5,
		StorageKey: "abc/Backend_CV.pdf",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO exports").
		WithArgs(
			rec.ID,
			rec.UserID,
			rec.ResumeID,
			rec.Template,
			rec.FileName,
			rec.SizeBytes,
			rec.Pages,
			rec.Attempts,
			rec.DurationMS,
			rec.StorageKey,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGHistoryRepoCreateNullsOptionalFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGHistoryRepo{DB: db}
	rec := HistoryRecord{
		ID:        "export-2",
		UserID:    "user-1",
		Template:  "one",
		FileName:  "resume.pdf",
		SizeBytes: 1024,
		Pages:     1,
		Attempts:  2,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO exports").
		WithArgs(
			rec.ID,
			rec.UserID,
			nil, // resume_id
			rec.Template,
			rec.FileName,
			rec.SizeBytes,
			rec.Pages,
			rec.Attempts,
			rec.DurationMS,
			nil, // storage_key
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGHistoryRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGHistoryRepo{DB: db}
	created := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "resume_id", "template", "file_name",
		"size_bytes", "pages", "attempts", "duration_ms", "storage_key", "created_at",
	}).
		AddRow("export-2", "user-1", nil, "one", "b.pdf", int64(2048), 1, 1, 900.0, nil, created).
		AddRow("export-1", "user-1", "res-1", "two", "a.pdf", int64(1024), 2, 3, 4100.0, "k/a.pdf", created.Add(-time.Hour))

	mock.ExpectQuery("FROM exports").
		WithArgs("user-1", 20, 0).
		WillReturnRows(rows)

	recs, err := repo.ListByUser(context.Background(), "user-1", 20, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "export-2" || recs[0].ResumeID != "" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].StorageKey != "k/a.pdf" || recs[1].Attempts != 3 {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
