package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-builder/resume/model"
)

func TestPGRepoCreateMarshalsData(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Record{
		ID:       "res-1",
		UserID:   "user-1",
		Title:    "Backend CV",
		Template: "two",
		Data: model.Resume{
			Title:    "Backend CV",
			Template: "two",
			ProfileInfo: model.ProfileInfo{
				FullName: "Ada Lovelace",
			},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			rec.ID,
			rec.UserID,
			rec.Title,
			rec.Template,
			sqlmock.AnyArg(), // data jsonb
			sqlmock.AnyArg(),
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

func TestPGRepoGetByIDUnmarshalsData(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	data, _ := json.Marshal(model.Resume{
		ProfileInfo: model.ProfileInfo{FullName: "Grace Hopper"},
		Skills:      []model.Rated{{Name: "COBOL", Proficiency: 5}},
	})

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "template", "data", "created_at", "updated_at"}).
		AddRow("res-1", "user-1", "Navy CV", "four", data, time.Now().UTC(), time.Now().UTC())

	mock.ExpectQuery("FROM resumes").
		WithArgs("user-1", "res-1").
		WillReturnRows(rows)

	rec, err := repo.GetByID(context.Background(), "user-1", "res-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rec.Data.ProfileInfo.FullName != "Grace Hopper" {
		t.Fatalf("expected data round-trip, got %+v", rec.Data.ProfileInfo)
	}
	if len(rec.Data.Skills) != 1 || rec.Data.Skills[0].Proficiency != 5 {
		t.Fatalf("expected skills to unmarshal, got %+v", rec.Data.Skills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("FROM resumes").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "template", "data", "created_at", "updated_at"}))

	_, err = repo.GetByID(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateMissingRowReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	rec := Record{ID: "missing", UserID: "user-1", UpdatedAt: time.Now().UTC()}

	mock.ExpectExec("UPDATE resumes").
		WithArgs(rec.Title, rec.Template, sqlmock.AnyArg(), sqlmock.AnyArg(), rec.UserID, rec.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), rec); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteMissingRowReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE resumes").
		WithArgs("user-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
