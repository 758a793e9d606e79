package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/export"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/users"
	"resume-builder/resume/model"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	ResumesRepo    resumes.Repo
	HistoryRepo    export.HistoryRepo
	UsersRepo      users.Repo
	ResumesService *resumes.Service
	UsersService   *users.Service
	Exporter       *export.Exporter
	ResumeHandler  *resumes.Handler
	ExportHandler  *export.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ResumeHandler: app.ResumeHandler,
		ExportHandler: app.ExportHandler,
		UserHandler:   app.UsersHandler,
		GoogleAuth:    app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var resumeRepo resumes.Repo
	var historyRepo export.HistoryRepo
	var userRepo users.Repo

	if app.DB != nil {
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		historyRepo = &export.PGHistoryRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
		historyRepo = export.NewMemoryHistoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	resumeSvc := resumes.NewService(resumeRepo)
	userSvc := users.NewService(userRepo)

	exporter := &export.Exporter{
		Serializer: export.NewChromeSerializer(app.Config.ChromePath),
	}

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	exportHandler := export.NewHandler(exporter)
	exportHandler.Resumes = resumeSource{svc: resumeSvc}
	exportHandler.History = historyRepo
	exportHandler.Store = app.Store
	exportHandler.Archive = app.Config.ArchiveExports

	app.ResumesRepo = resumeRepo
	app.HistoryRepo = historyRepo
	app.UsersRepo = userRepo
	app.ResumesService = resumeSvc
	app.UsersService = userSvc
	app.Exporter = exporter
	app.ResumeHandler = resumes.NewHandler(resumeSvc)
	app.ExportHandler = exportHandler
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleAuthSvc

	if app.ResumeHandler == nil || app.ExportHandler == nil {
		return errors.New("failed to initialize handlers")
	}

	return nil
}

// resumeSource adapts the resumes service to the exporter's loader interface.
type resumeSource struct {
	svc *resumes.Service
}

func (a resumeSource) Get(ctx context.Context, userID, resumeID string) (model.Resume, error) {
	rec, err := a.svc.Get(ctx, userID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return model.Resume{}, export.ErrNotFound
		}
		return model.Resume{}, err
	}
	data := rec.Data
	if data.Title == "" {
		data.Title = rec.Title
	}
	if data.Template == "" {
		data.Template = rec.Template
	}
	return data, nil
}
