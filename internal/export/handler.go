package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	tpl "resume-builder/resume/template"
)

// ResumeSource loads a stored resume for by-id exports. Implemented by an
// adapter over the resumes service.
type ResumeSource interface {
	Get(ctx context.Context, userID, resumeID string) (model.Resume, error)
}

// Handler wires the preview and export endpoints to the orchestrator.
// Resumes, History and Store are optional; nil disables by-id export,
// history recording, and archiving respectively.
type Handler struct {
	Exporter *Exporter
	Resumes  ResumeSource
	History  HistoryRepo
	Store    object.ObjectStore
	Archive  bool
}

// NewHandler constructs a Handler.
func NewHandler(exporter *Exporter) *Handler {
	return &Handler{Exporter: exporter}
}

// RegisterRoutes attaches render/export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/render/html", h.previewHTML)
	rg.POST("/export/pdf", h.exportPDF)
	rg.POST("/resumes/:id/export/pdf", h.exportStored)
	rg.GET("/exports", h.listHistory)
}

func (h *Handler) previewHTML(c *gin.Context) {
	templateID := c.Query("template")

	var record model.Resume
	if raw := c.Query("data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			// Malformed payload intentionally degrades to an empty-record
			// render instead of erroring.
			telemetry.Info("render.preview.bad_payload", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"error":      err.Error(),
			})
			record = model.Resume{}
		}
	}
	if templateID == "" {
		templateID = record.Template
	}

	record = model.Normalize(record)
	layout := tpl.Lookup(templateID)
	palette := tpl.ResolvePalette(templateID, record.ColorPalette)

	body, err := render.HTML(record, layout, palette)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render preview", nil)
		return
	}

	metrics.IncPreviewRendered()
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, previewDocument(documentTitleOf(record), body))
}

func documentTitleOf(record model.Resume) string {
	if record.Title != "" {
		return record.Title
	}
	return record.ProfileInfo.FullName
}

// previewDocument wraps rendered body markup into a complete HTML page
// sized to the fixed page box.
func previewDocument(title, body string) string {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	buf.WriteString(htmlEscape(title))
	buf.WriteString("</title>\n<script src=\"https://cdn.tailwindcss.com\"></script>\n")
	buf.WriteString("<style>body{margin:0;background:#e5e7eb;display:flex;justify-content:center;padding:24px 0}</style>\n")
	buf.WriteString("</head>\n<body>\n")
	buf.WriteString(body)
	buf.WriteString("\n</body>\n</html>\n")
	return buf.String()
}

func htmlEscape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

type exportRequest struct {
	ResumeData json.RawMessage `json:"resumeData"`
	FileName   string          `json:"filename"`
}

func (h *Handler) exportPDF(c *gin.Context) {
	start := time.Now()

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.ResumeData) == 0 || string(req.ResumeData) == "null" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeData is required", nil)
		return
	}

	var record model.Resume
	if err := json.Unmarshal(req.ResumeData, &record); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_payload", "resumeData is malformed", err.Error())
		return
	}

	h.generate(c, record, "", req.FileName, start)
}

func (h *Handler) exportStored(c *gin.Context) {
	start := time.Now()

	if h.Resumes == nil {
		respond.Error(c, http.StatusNotFound, "not_found", "stored resumes are not enabled", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")

	c.Set("resumeId", resumeID)
	record, err := h.Resumes.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		}
		return
	}

	h.generate(c, record, resumeID, c.Query("filename"), start)
}

func (h *Handler) generate(c *gin.Context, record model.Resume, resumeID, fileName string, start time.Time) {
	metrics.IncExportStarted()

	result, err := h.Exporter.GeneratePDF(c.Request.Context(), record)
	processing := time.Since(start)

	if err != nil {
		metrics.IncExportFailed()
		category := Classify(err)
		status := http.StatusInternalServerError
		if category == CategoryTimeout {
			status = http.StatusGatewayTimeout
		}
		telemetry.Error("export.pdf.failed", map[string]any{
			"request_id":  middleware.RequestIDFromContext(c),
			"attempts":    result.Attempts,
			"category":    string(category),
			"error":       err.Error(),
			"duration_ms": float64(processing.Microseconds()) / 1000.0,
		})
		c.JSON(status, gin.H{
			"success":        false,
			"error":          "Failed to generate PDF",
			"details":        err.Error(),
			"errorCategory":  string(category),
			"processingTime": processing.Milliseconds(),
			"retryable":      Retryable(err),
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	metrics.IncExportCompleted()
	metrics.ObserveExportDurationMs(float64(processing.Microseconds()) / 1000.0)

	name := fileName
	if name == "" {
		name = documentTitleOf(model.Normalize(record))
	}
	name = util.SanitizeExportFileName(name)

	h.record(c, record, resumeID, name, result)

	c.Header("Content-Disposition", `attachment; filename="`+name+`.pdf"`)
	c.Header("Content-Length", strconv.Itoa(len(result.PDF)))
	c.Header("X-Processing-Time-Ms", strconv.FormatInt(processing.Milliseconds(), 10))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// record archives the PDF and appends export history, both best effort: a
// failure here never fails a delivered export.
func (h *Handler) record(c *gin.Context, record model.Resume, resumeID, name string, result Result) {
	userID := middleware.UserIDFromContext(c)
	ctx := c.Request.Context()

	storageKey := ""
	if h.Archive && h.Store != nil {
		key, _, _, err := h.Store.Save(ctx, userID, name+".pdf", bytes.NewReader(result.PDF))
		if err != nil {
			telemetry.Error("export.archive.failed", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"error":      err.Error(),
			})
		} else {
			storageKey = key
		}
	}

	if h.History == nil {
		return
	}
	rec := HistoryRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		ResumeID:   resumeID,
		Template:   tpl.Lookup(record.Template).ID,
		FileName:   name + ".pdf",
		SizeBytes:  int64(len(result.PDF)),
		Pages:      result.Pages,
		Attempts:   result.Attempts,
		DurationMS: float64(result.Duration.Microseconds()) / 1000.0,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}
	c.Set("exportId", rec.ID)
	if err := h.History.Create(ctx, rec); err != nil {
		telemetry.Error("export.history.failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err.Error(),
		})
	}
}

func (h *Handler) listHistory(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view export history", nil)
			return
		}
	}

	if h.History == nil {
		respond.JSON(c, http.StatusOK, []gin.H{})
		return
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	recs, err := h.History.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list exports", nil)
		return
	}

	resp := make([]gin.H, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, gin.H{
			"exportId":   rec.ID,
			"resumeId":   rec.ResumeID,
			"template":   rec.Template,
			"fileName":   rec.FileName,
			"sizeBytes":  rec.SizeBytes,
			"pages":      rec.Pages,
			"attempts":   rec.Attempts,
			"durationMs": rec.DurationMS,
			"createdAt":  rec.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}
