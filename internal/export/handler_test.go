package export

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/resume/model"
)

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Set("isGuest", false)
		c.Next()
	})
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestExportPDFReturnsDocument(t *testing.T) {
	stubSleep(t)
	h := NewHandler(&Exporter{Serializer: &fakeSerializer{primary: []func() ([]byte, error){succeed()}}})
	r := newTestRouter(h)

	payload := map[string]any{
		"resumeData": map[string]any{
			"profileInfo": map[string]any{"fullName": "Ada Lovelace"},
		},
		"filename": "My Résumé #1",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export/pdf", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %s", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="My_R_sum___1.pdf"` {
		t.Fatalf("unexpected Content-Disposition: %s", cd)
	}
	if resp.Header().Get("X-Processing-Time-Ms") == "" {
		t.Fatalf("expected processing time header")
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected pdf signature in body")
	}
}

func TestExportPDFRequiresResumeData(t *testing.T) {
	h := NewHandler(&Exporter{Serializer: &fakeSerializer{primary: []func() ([]byte, error){succeed()}}})
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export/pdf", strings.NewReader(`{"filename":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %s", envelope.Error.Code)
	}
}

func TestExportPDFFailureEnvelope(t *testing.T) {
	stubSleep(t)
	ser := &fakeSerializer{
		primary:  []func() ([]byte, error){fail("Maximum call stack size exceeded")},
		fallback: fail("Maximum call stack size exceeded"),
	}
	h := NewHandler(&Exporter{Serializer: ser})
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export/pdf", strings.NewReader(`{"resumeData":{}}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var payload struct {
		Success        bool   `json:"success"`
		Error          string `json:"error"`
		ErrorCategory  string `json:"errorCategory"`
		Retryable      bool   `json:"retryable"`
		ProcessingTime *int64 `json:"processingTime"`
		Timestamp      string `json:"timestamp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode failure payload: %v", err)
	}
	if payload.Success {
		t.Fatalf("expected success=false")
	}
	if payload.Error != "Failed to generate PDF" {
		t.Fatalf("unexpected error message: %s", payload.Error)
	}
	if payload.ErrorCategory != string(CategoryMemory) {
		t.Fatalf("expected memory category, got %s", payload.ErrorCategory)
	}
	if payload.Retryable {
		t.Fatalf("stack overflow should be reported as not retryable")
	}
	if payload.ProcessingTime == nil {
		t.Fatalf("expected processingTime in payload")
	}
	if payload.Timestamp == "" {
		t.Fatalf("expected timestamp in payload")
	}
}

func TestExportPDFTimeoutMapsTo504(t *testing.T) {
	stubSleep(t)
	ser := &fakeSerializer{
		primary:  []func() ([]byte, error){func() ([]byte, error) { return nil, ErrSerializeTimeout }},
		fallback: func() ([]byte, error) { return nil, ErrSerializeTimeout },
	}
	h := NewHandler(&Exporter{Serializer: ser})
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export/pdf", strings.NewReader(`{"resumeData":{}}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", resp.Code)
	}
}

func TestPreviewHTMLRendersRecord(t *testing.T) {
	h := NewHandler(&Exporter{Serializer: &fakeSerializer{primary: []func() ([]byte, error){succeed()}}})
	r := newTestRouter(h)

	data := `{"profileInfo":{"fullName":"Grace Hopper"},"skills":[{"name":"COBOL","proficiency":5}]}`
	target := "/api/v1/render/html?template=two&data=" + url.QueryEscape(data)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html, got %s", ct)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Fatalf("expected full document")
	}
	if !strings.Contains(body, "Grace Hopper") {
		t.Fatalf("expected record content in preview")
	}
}

func TestPreviewHTMLDegradesOnMalformedData(t *testing.T) {
	h := NewHandler(&Exporter{Serializer: &fakeSerializer{primary: []func() ([]byte, error){succeed()}}})
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/render/html?data="+url.QueryEscape("{not json"), nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("malformed data should degrade, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Your Name Here") {
		t.Fatalf("expected placeholder render for malformed data")
	}
}

func TestExportRecordsHistory(t *testing.T) {
	stubSleep(t)
	history := NewMemoryHistoryRepo()
	h := NewHandler(&Exporter{Serializer: &fakeSerializer{primary: []func() ([]byte, error){succeed()}}})
	h.History = history
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/export/pdf", strings.NewReader(`{"resumeData":{"title":"Backend CV"}}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/exports", nil)
	respList := httptest.NewRecorder()
	r.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respList.Code)
	}

	var recs []struct {
		FileName string `json:"fileName"`
		Attempts int    `json:"attempts"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&recs); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(recs))
	}
	if recs[0].FileName != "Backend_CV.pdf" {
		t.Fatalf("unexpected file name: %s", recs[0].FileName)
	}
	if recs[0].Attempts != 1 {
		t.Fatalf("expected 1 attempt recorded, got %d", recs[0].Attempts)
	}
}

type stubResumeSource struct {
	records map[string]model.Resume
}

func (s stubResumeSource) Get(ctx context.Context, userID, resumeID string) (model.Resume, error) {
	rec, ok := s.records[resumeID]
	if !ok {
		return model.Resume{}, ErrNotFound
	}
	return rec, nil
}

func TestExportStoredResume(t *testing.T) {
	stubSleep(t)
	h := NewHandler(&Exporter{Serializer: &fakeSerializer{primary: []func() ([]byte, error){succeed()}}})
	h.Resumes = stubResumeSource{records: map[string]model.Resume{
		"res-1": {Title: "Stored Resume", Template: "three"},
	}}
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/res-1/export/pdf", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != `attachment; filename="Stored_Resume.pdf"` {
		t.Fatalf("unexpected Content-Disposition: %s", cd)
	}

	reqMissing := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/missing/export/pdf", nil)
	respMissing := httptest.NewRecorder()
	r.ServeHTTP(respMissing, reqMissing)
	if respMissing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown resume, got %d", respMissing.Code)
	}
}

func TestExportHistoryBlocksGuests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&Exporter{Serializer: &fakeSerializer{primary: []func() ([]byte, error){succeed()}}})
	h.History = NewMemoryHistoryRepo()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "guest:abc")
		c.Set("isGuest", true)
		c.Next()
	})
	h.RegisterRoutes(r.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exports", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guests, got %d", resp.Code)
	}
}
