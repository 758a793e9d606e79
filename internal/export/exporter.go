package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	tpl "resume-builder/resume/template"
)

const (
	defaultMaxAttempts      = 3
	backoffUnit             = time.Second
	defaultSerializeTimeout = 45 * time.Second

	// minPDFBytes guards against truncated or corrupt serializer output.
	minPDFBytes = 200
)

var pdfSignature = []byte("%PDF-")

// ErrSerializeTimeout marks a serialization attempt that exceeded the
// wall-clock bound. It is terminal: remaining attempts are not used.
var ErrSerializeTimeout = errors.New("pdf serialization timeout exceeded")

// Serializer converts a print document into PDF bytes. Serialize is the
// primary method; SerializeFallback is tried within the same attempt when
// the primary fails.
type Serializer interface {
	Serialize(ctx context.Context, doc render.Document) ([]byte, error)
	SerializeFallback(ctx context.Context, doc render.Document) ([]byte, error)
}

// sleepFn is replaced in tests to observe backoff without waiting.
var sleepFn = sleepContext

// Exporter owns the bounded retry loop around PDF serialization. Zero
// values for the knobs fall back to the defaults (3 attempts, 45s
// serialization timeout).
type Exporter struct {
	Serializer       Serializer
	MaxAttempts      int
	SerializeTimeout time.Duration
}

// Result carries the generated PDF plus run diagnostics.
type Result struct {
	PDF      []byte
	Attempts int
	Pages    int
	Duration time.Duration
}

// GeneratePDF runs the full projection pipeline for one record: normalize,
// resolve palette, render the print document, serialize, validate. Failed
// attempts are retried with linear backoff (n seconds after attempt n) up
// to MaxAttempts, except for terminal errors (timeout, stack-overflow
// class), which fail immediately. The last encountered error is surfaced.
func (e *Exporter) GeneratePDF(ctx context.Context, raw model.Resume) (Result, error) {
	start := time.Now()
	maxAttempts := e.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	var lastErr error
	attempts := 0
	for n := 1; n <= maxAttempts; n++ {
		attempts = n

		record := model.Normalize(raw)
		layout := tpl.Lookup(record.Template)
		palette := tpl.ResolvePalette(record.Template, record.ColorPalette)

		doc, err := render.Print(record, layout, palette)
		if err != nil {
			// Content errors are not recoverable by retrying.
			return Result{Attempts: n, Duration: time.Since(start)}, err
		}

		buf, err := e.serializeAttempt(ctx, doc)
		if err == nil {
			err = ValidatePDF(buf)
		}
		if err == nil {
			result := Result{
				PDF:      buf,
				Attempts: n,
				Pages:    pageCount(buf),
				Duration: time.Since(start),
			}
			telemetry.Info("export.pdf.succeeded", map[string]any{
				"template":    layout.ID,
				"attempts":    n,
				"bytes":       len(buf),
				"pages":       result.Pages,
				"duration_ms": float64(result.Duration.Microseconds()) / 1000.0,
			})
			return result, nil
		}

		lastErr = err
		telemetry.Warn("export.pdf.attempt_failed", map[string]any{
			"template": layout.ID,
			"attempt":  n,
			"error":    err.Error(),
			"category": string(Classify(err)),
		})

		if isTerminal(err) || n == maxAttempts {
			break
		}
		if sleepErr := sleepFn(ctx, time.Duration(n)*backoffUnit); sleepErr != nil {
			lastErr = sleepErr
			break
		}
	}

	return Result{Attempts: attempts, Duration: time.Since(start)}, lastErr
}

// serializeAttempt races one serialization attempt (primary, then fallback
// within the same attempt) against the wall-clock timeout. When the timer
// wins, the underlying work keeps running but its result is discarded.
func (e *Exporter) serializeAttempt(ctx context.Context, doc render.Document) ([]byte, error) {
	timeout := e.SerializeTimeout
	if timeout <= 0 {
		timeout = defaultSerializeTimeout
	}

	type outcome struct {
		buf []byte
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		buf, err := e.Serializer.Serialize(ctx, doc)
		if err != nil {
			telemetry.Warn("export.serializer.primary_failed", map[string]any{
				"template": doc.Template,
				"error":    err.Error(),
			})
			buf, err = e.Serializer.SerializeFallback(ctx, doc)
		}
		ch <- outcome{buf: buf, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		return out.buf, out.err
	case <-timer.C:
		return nil, ErrSerializeTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ValidatePDF checks serializer output: non-empty, at least minPDFBytes,
// and carrying the PDF file signature.
func ValidatePDF(buf []byte) error {
	if len(buf) == 0 {
		return errors.New("pdf buffer is empty")
	}
	if len(buf) < minPDFBytes {
		return fmt.Errorf("pdf buffer too small: %d bytes", len(buf))
	}
	if !bytes.HasPrefix(buf, pdfSignature) {
		return errors.New("pdf buffer missing file signature")
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
