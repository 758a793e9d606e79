package export

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"resume-builder/resume/render"
)

// ChromeSerializer renders print documents to PDF with headless Chrome.
// The primary method prints with backgrounds and CSS page sizing; the
// fallback drops both, which sidesteps print-background and page-size
// bugs seen on some Chrome builds.
type ChromeSerializer struct {
	ExecPath string

	once     sync.Once
	allocCtx context.Context
}

// NewChromeSerializer builds a serializer. execPath optionally points at a
// Chrome binary; empty means chromedp's default discovery.
func NewChromeSerializer(execPath string) *ChromeSerializer {
	return &ChromeSerializer{ExecPath: execPath}
}

// init sets up the shared exec allocator exactly once per process. The
// allocator is deliberately never cancelled: it lives as long as the
// process and is shared by all requests.
func (s *ChromeSerializer) init() {
	s.once.Do(func() {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)
		if s.ExecPath != "" {
			opts = append(opts, chromedp.ExecPath(s.ExecPath))
		}
		s.allocCtx, _ = chromedp.NewExecAllocator(context.Background(), opts...)
	})
}

// Serialize prints the document with backgrounds and CSS-preferred page
// size at the document's paper geometry.
func (s *ChromeSerializer) Serialize(ctx context.Context, doc render.Document) ([]byte, error) {
	return s.print(ctx, doc, false)
}

// SerializeFallback prints with conservative parameters: no backgrounds,
// Chrome's own page sizing.
func (s *ChromeSerializer) SerializeFallback(ctx context.Context, doc render.Document) ([]byte, error) {
	return s.print(ctx, doc, true)
}

func (s *ChromeSerializer) print(ctx context.Context, doc render.Document, conservative bool) ([]byte, error) {
	s.init()

	tmpDir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "document.html")
	if err := os.WriteFile(htmlPath, []byte(doc.HTML), 0o644); err != nil {
		return nil, err
	}

	tabCtx, cancelTab := chromedp.NewContext(s.allocCtx)
	defer cancelTab()

	// Tie tab lifetime to the caller's context so an abandoned attempt
	// does not leave the tab running.
	go func() {
		select {
		case <-ctx.Done():
			cancelTab()
		case <-tabCtx.Done():
		}
	}()

	var pdfBuf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params := page.PrintToPDF().
				WithPaperWidth(doc.PaperWidth).
				WithPaperHeight(doc.PaperHeight)
			if conservative {
				params = params.WithPrintBackground(false)
			} else {
				params = params.
					WithPrintBackground(true).
					WithPreferCSSPageSize(true)
			}
			var printErr error
			pdfBuf, _, printErr = params.Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
