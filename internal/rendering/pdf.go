package rendering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// pdfTimeout bounds the whole browser session for one export.
const pdfTimeout = 60 * time.Second

// US Letter, in inches.
const (
	pdfPaperWidth  = 8.5
	pdfPaperHeight = 11.0
	pdfMargin      = 0.5
)

// RenderPDF prints an HTML document to PDF via a headless browser.
func RenderPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, pdfTimeout)
	defer cancel()

	// Chrome needs a navigable URL, so stage the document in a temp file.
	tmpDir, err := os.MkdirTemp("", "resume-pdf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("failed to stage HTML: %w", err)
	}

	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdfBuf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(pdfPaperWidth).
				WithPaperHeight(pdfPaperHeight).
				WithMarginTop(pdfMargin).
				WithMarginBottom(pdfMargin).
				WithMarginLeft(pdfMargin).
				WithMarginRight(pdfMargin).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser PDF rendering failed: %w", err)
	}

	return pdfBuf, nil
}
