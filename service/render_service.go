package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"zoo-web/models"
	"zoo-web/templates"
	"zoo-web/utils"
)

// A4 in inches
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// RenderService renders printable pages to HTML and, through headless Chrome, to PDF
type RenderService struct {
	baseURL    string // Base URL the browser loads render pages from (e.g., "http://localhost:8080")
	chromePath string
	tmpl       *template.Template
	logger     *zap.Logger
}

// NewRenderService parses the embedded templates
func NewRenderService(baseURL, chromePath string, logger *zap.Logger) (*RenderService, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templates.FS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &RenderService{
		baseURL:    baseURL,
		chromePath: detectChromePath(chromePath),
		tmpl:       tmpl,
		logger:     logger,
	}, nil
}

// detectChromePath returns the configured Chrome binary if it exists, else
// the first common installation path found, else "" for chromedp's own lookup
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// RenderMapHTML renders the printable zoo map
func (s *RenderService) RenderMapHTML(m models.ZooMapResponse) ([]byte, error) {
	return s.execute("zoo_map.html", m)
}

type receiptLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

// RenderReceiptHTML renders an order receipt
func (s *RenderService) RenderReceiptHTML(order *models.OrderConfirmation) ([]byte, error) {
	data := struct {
		OrderNumber string
		PlacedAt    string
		Lines       []receiptLine
		ItemCount   int
		Subtotal    string
	}{
		OrderNumber: order.OrderNumber,
		PlacedAt:    order.PlacedAt.Format("January 2, 2006 3:04 PM"),
		ItemCount:   order.ItemCount,
		Subtotal:    utils.FormatUSD(order.Subtotal),
	}
	for _, l := range order.Lines {
		data.Lines = append(data.Lines, receiptLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: utils.FormatUSD(l.UnitPrice),
			LineTotal: utils.FormatUSD(l.LineTotal()),
		})
	}
	return s.execute("receipt.html", data)
}

func (s *RenderService) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// PDFFromURL loads a page served by this site (path relative to the base URL) and prints it
func (s *RenderService) PDFFromURL(ctx context.Context, path string) ([]byte, error) {
	renderURL := s.baseURL + path
	s.logger.Info("printing page", zap.String("url", renderURL))

	return s.printPDF(ctx,
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
	)
}

// PDFFromHTML prints an HTML document without serving it
func (s *RenderService) PDFFromHTML(ctx context.Context, html []byte) ([]byte, error) {
	return s.printPDF(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
	)
}

func (s *RenderService) printPDF(ctx context.Context, load ...chromedp.Action) ([]byte, error) {
	// Create context with timeout (30 seconds)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if s.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	actions := append([]chromedp.Action{chromedp.EmulateViewport(794, 1123)}, load...)
	actions = append(actions,
		// Wait for fonts and images to load
		chromedp.Evaluate(`
			Promise.all([
				document.fonts.ready,
				Promise.all(Array.from(document.querySelectorAll('img')).map(img => new Promise(resolve => {
					if (img.complete) { resolve(); return; }
					const timeout = setTimeout(resolve, 5000);
					img.onload = img.onerror = () => { clearTimeout(timeout); resolve(); };
				})))
			]).then(() => true);
		`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)

	if err := chromedp.Run(chromedpCtx, actions...); err != nil {
		s.logger.Error("pdf generation failed", zap.Error(err))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdfBuf, nil
}
