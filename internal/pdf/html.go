package pdf

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

//go:embed template.html
var invoiceTemplateHTML string

var invoiceTemplate = template.Must(template.New("invoice").Parse(invoiceTemplateHTML))

const defaultEngineTimeout = 30 * time.Second

// htmlStrategy renders the invoice through an HTML template and converts it
// with the wkhtmltopdf binary. The conversion runs under a deadline so a hung
// engine process degrades to the next tier instead of blocking the caller.
type htmlStrategy struct {
	enginePath string
	timeout    time.Duration
	pageSize   string
}

func newHTMLStrategy(cfg Config) *htmlStrategy {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultEngineTimeout
	}
	pageSize := cfg.PageSize
	if pageSize == "" {
		pageSize = wkhtmltopdf.PageSizeA4
	}
	return &htmlStrategy{enginePath: cfg.EnginePath, timeout: timeout, pageSize: pageSize}
}

func (s *htmlStrategy) name() string { return "html" }

func (s *htmlStrategy) render(ctx context.Context, v *viewModel) ([]byte, error) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("execute invoice template: %w", err)
	}

	wkhtmltopdf.SetPath(s.enginePath)
	gen, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("init wkhtmltopdf: %w", err)
	}
	gen.PageSize.Set(s.pageSize)
	gen.MarginTop.Set(10)
	gen.MarginBottom.Set(10)

	page := wkhtmltopdf.NewPageReader(&buf)
	page.DisableExternalLinks.Set(true)
	gen.AddPage(page)

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := gen.CreateContext(runCtx); err != nil {
		return nil, fmt.Errorf("wkhtmltopdf conversion: %w", err)
	}
	return gen.Bytes(), nil
}
