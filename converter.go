package mdblocks

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdblocks/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.TitleInjector        = (*pipeline.TitleInjection)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
)

// Converter orchestrates the Markdown to HTML and PDF pipeline.
// Create with NewConverter, use Convert for conversion, and Close when done.
type Converter struct {
	cfg           converterConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	titleInjector pipeline.TitleInjector
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter. The browser used for PDF output is
// started on the first conversion that needs it.
// Returns ErrInvalidColumns or ErrInvalidPeriodFormat for invalid block defaults.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           converterConfig{timeout: defaultTimeout},
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		cssInjector:   &pipeline.CSSInjection{},
		titleInjector: &pipeline.TitleInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.cards.Validate(); err != nil {
		return nil, err
	}
	if err := c.cfg.plan.Validate(); err != nil {
		return nil, err
	}

	// Tests inject their own components.
	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(extensionOptions(c.cfg.cards, c.cfg.plan)...)
	}
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the HTML and, unless
// input.HTMLOnly is set, the PDF.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if input.SourceDir != "" {
		htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	// Placeholders become <mark> after goldmark so raw HTML stays disabled.
	htmlContent = pipeline.ConvertMarkPlaceholders(htmlContent)

	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, input.CSS)
	htmlContent = c.titleInjector.InjectTitle(ctx, htmlContent, input.Title)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &ConvertResult{HTML: []byte(htmlContent)}
	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
// Library users build Input by hand; CLI input is also validated earlier
// by config.Validate.
func validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return input.Page.Validate()
}
