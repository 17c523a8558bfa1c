package pipeline

import (
	"context"
	"html"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// TitleInjector defines the contract for setting the document title.
type TitleInjector interface {
	InjectTitle(ctx context.Context, htmlContent, title string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so user CSS cannot close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// TitleInjection replaces the document <title>.
type TitleInjection struct{}

// InjectTitle replaces the first <title> element's text with title.
// An empty title leaves the document unchanged.
func (t *TitleInjection) InjectTitle(ctx context.Context, htmlContent, title string) string {
	title = strings.TrimSpace(title)
	if title == "" || ctx.Err() != nil {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)
	start := strings.Index(lowerHTML, "<title>")
	if start == -1 {
		return htmlContent
	}
	start += len("<title>")
	end := strings.Index(lowerHTML[start:], "</title>")
	if end == -1 {
		return htmlContent
	}
	return htmlContent[:start] + html.EscapeString(title) + htmlContent[start+end:]
}
