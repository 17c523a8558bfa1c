package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters. They pass
// through goldmark unchanged and become <mark> tags afterwards.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
	fenceOpen          = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before goldmark conversion.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown normalizes line endings, marks ==highlights== outside
// fenced code and compresses runs of blank lines.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = convertHighlights(content)
	content = compressBlankLines(content)
	return content
}

func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	forEachSegment(content, func(text string, fenced bool) {
		if fenced {
			b.WriteString(text)
			return
		}
		b.WriteString(multipleBlankLines.ReplaceAllString(text, "\n\n"))
	})
	return b.String()
}

// convertHighlights turns ==text== into placeholder markers. Fenced code
// blocks, including cards and projects bodies, are left as written.
func convertHighlights(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	forEachSegment(content, func(text string, fenced bool) {
		if fenced {
			b.WriteString(text)
			return
		}
		b.WriteString(highlightPattern.ReplaceAllString(text, MarkStartPlaceholder+"$1"+MarkEndPlaceholder))
	})
	return b.String()
}

// forEachSegment splits content into alternating prose and fenced code
// runs, in order. A fence closes on a line holding at least as many of
// the same fence characters; an unclosed fence runs to the end.
func forEachSegment(content string, fn func(text string, fenced bool)) {
	lines := strings.SplitAfter(content, "\n")

	var seg strings.Builder
	fenced := false
	fence := ""
	flush := func(asFenced bool) {
		if seg.Len() > 0 {
			fn(seg.String(), asFenced)
			seg.Reset()
		}
	}

	for _, line := range lines {
		if !fenced {
			if m := fenceOpen.FindStringSubmatch(line); m != nil {
				flush(false)
				fenced, fence = true, m[1]
			}
			seg.WriteString(line)
			continue
		}
		seg.WriteString(line)
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, fence) && strings.Trim(trimmed, fence[:1]) == "" {
			flush(true)
			fenced = false
		}
	}
	flush(fenced)
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}
