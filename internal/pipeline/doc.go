// Package pipeline implements the Markdown-to-HTML conversion stages:
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Markdown to HTML via goldmark, with cards and projects blocks
//   - CSS and title injection into the HTML document
//   - Rewriting of relative image, link and background-image paths
//
// PDF generation is handled by the root mdblocks package using headless
// Chrome (go-rod), so this package stays free of browser concerns.
package pipeline
