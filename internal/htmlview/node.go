// Package htmlview builds the HTML markup of cards grids and project plans
// as golang.org/x/net/html element trees.
package htmlview

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr is a shorthand for an attribute without namespace.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Element creates a detached element.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
		Attr:     attrs,
	}
}

// SubElement creates an element and appends it as the last child of parent.
func SubElement(parent *html.Node, tag string, attrs ...html.Attribute) *html.Node {
	n := Element(tag, attrs...)
	parent.AppendChild(n)
	return n
}

// SetText appends a text child. Escaping happens at render time.
func SetText(n *html.Node, text string) {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Render writes n and its subtree as HTML.
func Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// RenderString renders n to a string.
func RenderString(n *html.Node) (string, error) {
	var buf strings.Builder
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
