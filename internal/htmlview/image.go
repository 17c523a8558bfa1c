package htmlview

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/alnah/go-mdblocks/internal/cards"
)

// BuildImage appends <img src alt [width] [height]> to parent.
func BuildImage(parent *html.Node, img *cards.Image) *html.Node {
	attrs := []html.Attribute{Attr("src", img.URL), Attr("alt", img.Alt)}
	if img.Width > 0 {
		attrs = append(attrs, Attr("width", strconv.Itoa(img.Width)))
	}
	if img.Height > 0 {
		attrs = append(attrs, Attr("height", strconv.Itoa(img.Height)))
	}
	return SubElement(parent, "img", attrs...)
}
