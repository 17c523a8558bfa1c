package htmlview

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-mdblocks/internal/cards"
)

// DefaultColumns is the grid width used when CardsOptions.Columns is unset.
const DefaultColumns = 3

// CardsOptions controls the cards grid markup.
type CardsOptions struct {
	ID              string
	Columns         int
	ImageBackground bool
}

// CardsBuilder renders cards.Cards as a grid.
type CardsBuilder struct {
	opts CardsOptions
}

// NewCardsBuilder returns a builder. Non-positive Columns fall back to
// DefaultColumns.
func NewCardsBuilder(opts CardsOptions) *CardsBuilder {
	if opts.Columns <= 0 {
		opts.Columns = DefaultColumns
	}
	return &CardsBuilder{opts: opts}
}

// Build returns the detached grid element:
//
//	div.nt-cards.nt-grid.cols-N
//	  div.nt-card [key]
//	    a[href] | div.nt-card-wrap
//	      div
//	        div.nt-card-image ...
//	        div.nt-card-content > p.nt-card-title, p.nt-card-text
func (b *CardsBuilder) Build(c cards.Cards) *html.Node {
	attrs := []html.Attribute{Attr("class", "nt-cards nt-grid cols-"+strconv.Itoa(b.opts.Columns))}
	if b.opts.ID != "" {
		attrs = append(attrs, Attr("id", b.opts.ID))
	}
	root := Element("div", attrs...)
	for _, item := range c.Items {
		b.buildItem(root, item)
	}
	return root
}

// Render writes the grid for c to w.
func (b *CardsBuilder) Render(w io.Writer, c cards.Cards) error {
	return Render(w, b.Build(c))
}

func (b *CardsBuilder) buildItem(parent *html.Node, item cards.Item) {
	class := "nt-card"
	if item.Key != "" {
		class += " " + item.Key
	}
	card := SubElement(parent, "div", Attr("class", class))

	var first *html.Node
	if item.URL != "" {
		first = SubElement(card, "a", Attr("href", item.URL))
	} else {
		first = SubElement(card, "div", Attr("class", "nt-card-wrap"))
	}
	wrapper := SubElement(first, "div")

	b.buildImage(wrapper, item.Image)

	content := SubElement(wrapper, "div", Attr("class", "nt-card-content"))
	SetText(SubElement(content, "p", Attr("class", "nt-card-title")), item.Title)
	if item.Content != "" {
		SetText(SubElement(content, "p", Attr("class", "nt-card-text")), item.Content)
	}
}

func (b *CardsBuilder) buildImage(wrapper *html.Node, img *cards.Image) {
	if img == nil {
		return
	}
	if !b.opts.ImageBackground {
		BuildImage(SubElement(wrapper, "div", Attr("class", "nt-card-image tags")), img)
		return
	}
	SubElement(wrapper, "div",
		Attr("class", "nt-card-image"),
		Attr("style", BackgroundImageStyle(img.URL)),
	)
}

// cssURLEscaper keeps a URL from closing the quoted url('...') token.
var cssURLEscaper = strings.NewReplacer(`'`, "%27", `\`, "%5C", "\n", "", "\r", "")

// BackgroundImageStyle returns the inline style used for background images.
func BackgroundImageStyle(url string) string {
	return "background-image: url('" + cssURLEscaper.Replace(url) + "')"
}
