package blocks

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdblocks/internal/htmlview"
)

// priority runs the transformer and renderer ahead of goldmark defaults
// and of the highlighting extension.
const priority = 100

// config holds defaults applied to every block before its own options.
type config struct {
	cards htmlview.CardsOptions
	plan  htmlview.PlanOptions
}

// Option configures the extension.
type Option func(*config)

// WithCardsDefaults sets the options used by cards blocks.
func WithCardsDefaults(opts htmlview.CardsOptions) Option {
	return func(c *config) {
		c.cards = opts
	}
}

// WithPlanDefaults sets the options used by projects blocks.
func WithPlanDefaults(opts htmlview.PlanOptions) Option {
	return func(c *config) {
		c.plan = opts
	}
}

// Extension registers the block transformer and renderer on a goldmark
// instance.
type Extension struct {
	cfg config
}

// Compile-time interface check.
var _ goldmark.Extender = (*Extension)(nil)

// New creates the extension.
func New(opts ...Option) *Extension {
	e := &Extension{}
	for _, opt := range opts {
		opt(&e.cfg)
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(util.Prioritized(&transformer{cfg: e.cfg}, priority)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(&nodeRenderer{}, priority)),
	)
}
