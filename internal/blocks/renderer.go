package blocks

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdblocks/internal/htmlview"
)

type nodeRenderer struct{}

// Compile-time interface check.
var _ renderer.NodeRenderer = (*nodeRenderer)(nil)

// RegisterFuncs implements renderer.NodeRenderer.
func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindCards, r.renderCards)
	reg.Register(KindProjects, r.renderProjects)
}

func (r *nodeRenderer) renderCards(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*CardsNode)
	if n.Err != nil {
		return ast.WalkStop, n.Err
	}
	if err := htmlview.NewCardsBuilder(n.Options).Render(w, n.Cards); err != nil {
		return ast.WalkStop, err
	}
	_, _ = w.WriteString("\n")
	return ast.WalkSkipChildren, nil
}

func (r *nodeRenderer) renderProjects(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ProjectsNode)
	if n.Err != nil {
		return ast.WalkStop, n.Err
	}
	b, err := htmlview.NewPlanBuilder(n.Options)
	if err != nil {
		return ast.WalkStop, err
	}
	if err := b.Render(w, n.Plan); err != nil {
		return ast.WalkStop, err
	}
	_, _ = w.WriteString("\n")
	return ast.WalkSkipChildren, nil
}
