package blocks

import (
	"strconv"

	"github.com/yuin/goldmark/ast"

	"github.com/alnah/go-mdblocks/internal/cards"
	"github.com/alnah/go-mdblocks/internal/htmlview"
	"github.com/alnah/go-mdblocks/internal/projects"
)

var (
	KindCards    = ast.NewNodeKind("Cards")
	KindProjects = ast.NewNodeKind("Projects")
)

// CardsNode replaces a fenced "cards" block. Err is set when the block
// could not be decoded; the renderer reports it.
type CardsNode struct {
	ast.BaseBlock
	Cards   cards.Cards
	Options htmlview.CardsOptions
	Err     error
}

// Kind implements ast.Node.
func (n *CardsNode) Kind() ast.NodeKind { return KindCards }

// Dump implements ast.Node.
func (n *CardsNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Items": strconv.Itoa(len(n.Cards.Items)),
		"Err":   errString(n.Err),
	}, nil)
}

// ProjectsNode replaces a fenced "projects" or "gantt" block.
type ProjectsNode struct {
	ast.BaseBlock
	Plan    projects.Plan
	Options htmlview.PlanOptions
	Err     error
}

// Kind implements ast.Node.
func (n *ProjectsNode) Kind() ast.NodeKind { return KindProjects }

// Dump implements ast.Node.
func (n *ProjectsNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Activities": strconv.Itoa(n.Plan.Len()),
		"Err":        errString(n.Err),
	}, nil)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
