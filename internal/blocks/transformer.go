package blocks

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-mdblocks/internal/cards"
	"github.com/alnah/go-mdblocks/internal/htmlview"
	"github.com/alnah/go-mdblocks/internal/projects"
)

// Block languages recognized in fence info strings.
const (
	LangCards    = "cards"
	LangProjects = "projects"
	LangGantt    = "gantt"
)

type transformer struct {
	cfg config
}

// Compile-time interface check.
var _ parser.ASTTransformer = (*transformer)(nil)

// Transform replaces every recognized fenced code block with a block node.
func (t *transformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var fences []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if fcb, ok := n.(*ast.FencedCodeBlock); ok && entering {
			fences = append(fences, fcb)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	for _, fcb := range fences {
		if replacement := t.convert(fcb, source); replacement != nil {
			fcb.Parent().ReplaceChild(fcb.Parent(), fcb, replacement)
		}
	}
}

// convert returns the node replacing fcb, or nil when fcb is an ordinary
// code block.
func (t *transformer) convert(fcb *ast.FencedCodeBlock, source []byte) ast.Node {
	if fcb.Info == nil {
		return nil
	}
	info := string(fcb.Info.Segment.Value(source))
	lang, props, err := parseInfo(info)

	switch lang {
	case LangCards:
		n := &CardsNode{Options: t.cfg.cards}
		if err == nil {
			n.Options, err = applyCardsProps(n.Options, props)
		}
		if err == nil {
			n.Cards, err = cards.Decode(body(fcb, source))
		}
		n.Err = blockError(LangCards, fcb, source, err)
		return n

	case LangProjects, LangGantt:
		n := &ProjectsNode{Options: t.cfg.plan}
		if err == nil {
			n.Options, err = applyPlanProps(n.Options, props)
		}
		if err == nil {
			_, err = htmlview.NewPlanBuilder(n.Options)
			if err != nil {
				err = fmt.Errorf("%w: period-format: %w", ErrInvalidOption, err)
			}
		}
		if err == nil {
			n.Plan, err = projects.Decode(body(fcb, source))
		}
		n.Err = blockError(lang, fcb, source, err)
		return n
	}
	return nil
}

// body joins the raw lines of a fenced block.
func body(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buf bytes.Buffer
	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// blockError tags err with the block language and its first body line.
// Option errors keep ErrInvalidOption; everything else becomes ErrBlockDecode.
func blockError(lang string, fcb *ast.FencedCodeBlock, source []byte, err error) error {
	if err == nil {
		return nil
	}
	where := fmt.Sprintf("%s block at line %d", lang, line(fcb, source))
	if errors.Is(err, ErrInvalidOption) {
		return fmt.Errorf("%s: %w", where, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrBlockDecode, where, err)
}

// line returns the 1-based line of the opening fence.
func line(fcb *ast.FencedCodeBlock, source []byte) int {
	offset := fcb.Info.Segment.Start
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
