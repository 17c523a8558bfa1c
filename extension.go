package mdblocks

import (
	"github.com/yuin/goldmark"

	"github.com/alnah/go-mdblocks/internal/blocks"
	"github.com/alnah/go-mdblocks/internal/htmlview"
)

// NewExtension returns a goldmark extension rendering cards and projects
// blocks with the given defaults. Rendering a block that fails to decode
// makes goldmark's Convert return an error wrapping ErrBlockDecode or
// ErrInvalidBlockOption.
func NewExtension(cards CardsDefaults, plan PlanDefaults) goldmark.Extender {
	return blocks.New(extensionOptions(cards, plan)...)
}

func extensionOptions(cards CardsDefaults, plan PlanDefaults) []blocks.Option {
	return []blocks.Option{
		blocks.WithCardsDefaults(htmlview.CardsOptions{
			Columns:         cards.Columns,
			ImageBackground: cards.ImageBackground,
		}),
		blocks.WithPlanDefaults(htmlview.PlanOptions{
			PeriodFormat:     plan.PeriodFormat,
			HideDescriptions: plan.HideDescriptions,
		}),
	}
}
