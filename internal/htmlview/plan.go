package htmlview

import (
	"io"
	"strconv"

	"cloud.google.com/go/civil"
	"golang.org/x/net/html"

	"github.com/alnah/go-mdblocks/internal/dateutil"
	"github.com/alnah/go-mdblocks/internal/projects"
)

// DefaultPeriodFormat labels each month column of the timeline.
const DefaultPeriodFormat = "MMM YYYY"

// PlanOptions controls the timeline markup.
type PlanOptions struct {
	ID               string
	PeriodFormat     string
	HideDescriptions bool
}

// PlanBuilder renders a projects.Plan as a Gantt-like timeline.
type PlanBuilder struct {
	opts PlanOptions
}

// NewPlanBuilder validates the period format and returns a builder.
// An empty PeriodFormat uses DefaultPeriodFormat; named presets such as
// "iso" or "month" are accepted.
func NewPlanBuilder(opts PlanOptions) (*PlanBuilder, error) {
	if opts.PeriodFormat == "" {
		opts.PeriodFormat = DefaultPeriodFormat
	}
	if _, err := dateutil.FormatDate(civil.Date{Year: 2000, Month: 1, Day: 1}, opts.PeriodFormat); err != nil {
		return nil, err
	}
	return &PlanBuilder{opts: opts}, nil
}

// timeline maps dates to horizontal positions over an inclusive span.
type timeline struct {
	start, end civil.Date
	days       int
}

func newTimeline(start, end civil.Date) timeline {
	return timeline{start: start, end: end, days: end.DaysSince(start) + 1}
}

// percent returns the share of the timeline covered by n days.
func (tl timeline) percent(n int) string {
	return strconv.FormatFloat(float64(n)*100/float64(tl.days), 'f', 2, 64) + "%"
}

// Build returns the detached timeline element:
//
//	div.nt-plan
//	  div.nt-plan-periods > div.nt-plan-period
//	  div.nt-plan-rows > div.nt-plan-row
//	    div.nt-plan-label > span.nt-plan-title, p.nt-plan-description
//	    div.nt-plan-track > div.nt-plan-bar
//
// The periods header and the bars are omitted when no activity is dated.
func (b *PlanBuilder) Build(p projects.Plan) *html.Node {
	attrs := []html.Attribute{Attr("class", "nt-plan")}
	if b.opts.ID != "" {
		attrs = append(attrs, Attr("id", b.opts.ID))
	}
	root := Element("div", attrs...)

	start, end, dated := projects.Span(p.Activities)
	var tl timeline
	if dated {
		tl = newTimeline(start, end)
		b.buildPeriods(root, tl)
	}

	rows := SubElement(root, "div", Attr("class", "nt-plan-rows"))
	for depth, a := range p.AllWithDepth() {
		b.buildRow(rows, depth, a, tl, dated)
	}
	return root
}

// Render writes the timeline for p to w.
func (b *PlanBuilder) Render(w io.Writer, p projects.Plan) error {
	return Render(w, b.Build(p))
}

// buildPeriods adds one column per calendar month touched by the timeline,
// sized by the number of timeline days that fall in it.
func (b *PlanBuilder) buildPeriods(root *html.Node, tl timeline) {
	periods := SubElement(root, "div", Attr("class", "nt-plan-periods"))

	month := civil.Date{Year: tl.start.Year, Month: tl.start.Month, Day: 1}
	for !month.After(tl.end) {
		next := dateutil.Duration{Months: 1}.AddTo(month)
		from := later(month, tl.start)
		to := earlier(next.AddDays(-1), tl.end)

		label, err := dateutil.FormatDate(month, b.opts.PeriodFormat)
		if err != nil {
			label = month.String()
		}
		period := SubElement(periods, "div",
			Attr("class", "nt-plan-period"),
			Attr("style", "width: "+tl.percent(to.DaysSince(from)+1)),
		)
		SetText(period, label)
		month = next
	}
}

func (b *PlanBuilder) buildRow(rows *html.Node, depth int, a projects.Activity, tl timeline, dated bool) {
	kind := "nt-plan-task"
	if a.IsPhase() {
		kind = "nt-plan-phase"
	}
	row := SubElement(rows, "div",
		Attr("class", "nt-plan-row "+kind+" nt-plan-depth-"+strconv.Itoa(depth)),
	)

	label := SubElement(row, "div", Attr("class", "nt-plan-label"))
	SetText(SubElement(label, "span", Attr("class", "nt-plan-title")), a.Title)
	if a.Description != "" && !b.opts.HideDescriptions {
		SetText(SubElement(label, "p", Attr("class", "nt-plan-description")), a.Description)
	}

	track := SubElement(row, "div", Attr("class", "nt-plan-track"))
	if !dated {
		return
	}
	from, to, ok := a.Span()
	if !ok {
		return
	}
	SubElement(track, "div",
		Attr("class", "nt-plan-bar"),
		Attr("style", "left: "+tl.percent(from.DaysSince(tl.start))+"; width: "+tl.percent(to.DaysSince(from)+1)),
		Attr("title", from.String()+" - "+to.String()),
	)
}

func later(a, b civil.Date) civil.Date {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b civil.Date) civil.Date {
	if a.Before(b) {
		return a
	}
	return b
}
