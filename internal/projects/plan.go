package projects

import (
	"fmt"
	"iter"
	"slices"

	"cloud.google.com/go/civil"

	"github.com/alnah/go-mdblocks/internal/yamlutil"
)

// Plan is an ordered list of top-level activities.
type Plan struct {
	Activities []Activity
}

// ParsePlan builds a Plan from a decoded YAML sequence.
func ParsePlan(obj any) (Plan, error) {
	items, ok := yamlutil.AsSlice(obj)
	if !ok {
		return Plan{}, fmt.Errorf("%w: expected a sequence of activities, got %T", ErrInvalidPlan, obj)
	}
	p := Plan{Activities: make([]Activity, 0, len(items))}
	for i, item := range items {
		a, err := ParseActivity(item)
		if err != nil {
			return Plan{}, fmt.Errorf("%w: item %d: %w", ErrInvalidPlan, i, err)
		}
		p.Activities = append(p.Activities, a)
	}
	return p, nil
}

// Decode parses YAML (or JSON) source into a Plan.
func Decode(data []byte) (Plan, error) {
	v, err := yamlutil.Decode(data)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return ParsePlan(v)
}

// Span returns the earliest and latest dates set anywhere in list and its
// descendants, looking at both start and end of every node.
// ok is false when no node carries a date.
func Span(list []Activity) (start, end civil.Date, ok bool) {
	for _, a := range walkList(list) {
		for _, d := range [2]civil.Date{a.Start, a.End} {
			if d.IsZero() {
				continue
			}
			if !ok || d.Before(start) {
				start = d
			}
			if !ok || d.After(end) {
				end = d
			}
			ok = true
		}
	}
	return start, end, ok
}

// OverallStart returns the earliest date in the plan.
// Returns ErrUndefinedSpan when no activity is dated.
func (p Plan) OverallStart() (civil.Date, error) {
	start, _, ok := Span(p.Activities)
	if !ok {
		return civil.Date{}, ErrUndefinedSpan
	}
	return start, nil
}

// OverallEnd returns the latest date in the plan.
// Returns ErrUndefinedSpan when no activity is dated.
func (p Plan) OverallEnd() (civil.Date, error) {
	_, end, ok := Span(p.Activities)
	if !ok {
		return civil.Date{}, ErrUndefinedSpan
	}
	return end, nil
}

// All yields every activity in pre-order: a phase comes first, then its
// children in source order, then the next sibling.
func (p Plan) All() iter.Seq[Activity] {
	return func(yield func(Activity) bool) {
		for _, a := range walkList(p.Activities) {
			if !yield(a) {
				return
			}
		}
	}
}

// AllWithDepth is All with the nesting depth of each activity
// (0 for top-level activities).
func (p Plan) AllWithDepth() iter.Seq2[int, Activity] {
	return walkList(p.Activities)
}

// Len returns the number of activities in the whole tree.
func (p Plan) Len() int {
	n := 0
	for range walkList(p.Activities) {
		n++
	}
	return n
}

// Equal reports whether both plans hold equal activities in the same order.
func (p Plan) Equal(other Plan) bool {
	return slices.EqualFunc(p.Activities, other.Activities, Activity.Equal)
}

func walkList(list []Activity) iter.Seq2[int, Activity] {
	return func(yield func(int, Activity) bool) {
		walk(list, 0, yield)
	}
}

func walk(list []Activity, depth int, yield func(int, Activity) bool) bool {
	for _, a := range list {
		if !yield(depth, a) {
			return false
		}
		if !walk(a.Activities, depth+1, yield) {
			return false
		}
	}
	return true
}
