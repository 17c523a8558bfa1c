package projects

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/alnah/go-mdblocks/internal/dateutil"
	"github.com/alnah/go-mdblocks/internal/yamlutil"
)

// Activity is one row of a plan. A zero Start or End means the date is unset.
type Activity struct {
	Title       string
	Start       civil.Date
	End         civil.Date
	Description string
	Activities  []Activity
}

// IsPhase reports whether the activity groups child activities.
func (a Activity) IsPhase() bool {
	return len(a.Activities) > 0
}

// HasDates reports whether the activity carries a start or an end.
func (a Activity) HasDates() bool {
	return !a.Start.IsZero() || !a.End.IsZero()
}

// Span returns the date range covered by the activity and its descendants.
func (a Activity) Span() (start, end civil.Date, ok bool) {
	return Span([]Activity{a})
}

// Equal reports whether both activities have the same fields and equal
// children in the same order.
func (a Activity) Equal(other Activity) bool {
	return a.Title == other.Title &&
		a.Start == other.Start &&
		a.End == other.End &&
		a.Description == other.Description &&
		slices.EqualFunc(a.Activities, other.Activities, Activity.Equal)
}

// rawActivity is a decoded plan item after its shape has been checked:
// either a bare title or a mapping of fields.
type rawActivity struct {
	title  string
	fields map[string]any
}

func toRawActivity(obj any) (rawActivity, error) {
	if s, ok := obj.(string); ok {
		return rawActivity{title: s}, nil
	}
	if m, ok := yamlutil.AsMap(obj); ok {
		title, err := titleField(m)
		if err != nil {
			return rawActivity{}, err
		}
		return rawActivity{title: title, fields: m}, nil
	}
	return rawActivity{}, fmt.Errorf("%w: expected a string or a mapping, got %T", ErrInvalidActivity, obj)
}

func titleField(m map[string]any) (string, error) {
	v, ok := m["title"]
	if !ok || v == nil {
		return "", ErrMissingTitle
	}
	title, ok := yamlutil.AsString(v)
	if !ok {
		return "", fmt.Errorf("%w: title must be a scalar, got %T", ErrInvalidActivity, v)
	}
	return title, nil
}

// ParseActivity builds an Activity from a decoded YAML value: a string
// (title only) or a mapping with the keys title, start, end, lasts,
// description and activities. Unknown keys are ignored.
func ParseActivity(obj any) (Activity, error) {
	raw, err := toRawActivity(obj)
	if err != nil {
		return Activity{}, err
	}
	return raw.build()
}

func (r rawActivity) build() (Activity, error) {
	if strings.TrimSpace(r.title) == "" {
		return Activity{}, ErrMissingTitle
	}
	a := Activity{Title: r.title}
	if r.fields == nil {
		return a, nil
	}

	var err error
	if a.Start, err = dateField(r.fields, "start"); err != nil {
		return Activity{}, fmt.Errorf("activity %q: start: %w", r.title, err)
	}
	if a.End, err = dateField(r.fields, "end"); err != nil {
		return Activity{}, fmt.Errorf("activity %q: end: %w", r.title, err)
	}

	lasts, hasLasts, err := durationField(r.fields, "lasts")
	if err != nil {
		return Activity{}, fmt.Errorf("activity %q: lasts: %w", r.title, err)
	}
	if hasLasts && !a.Start.IsZero() && a.End.IsZero() {
		a.End = lasts.AddTo(a.Start)
	}

	if v, ok := r.fields["description"]; ok && v != nil {
		desc, ok := yamlutil.AsString(v)
		if !ok {
			return Activity{}, fmt.Errorf("%w: activity %q: description must be text, got %T", ErrInvalidActivity, r.title, v)
		}
		a.Description = desc
	}

	if a.Activities, err = childActivities(r.fields["activities"]); err != nil {
		return Activity{}, fmt.Errorf("activity %q: %w", r.title, err)
	}
	return a, nil
}

func childActivities(v any) ([]Activity, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := yamlutil.AsSlice(v)
	if !ok {
		return nil, fmt.Errorf("%w: activities must be a sequence, got %T", ErrInvalidActivity, v)
	}
	if len(items) == 0 {
		return nil, nil
	}
	children := make([]Activity, 0, len(items))
	for i, item := range items {
		child, err := ParseActivity(item)
		if err != nil {
			return nil, fmt.Errorf("activities[%d]: %w", i, err)
		}
		children = append(children, child)
	}
	return children, nil
}

// dateField reads an optional date. Missing, null and blank values are unset.
func dateField(m map[string]any, key string) (civil.Date, error) {
	switch v := m[key].(type) {
	case nil:
		return civil.Date{}, nil
	case civil.Date:
		return v, nil
	case time.Time:
		return civil.DateOf(v), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return civil.Date{}, nil
		}
		return dateutil.ParseDate(v)
	default:
		return civil.Date{}, fmt.Errorf("%w: unsupported value %v (%T)", dateutil.ErrInvalidDate, v, v)
	}
}

// durationField reads an optional duration. ok reports whether a value was
// given, so "0 days" is distinct from a missing key. It is validated
// whenever present, even if an explicit end makes it unused.
func durationField(m map[string]any, key string) (d dateutil.Duration, ok bool, err error) {
	v := m[key]
	if v == nil {
		return dateutil.Duration{}, false, nil
	}
	s, isString := v.(string)
	if !isString {
		return dateutil.Duration{}, false, fmt.Errorf("%w: unsupported value %v (%T)", dateutil.ErrInvalidDuration, v, v)
	}
	if strings.TrimSpace(s) == "" {
		return dateutil.Duration{}, false, nil
	}
	if d, err = dateutil.ParseDuration(s); err != nil {
		return dateutil.Duration{}, false, err
	}
	return d, true, nil
}
