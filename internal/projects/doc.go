// Package projects models a project plan: a tree of activities with
// calendar dates, built from decoded YAML and walked in pre-order by
// renderers.
//
// Dates are resolved once at construction. An activity with a start and a
// duration ("lasts: 2 weeks") but no end gets end = start + duration; an
// explicit end always wins. Phases (activities with children) keep their
// own dates as written; their span is computed on demand with Span.
//
// All values are immutable after construction and safe for concurrent
// readers.
package projects
