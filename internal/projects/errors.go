package projects

import "errors"

// Sentinel errors for plan construction and aggregation.
var (
	ErrMissingTitle    = errors.New("activity title is required")
	ErrInvalidActivity = errors.New("invalid activity")
	ErrInvalidPlan     = errors.New("invalid plan")
	ErrUndefinedSpan   = errors.New("plan has no dated activity")
)
