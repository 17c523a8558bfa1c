package mdblocks

import (
	"errors"

	"github.com/alnah/go-mdblocks/internal/blocks"
	"github.com/alnah/go-mdblocks/internal/dateutil"
	"github.com/alnah/go-mdblocks/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Block errors, wrapped inside ErrHTMLConversion.
	ErrBlockDecode        = blocks.ErrBlockDecode
	ErrInvalidBlockOption = blocks.ErrInvalidOption

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Block defaults validation errors.
	ErrInvalidColumns      = errors.New("invalid column count")
	ErrInvalidPeriodFormat = dateutil.ErrInvalidDateFormat
)
