package mdblocks

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-mdblocks/internal/blocks"
	"github.com/alnah/go-mdblocks/internal/dateutil"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := pageDimensions[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q (must be letter, a4, or legal)", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// Input contains conversion parameters.
type Input struct {
	Markdown  string        // Markdown content (required)
	SourceDir string        // Base directory for relative image and link paths (optional)
	Title     string        // Document title (optional, default "Document")
	CSS       string        // Custom CSS (optional)
	Page      *PageSettings // Page settings (optional, nil = defaults)
	HTMLOnly  bool          // Skip PDF generation
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML []byte
	PDF  []byte // nil when Input.HTMLOnly is set
}

// CardsDefaults are applied to every cards block before its own options.
type CardsDefaults struct {
	Columns         int  // 0 = 3 columns
	ImageBackground bool // render images as card backgrounds
}

// Validate checks the column count.
func (d CardsDefaults) Validate() error {
	if d.Columns < 0 || d.Columns > blocks.MaxColumns {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidColumns, d.Columns, blocks.MaxColumns)
	}
	return nil
}

// PlanDefaults are applied to every projects block before its own options.
type PlanDefaults struct {
	PeriodFormat     string // date label format or preset, "" = "MMM YYYY"
	HideDescriptions bool
}

// Validate checks the period format.
func (d PlanDefaults) Validate() error {
	if d.PeriodFormat == "" {
		return nil
	}
	_, err := dateutil.ParseDateFormat(d.PeriodFormat)
	return err
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	cards   CardsDefaults
	plan    PlanDefaults
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdblocks: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithCardsDefaults sets the defaults of every cards block.
func WithCardsDefaults(d CardsDefaults) Option {
	return func(c *Converter) {
		c.cfg.cards = d
	}
}

// WithPlanDefaults sets the defaults of every projects block.
func WithPlanDefaults(d PlanDefaults) Option {
	return func(c *Converter) {
		c.cfg.plan = d
	}
}
