package blocks

import (
	"errors"
	"slices"
	"testing"

	"github.com/alnah/go-mdblocks/internal/htmlview"
)

// ---------------------------------------------------------------------------
// TestSplitWords - Info string tokenizer
// ---------------------------------------------------------------------------

func TestSplitWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "language only", input: "cards", want: []string{"cards"}},
		{name: "flags and pairs", input: "cards cols=4  image-bg", want: []string{"cards", "cols=4", "image-bg"}},
		{name: "tabs", input: "projects\tid=x", want: []string{"projects", "id=x"}},
		{name: "quoted value", input: `projects period-format="MMM YYYY"`, want: []string{"projects", "period-format=MMM YYYY"}},
		{name: "empty quotes", input: `gantt id=""`, want: []string{"gantt", "id="}},
		{name: "unclosed quote", input: `projects period-format="MMM`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := splitWords(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOption) {
					t.Errorf("splitWords(%q) error = %v, want ErrInvalidOption", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitWords(%q) unexpected error: %v", tt.input, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("splitWords(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInfo(t *testing.T) {
	t.Parallel()

	lang, props, err := parseInfo(`Cards COLS=2 Image_BG id="my grid"`)
	if err != nil {
		t.Fatalf("parseInfo() unexpected error: %v", err)
	}
	if lang != "cards" {
		t.Errorf("lang = %q, want cards", lang)
	}
	want := []property{
		{key: "cols", value: "2", hasValue: true},
		{key: "image-bg"},
		{key: "id", value: "my grid", hasValue: true},
	}
	if !slices.Equal(props, want) {
		t.Errorf("props = %+v, want %+v", props, want)
	}

	if _, _, err := parseInfo("cards =3"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("parseInfo(nameless) error = %v, want ErrInvalidOption", err)
	}
}

// ---------------------------------------------------------------------------
// TestApplyCardsProps / TestApplyPlanProps - Option overrides
// ---------------------------------------------------------------------------

func TestApplyCardsProps(t *testing.T) {
	t.Parallel()

	base := htmlview.CardsOptions{Columns: 3}

	tests := []struct {
		name    string
		info    string
		want    htmlview.CardsOptions
		wantErr bool
	}{
		{name: "no props", info: "cards", want: base},
		{name: "columns", info: "cards cols=4", want: htmlview.CardsOptions{Columns: 4}},
		{name: "columns long name", info: "cards columns=12", want: htmlview.CardsOptions{Columns: 12}},
		{name: "image background flag", info: "cards image-bg", want: htmlview.CardsOptions{Columns: 3, ImageBackground: true}},
		{name: "image background false", info: "cards image-bg=false", want: htmlview.CardsOptions{Columns: 3}},
		{name: "id", info: "cards id=team", want: htmlview.CardsOptions{Columns: 3, ID: "team"}},
		{name: "zero columns", info: "cards cols=0", wantErr: true},
		{name: "too many columns", info: "cards cols=13", wantErr: true},
		{name: "non numeric columns", info: "cards cols=three", wantErr: true},
		{name: "bad bool", info: "cards image-bg=maybe", wantErr: true},
		{name: "id without value", info: "cards id", wantErr: true},
		{name: "unknown", info: "cards period-format=MMM", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, props, err := parseInfo(tt.info)
			if err != nil {
				t.Fatalf("parseInfo() unexpected error: %v", err)
			}
			got, err := applyCardsProps(base, props)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOption) {
					t.Errorf("applyCardsProps() error = %v, want ErrInvalidOption", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyCardsProps() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("applyCardsProps() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyPlanProps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		info    string
		want    htmlview.PlanOptions
		wantErr bool
	}{
		{name: "no props", info: "projects", want: htmlview.PlanOptions{}},
		{name: "period format", info: `projects period-format="MMMM YYYY"`, want: htmlview.PlanOptions{PeriodFormat: "MMMM YYYY"}},
		{name: "underscore spelling", info: "projects period_format=iso", want: htmlview.PlanOptions{PeriodFormat: "iso"}},
		{name: "hide descriptions", info: "projects hide-descriptions", want: htmlview.PlanOptions{HideDescriptions: true}},
		{name: "id", info: "gantt id=roadmap", want: htmlview.PlanOptions{ID: "roadmap"}},
		{name: "empty format", info: `projects period-format=""`, wantErr: true},
		{name: "unknown", info: "projects cols=2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, props, err := parseInfo(tt.info)
			if err != nil {
				t.Fatalf("parseInfo() unexpected error: %v", err)
			}
			got, err := applyPlanProps(htmlview.PlanOptions{}, props)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOption) {
					t.Errorf("applyPlanProps() error = %v, want ErrInvalidOption", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyPlanProps() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("applyPlanProps() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
