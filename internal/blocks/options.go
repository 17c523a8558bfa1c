package blocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-mdblocks/internal/htmlview"
)

// MaxColumns bounds the cols option.
const MaxColumns = 12

// property is one word of a fence info string: key=value, key="quoted
// value" or a bare flag (hasValue false).
type property struct {
	key      string
	value    string
	hasValue bool
}

// parseInfo splits the info string into its language and properties.
func parseInfo(info string) (lang string, props []property, err error) {
	words, err := splitWords(info)
	if err != nil {
		return "", nil, err
	}
	if len(words) == 0 {
		return "", nil, nil
	}
	lang = strings.ToLower(words[0])
	for _, w := range words[1:] {
		key, value, hasValue := strings.Cut(w, "=")
		if key == "" {
			return "", nil, fmt.Errorf("%w: %q has no name", ErrInvalidOption, w)
		}
		props = append(props, property{
			key:      strings.ReplaceAll(strings.ToLower(key), "_", "-"),
			value:    value,
			hasValue: hasValue,
		})
	}
	return lang, props, nil
}

// splitWords splits on unquoted whitespace; double quotes group a value
// and are removed.
func splitWords(s string) ([]string, error) {
	var words []string
	var cur strings.Builder
	inWord, inQuote := false, false
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			inWord = true
		case !inQuote && (r == ' ' || r == '\t'):
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("%w: unclosed quote in %q", ErrInvalidOption, s)
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}

func (p property) boolValue() (bool, error) {
	if !p.hasValue {
		return true, nil
	}
	b, err := strconv.ParseBool(p.value)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q (expected true or false)", ErrInvalidOption, p.key, p.value)
	}
	return b, nil
}

func (p property) stringValue() (string, error) {
	if !p.hasValue || p.value == "" {
		return "", fmt.Errorf("%w: %s needs a value", ErrInvalidOption, p.key)
	}
	return p.value, nil
}

func applyCardsProps(opts htmlview.CardsOptions, props []property) (htmlview.CardsOptions, error) {
	var err error
	for _, p := range props {
		switch p.key {
		case "id":
			opts.ID, err = p.stringValue()
		case "cols", "columns":
			var n int
			n, err = strconv.Atoi(p.value)
			if err != nil || n < 1 || n > MaxColumns {
				err = fmt.Errorf("%w: %s=%q (expected 1-%d)", ErrInvalidOption, p.key, p.value, MaxColumns)
			}
			opts.Columns = n
		case "image-bg":
			opts.ImageBackground, err = p.boolValue()
		default:
			err = fmt.Errorf("%w: unknown cards option %q", ErrInvalidOption, p.key)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func applyPlanProps(opts htmlview.PlanOptions, props []property) (htmlview.PlanOptions, error) {
	var err error
	for _, p := range props {
		switch p.key {
		case "id":
			opts.ID, err = p.stringValue()
		case "period-format":
			opts.PeriodFormat, err = p.stringValue()
		case "hide-descriptions":
			opts.HideDescriptions, err = p.boolValue()
		default:
			err = fmt.Errorf("%w: unknown projects option %q", ErrInvalidOption, p.key)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}
