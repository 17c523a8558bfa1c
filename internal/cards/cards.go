// Package cards models a grid of cards decoded from YAML.
package cards

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mdblocks/internal/yamlutil"
)

var (
	ErrMissingTitle = errors.New("card title is required")
	ErrInvalidCard  = errors.New("invalid card")
	ErrInvalidImage = errors.New("invalid card image")
)

// Image is a picture shown on a card. Zero Width or Height are omitted
// from the markup.
type Image struct {
	URL    string
	Alt    string
	Width  int
	Height int
}

// Item is a single card.
type Item struct {
	Title   string
	Content string
	URL     string
	Key     string
	Image   *Image
}

// Cards is an ordered list of cards.
type Cards struct {
	Items []Item
}

// ParseImage accepts a URL string or a mapping with url, alt, width and height.
func ParseImage(obj any) (*Image, error) {
	if s, ok := obj.(string); ok {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("%w: empty url", ErrInvalidImage)
		}
		return &Image{URL: s}, nil
	}
	m, ok := yamlutil.AsMap(obj)
	if !ok {
		return nil, fmt.Errorf("%w: expected a url or a mapping, got %T", ErrInvalidImage, obj)
	}

	img := &Image{}
	var err error
	if img.URL, err = stringField(m, "url"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if strings.TrimSpace(img.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidImage)
	}
	if img.Alt, err = stringField(m, "alt"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	for key, dst := range map[string]*int{"width": &img.Width, "height": &img.Height} {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		n, ok := yamlutil.AsInt(v)
		if !ok || n < 0 {
			return nil, fmt.Errorf("%w: %s must be a non-negative integer, got %v", ErrInvalidImage, key, v)
		}
		*dst = n
	}
	return img, nil
}

// ParseItem builds a card from a decoded YAML mapping with the keys title,
// content, image, url and key. Unknown keys are ignored.
func ParseItem(obj any) (Item, error) {
	m, ok := yamlutil.AsMap(obj)
	if !ok {
		return Item{}, fmt.Errorf("%w: expected a mapping, got %T", ErrInvalidCard, obj)
	}

	var item Item
	var err error
	if item.Title, err = stringField(m, "title"); err != nil {
		return Item{}, fmt.Errorf("%w: %w", ErrInvalidCard, err)
	}
	if strings.TrimSpace(item.Title) == "" {
		return Item{}, ErrMissingTitle
	}
	for key, dst := range map[string]*string{"content": &item.Content, "url": &item.URL, "key": &item.Key} {
		if *dst, err = stringField(m, key); err != nil {
			return Item{}, fmt.Errorf("%w: card %q: %w", ErrInvalidCard, item.Title, err)
		}
	}
	if v, ok := m["image"]; ok && v != nil {
		if item.Image, err = ParseImage(v); err != nil {
			return Item{}, fmt.Errorf("card %q: %w", item.Title, err)
		}
	}
	return item, nil
}

// Parse builds Cards from a decoded YAML sequence.
func Parse(obj any) (Cards, error) {
	items, ok := yamlutil.AsSlice(obj)
	if !ok {
		return Cards{}, fmt.Errorf("%w: expected a sequence of cards, got %T", ErrInvalidCard, obj)
	}
	c := Cards{Items: make([]Item, 0, len(items))}
	for i, obj := range items {
		item, err := ParseItem(obj)
		if err != nil {
			return Cards{}, fmt.Errorf("item %d: %w", i, err)
		}
		c.Items = append(c.Items, item)
	}
	return c, nil
}

// Decode parses YAML (or JSON) source into Cards.
func Decode(data []byte) (Cards, error) {
	v, err := yamlutil.Decode(data)
	if err != nil {
		return Cards{}, fmt.Errorf("%w: %w", ErrInvalidCard, err)
	}
	return Parse(v)
}

// stringField reads an optional scalar as text. Missing and null are empty.
func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := yamlutil.AsString(v)
	if !ok {
		return "", fmt.Errorf("%s must be text, got %T", key, v)
	}
	return s, nil
}
