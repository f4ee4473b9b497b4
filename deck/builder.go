package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDeck is wrapped by every error Build returns.
var ErrInvalidDeck = errors.New("invalid deck")

// Builder accumulates slide descriptors. It never touches the document library;
// rendering happens separately in package render.
type Builder struct {
	deck Deck
}

// NewBuilder creates a builder for a 10x7.5 inch deck saved under filename.
func NewBuilder(filename string) *Builder {
	return &Builder{
		deck: Deck{
			Filename: filename,
			Width:    10,
			Height:   7.5,
		},
	}
}

// PageSize sets the page size in inches.
func (b *Builder) PageSize(width, height float64) *Builder {
	b.deck.Width = width
	b.deck.Height = height
	return b
}

// Palette sets the deck colors.
func (b *Builder) Palette(p Palette) *Builder {
	b.deck.Palette = p
	return b
}

// TitleSlide appends a title slide.
func (b *Builder) TitleSlide(title, subtitle string) *Builder {
	b.deck.Slides = append(b.deck.Slides, Slide{
		Kind:     TitleKind,
		Title:    title,
		Subtitle: subtitle,
	})
	return b
}

// ContentSlide appends a content slide with the given items in order.
func (b *Builder) ContentSlide(title string, items ...Item) *Builder {
	b.deck.Slides = append(b.deck.Slides, Slide{
		Kind:  ContentKind,
		Title: title,
		Items: append([]Item(nil), items...),
	})
	return b
}

// Build validates the accumulated slides and returns a copy of the deck.
// All violations are reported together.
func (b *Builder) Build() (Deck, error) {
	var errs []error

	if strings.TrimSpace(b.deck.Filename) == "" {
		errs = append(errs, errors.New("filename is empty"))
	}
	if b.deck.Width <= 0 || b.deck.Height <= 0 {
		errs = append(errs, fmt.Errorf("page size %gx%g is not positive", b.deck.Width, b.deck.Height))
	}
	if len(b.deck.Slides) == 0 {
		errs = append(errs, errors.New("deck has no slides"))
	}

	for i, s := range b.deck.Slides {
		if err := validateSlide(s); err != nil {
			errs = append(errs, fmt.Errorf("slide %d: %w", i+1, err))
		}
	}

	if len(errs) > 0 {
		return Deck{}, fmt.Errorf("%w: %w", ErrInvalidDeck, errors.Join(errs...))
	}

	d := b.deck
	d.Slides = make([]Slide, len(b.deck.Slides))
	for i, s := range b.deck.Slides {
		s.Items = append([]Item(nil), s.Items...)
		d.Slides[i] = s
	}
	return d, nil
}

func validateSlide(s Slide) error {
	var errs []error
	if strings.TrimSpace(s.Title) == "" {
		errs = append(errs, errors.New("title is empty"))
	}

	switch s.Kind {
	case TitleKind:
		if len(s.Items) > 0 {
			errs = append(errs, errors.New("title slide cannot have items"))
		}
	case ContentKind:
		if len(s.Items) == 0 {
			errs = append(errs, errors.New("content slide has no items"))
		}
		for j, it := range s.Items {
			if strings.TrimSpace(it.Heading) == "" {
				errs = append(errs, fmt.Errorf("item %d: heading is empty", j+1))
			}
			if strings.TrimSpace(it.Subheading) == "" {
				errs = append(errs, fmt.Errorf("item %d: subheading is empty", j+1))
			}
			if strings.TrimSpace(it.Description) == "" {
				errs = append(errs, fmt.Errorf("item %d: description is empty", j+1))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("unknown slide kind %s", s.Kind))
	}

	return errors.Join(errs...)
}
