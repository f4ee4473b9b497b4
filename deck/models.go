package deck

import (
	"fmt"
	"path"
	"strings"
)

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// ARGB returns the color as the opaque ARGB hex string used by the PPTX writer.
func (c Color) ARGB() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}

// Palette holds the four colors every slide is drawn with.
type Palette struct {
	Dark   Color // background
	Accent Color // titles and item headings
	Light  Color // subtitles and subheadings
	White  Color // title slide heading and descriptions
}

// Kind tells a title slide from a content slide.
type Kind int

const (
	TitleKind Kind = iota
	ContentKind
)

func (k Kind) String() string {
	switch k {
	case TitleKind:
		return "title"
	case ContentKind:
		return "content"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Item is one card on a content slide.
type Item struct {
	Heading     string
	Subheading  string
	Description string
}

// Slide describes a single slide. Subtitle is only used by title slides, Items only by content slides.
type Slide struct {
	Kind     Kind
	Title    string
	Subtitle string
	Items    []Item
}

// Deck is the full, immutable description of a presentation.
type Deck struct {
	Filename string
	// Page size in inches.
	Width   float64
	Height  float64
	Palette Palette
	Slides  []Slide
}

// Name returns the filename without its extension. It keys per-deck settings.
func (d Deck) Name() string {
	return strings.TrimSuffix(d.Filename, path.Ext(d.Filename))
}

// SlideCount returns the number of slides in the deck.
func (d Deck) SlideCount() int {
	return len(d.Slides)
}

// Titles returns the slide titles in order.
func (d Deck) Titles() []string {
	titles := make([]string, 0, len(d.Slides))
	for _, s := range d.Slides {
		titles = append(titles, s.Title)
	}
	return titles
}
