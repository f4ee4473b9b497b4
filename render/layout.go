package render

import "math"

const emuPerInch = 914400

// Box is a rectangle in inches, measured from the top-left corner of the page.
type Box struct {
	X, Y, W, H float64
}

// Layout holds slide geometry (inches), font sizes and spacing (points) and typefaces.
type Layout struct {
	TitleFont string // titles, headers and card headings
	BodyFont  string

	// Title slide
	TitleBox     Box
	TitleSize    int
	SubtitleBox  Box
	SubtitleSize int

	// Content slides
	HeaderBox  Box
	HeaderSize int

	// First item card; later cards move down by CardStep each.
	CardBox  Box
	CardStep float64

	HeadingSize            int
	SubheadingSize         int
	DescriptionSize        int
	DescriptionSpaceBefore int
}

// DefaultLayout returns the geometry of the industrial revolution deck.
func DefaultLayout() Layout {
	return Layout{
		TitleFont: "Oswald",
		BodyFont:  "Open Sans",

		TitleBox:     Box{X: 0.5, Y: 2.5, W: 9, H: 1.5},
		TitleSize:    54,
		SubtitleBox:  Box{X: 0.5, Y: 4.2, W: 9, H: 0.8},
		SubtitleSize: 24,

		HeaderBox:  Box{X: 0.5, Y: 0.5, W: 9, H: 0.8},
		HeaderSize: 36,

		CardBox:  Box{X: 0.5, Y: 1.5, W: 9, H: 1.6},
		CardStep: 1.8,

		HeadingSize:            20,
		SubheadingSize:         14,
		DescriptionSize:        12,
		DescriptionSpaceBefore: 6,
	}
}

// Card returns the box of the i-th (zero based) item card.
func (l Layout) Card(i int) Box {
	b := l.CardBox
	b.Y += float64(i) * l.CardStep
	return b
}

// spacePoints converts points to the hundredths used by paragraph spacing.
func spacePoints(pt int) int {
	return pt * 100
}

// emu converts inches to English Metric Units, rounding to the nearest unit.
func emu(inches float64) int64 {
	return int64(math.Round(inches * emuPerInch))
}
