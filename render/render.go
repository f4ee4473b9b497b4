package render

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"pptxgen/deck"
)

// PinnedTime is stamped as the document's creation and modification time.
var PinnedTime = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Renderer turns deck descriptors into PPTX packages.
type Renderer struct {
	layout Layout
}

// NewRenderer creates a renderer using the given layout.
func NewRenderer(layout Layout) *Renderer {
	return &Renderer{layout: layout}
}

// Render renders d with the default layout.
func Render(d deck.Deck) ([]byte, error) {
	return NewRenderer(DefaultLayout()).Render(d)
}

// Render builds the presentation in memory and serializes it. Equal decks produce equal bytes.
func (r *Renderer) Render(d deck.Deck) ([]byte, error) {
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("%w: no slides to render", deck.ErrInvalidDeck)
	}

	p := ppt.New()
	p.GetLayout().SetCustomLayout(emu(d.Width), emu(d.Height))

	props := p.GetDocumentProperties()
	props.Title = d.Slides[0].Title
	props.Creator = "pptxgen"
	props.Created = PinnedTime
	props.Modified = PinnedTime

	for i, s := range d.Slides {
		// A new presentation already has one empty slide.
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}

		slide.SetBackground(solidFill(d.Palette.Dark))
		switch s.Kind {
		case deck.TitleKind:
			r.addTitleSlide(slide, d.Palette, s)
		case deck.ContentKind:
			r.addContentSlide(slide, d.Palette, s)
		default:
			return nil, fmt.Errorf("%w: slide %d has unknown kind %s", deck.ErrInvalidDeck, i+1, s.Kind)
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}
	pw, ok := w.(*ppt.PPTXWriter)
	if !ok {
		return nil, errors.New("unexpected PPT writer type")
	}

	var buf bytes.Buffer
	if err := pw.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

func solidFill(c deck.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.ARGB()))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func place(shape *ppt.RichTextShape, b Box) {
	shape.SetOffsetX(emu(b.X)).SetOffsetY(emu(b.Y))
	shape.SetWidth(emu(b.W)).SetHeight(emu(b.H))
}

func (r *Renderer) addTitleSlide(slide *ppt.Slide, pal deck.Palette, s deck.Slide) {
	l := r.layout

	titleShape := slide.CreateRichTextShape()
	place(titleShape, l.TitleBox)
	tr := titleShape.CreateTextRun(s.Title)
	tr.GetFont().SetName(l.TitleFont).SetSize(l.TitleSize).SetBold(true).SetColor(ppt.NewColor(pal.White.ARGB()))
	alignCenter(titleShape.GetActiveParagraph())

	if s.Subtitle == "" {
		return
	}
	subShape := slide.CreateRichTextShape()
	place(subShape, l.SubtitleBox)
	subTr := subShape.CreateTextRun(s.Subtitle)
	subTr.GetFont().SetName(l.BodyFont).SetSize(l.SubtitleSize).SetColor(ppt.NewColor(pal.Light.ARGB()))
	alignCenter(subShape.GetActiveParagraph())
}

func (r *Renderer) addContentSlide(slide *ppt.Slide, pal deck.Palette, s deck.Slide) {
	l := r.layout

	header := slide.CreateRichTextShape()
	place(header, l.HeaderBox)
	tr := header.CreateTextRun(s.Title)
	tr.GetFont().SetName(l.TitleFont).SetSize(l.HeaderSize).SetBold(true).SetColor(ppt.NewColor(pal.Accent.ARGB()))

	for i, it := range s.Items {
		card := slide.CreateRichTextShape()
		place(card, l.Card(i))

		heading := card.CreateTextRun(it.Heading)
		heading.GetFont().SetName(l.TitleFont).SetSize(l.HeadingSize).SetBold(true).SetColor(ppt.NewColor(pal.Accent.ARGB()))

		card.CreateParagraph()
		sub := card.CreateTextRun(it.Subheading)
		sub.GetFont().SetName(l.BodyFont).SetSize(l.SubheadingSize).SetColor(ppt.NewColor(pal.Light.ARGB()))

		card.CreateParagraph().SetSpaceBefore(spacePoints(l.DescriptionSpaceBefore))
		desc := card.CreateTextRun(it.Description)
		desc.GetFont().SetName(l.BodyFont).SetSize(l.DescriptionSize).SetColor(ppt.NewColor(pal.White.ARGB()))
	}
}
