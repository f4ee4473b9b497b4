package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// ErrNotPresentation is returned for packages that are not a PPTX file.
var ErrNotPresentation = errors.New("not a presentation package")

// SlideText holds the non-blank paragraphs of one slide, in shape order.
type SlideText struct {
	Texts []string
}

// Title returns the first paragraph of the slide, or "" for a slide without text.
func (s SlideText) Title() string {
	if len(s.Texts) == 0 {
		return ""
	}
	return s.Texts[0]
}

// Outline is the text content of a presentation, slide by slide.
type Outline struct {
	Slides []SlideText
}

func readPresentation(pkg []byte) (*ppt.Presentation, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.ReadFromReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPresentation, err)
	}
	return pres, nil
}

// CountSlides returns the number of slides in a PPTX package.
func CountSlides(pkg []byte) (int, error) {
	pres, err := readPresentation(pkg)
	if err != nil {
		return 0, err
	}
	return len(pres.GetAllSlides()), nil
}

// ReadOutline parses a PPTX package and extracts its text.
func ReadOutline(pkg []byte) (Outline, error) {
	pres, err := readPresentation(pkg)
	if err != nil {
		return Outline{}, err
	}

	var out Outline
	for _, slide := range pres.GetAllSlides() {
		var st SlideText
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				st.Texts = append(st.Texts, text)
			}
		}
		out.Slides = append(out.Slides, st)
	}
	return out, nil
}
