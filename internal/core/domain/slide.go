package domain

import "strings"

// ElementKind identifies what a page element on a slide holds.
type ElementKind string

// Element kinds understood by the merger.
const (
	// ElementShape is a shape or text box, possibly holding text.
	ElementShape ElementKind = "shape"
	// ElementImage is a picture.
	ElementImage ElementKind = "image"
	// ElementTable is a table whose cells may hold text.
	ElementTable ElementKind = "table"
	// ElementOther is anything the merger copies by duplication only.
	// Its Text is set when the element renders text, such as word art.
	ElementOther ElementKind = "other"
)

// Size is a width and height in the given unit (EMU or PT).
type Size struct {
	Width  float64
	Height float64
	Unit   string
}

// Transform is an affine transform placing an element on its page.
type Transform struct {
	ScaleX     float64
	ScaleY     float64
	ShearX     float64
	ShearY     float64
	TranslateX float64
	TranslateY float64
	Unit       string
}

// RGBColor is an opaque colour with components in [0, 1].
type RGBColor struct {
	Red   float64
	Green float64
	Blue  float64
}

// TextStyle is the subset of character styling carried across presentations.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	Foreground *RGBColor
}

// SlideElement is one page element on a template slide.
type SlideElement struct {
	ObjectID  string
	Kind      ElementKind
	ShapeType string
	Text      string
	Style     *TextStyle
	ImageURL  string
	Size      *Size
	Transform *Transform

	// Rows and Columns give a table's dimensions.
	Rows    int
	Columns int

	// Cells holds a table's cell text, indexed by row then column.
	Cells [][]string
}

// HasText returns true if the element carries text content.
func (e SlideElement) HasText() bool {
	if e.Text != "" {
		return true
	}
	for _, row := range e.Cells {
		for _, cell := range row {
			if cell != "" {
				return true
			}
		}
	}
	return false
}

// AllText returns the element's text followed by its non-empty cells,
// one per line.
func (e SlideElement) AllText() string {
	var parts []string
	if e.Text != "" {
		parts = append(parts, e.Text)
	}
	for _, row := range e.Cells {
		for _, cell := range row {
			if cell != "" {
				parts = append(parts, cell)
			}
		}
	}
	return strings.Join(parts, "\n")
}

// TemplateSlide is the read-only slide copied for every submission.
type TemplateSlide struct {
	// PresentationID is the presentation holding the slide.
	PresentationID string

	// ObjectID is the slide's page object ID.
	ObjectID string

	// Elements are the page elements in z-order.
	Elements []SlideElement

	// Background is the solid page background, nil if unset.
	Background *RGBColor
}

// Text returns the concatenated text of every element, one per line.
func (t *TemplateSlide) Text() string {
	var parts []string
	for _, el := range t.Elements {
		if el.HasText() {
			parts = append(parts, el.AllText())
		}
	}
	return strings.Join(parts, "\n")
}

// MergedSlide is a template slide with one submission substituted in.
type MergedSlide struct {
	// Template is the source slide. It is never modified.
	Template *TemplateSlide

	// Elements are copies of the template elements with substituted text.
	Elements []SlideElement

	// Replacements are the substitutions that produced Elements.
	Replacements []Replacement

	// SubmissionID is the timestamp of the row this slide was made from.
	SubmissionID string
}
