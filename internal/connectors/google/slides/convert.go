package slides

import (
	"strings"

	"google.golang.org/api/slides/v1"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
)

// PageToTemplate converts a slide page to the domain template model.
func PageToTemplate(presentationID string, page *slides.Page) *domain.TemplateSlide {
	tmpl := &domain.TemplateSlide{
		PresentationID: presentationID,
		ObjectID:       page.ObjectId,
		Background:     pageBackground(page),
	}

	tmpl.Elements = convertElements(page.PageElements, nil)
	return tmpl
}

// convertElements flattens groups into their children. A child's transform
// is relative to its group, so the group transform is applied on top.
func convertElements(els []*slides.PageElement, parent *slides.AffineTransform) []domain.SlideElement {
	var out []domain.SlideElement
	for _, el := range els {
		transform := composeTransform(parent, el.Transform)
		if el.ElementGroup != nil {
			out = append(out, convertElements(el.ElementGroup.Children, transform)...)
			continue
		}
		out = append(out, convertElement(el, transform))
	}
	return out
}

func convertElement(el *slides.PageElement, transform *slides.AffineTransform) domain.SlideElement {
	out := domain.SlideElement{
		ObjectID:  el.ObjectId,
		Kind:      domain.ElementOther,
		Size:      convertSize(el.Size),
		Transform: convertTransform(transform),
	}

	switch {
	case el.Shape != nil:
		out.Kind = domain.ElementShape
		out.ShapeType = el.Shape.ShapeType
		out.Text, out.Style = convertText(el.Shape.Text)
	case el.Image != nil:
		out.Kind = domain.ElementImage
		out.ImageURL = el.Image.SourceUrl
		if out.ImageURL == "" {
			out.ImageURL = el.Image.ContentUrl
		}
	case el.Table != nil:
		out.Kind = domain.ElementTable
		out.Rows = int(el.Table.Rows)
		out.Columns = int(el.Table.Columns)
		out.Cells = convertCells(el.Table)
	case el.WordArt != nil:
		out.Text = el.WordArt.RenderedText
	}
	return out
}

// convertCells returns the text of every cell, indexed by row and column.
// Cells covered by a merged neighbour stay empty.
func convertCells(t *slides.Table) [][]string {
	cells := make([][]string, t.Rows)
	for r := range cells {
		cells[r] = make([]string, t.Columns)
	}
	for r, row := range t.TableRows {
		for c, cell := range row.TableCells {
			ri, ci := int64(r), int64(c)
			if loc := cell.Location; loc != nil {
				ri, ci = loc.RowIndex, loc.ColumnIndex
			}
			if ri >= t.Rows || ci >= t.Columns {
				continue
			}
			cells[ri][ci], _ = convertText(cell.Text)
		}
	}
	return cells
}

// composeTransform returns parent applied after child. Either may be nil,
// which stands for the identity.
func composeTransform(parent, child *slides.AffineTransform) *slides.AffineTransform {
	if parent == nil {
		return child
	}
	if child == nil {
		return parent
	}

	unit := child.Unit
	if unit == "" {
		unit = parent.Unit
	}
	return &slides.AffineTransform{
		ScaleX:     parent.ScaleX*child.ScaleX + parent.ShearX*child.ShearY,
		ShearX:     parent.ScaleX*child.ShearX + parent.ShearX*child.ScaleY,
		ShearY:     parent.ShearY*child.ScaleX + parent.ScaleY*child.ShearY,
		ScaleY:     parent.ShearY*child.ShearX + parent.ScaleY*child.ScaleY,
		TranslateX: parent.ScaleX*child.TranslateX + parent.ShearX*child.TranslateY + parent.TranslateX,
		TranslateY: parent.ShearY*child.TranslateX + parent.ScaleY*child.TranslateY + parent.TranslateY,
		Unit:       unit,
	}
}

// convertText joins the text runs of a shape and returns the style of the
// first styled run. The final paragraph break is dropped since a new shape
// always ends with one.
func convertText(text *slides.TextContent) (string, *domain.TextStyle) {
	if text == nil {
		return "", nil
	}

	var (
		b     strings.Builder
		style *domain.TextStyle
	)
	for _, te := range text.TextElements {
		if te.TextRun == nil {
			continue
		}
		b.WriteString(te.TextRun.Content)
		if style == nil && te.TextRun.Style != nil {
			style = convertStyle(te.TextRun.Style)
		}
	}
	return strings.TrimSuffix(b.String(), "\n"), style
}

func convertStyle(s *slides.TextStyle) *domain.TextStyle {
	out := &domain.TextStyle{
		FontFamily: s.FontFamily,
		Bold:       s.Bold,
		Italic:     s.Italic,
	}
	if s.FontSize != nil {
		out.FontSize = s.FontSize.Magnitude
	}
	if s.ForegroundColor != nil && s.ForegroundColor.OpaqueColor != nil {
		out.Foreground = convertRGB(s.ForegroundColor.OpaqueColor.RgbColor)
	}
	return out
}

func convertSize(s *slides.Size) *domain.Size {
	if s == nil || s.Width == nil || s.Height == nil {
		return nil
	}
	return &domain.Size{
		Width:  s.Width.Magnitude,
		Height: s.Height.Magnitude,
		Unit:   s.Width.Unit,
	}
}

func convertTransform(t *slides.AffineTransform) *domain.Transform {
	if t == nil {
		return nil
	}
	return &domain.Transform{
		ScaleX:     t.ScaleX,
		ScaleY:     t.ScaleY,
		ShearX:     t.ShearX,
		ShearY:     t.ShearY,
		TranslateX: t.TranslateX,
		TranslateY: t.TranslateY,
		Unit:       t.Unit,
	}
}

func pageBackground(page *slides.Page) *domain.RGBColor {
	props := page.PageProperties
	if props == nil || props.PageBackgroundFill == nil || props.PageBackgroundFill.SolidFill == nil {
		return nil
	}
	if c := props.PageBackgroundFill.SolidFill.Color; c != nil {
		return convertRGB(c.RgbColor)
	}
	return nil
}

func convertRGB(c *slides.RgbColor) *domain.RGBColor {
	if c == nil {
		return nil
	}
	return &domain.RGBColor{Red: c.Red, Green: c.Green, Blue: c.Blue}
}
