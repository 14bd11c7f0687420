package slides

import (
	"fmt"
	"strings"

	"google.golang.org/api/slides/v1"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// defaultShapeType is used for shapes whose type was not reported.
const defaultShapeType = "TEXT_BOX"

// DuplicateRequests copies the template slide within its own presentation,
// replaces placeholders on the copy only, and moves the copy to position
// end (the slide count before duplication).
func DuplicateRequests(slide domain.MergedSlide, newPageID string, end int64) []*slides.Request {
	reqs := []*slides.Request{{
		DuplicateObject: &slides.DuplicateObjectRequest{
			ObjectId:  slide.Template.ObjectID,
			ObjectIds: map[string]string{slide.Template.ObjectID: newPageID},
		},
	}}

	for _, r := range slide.Replacements {
		reqs = append(reqs, &slides.Request{
			ReplaceAllText: &slides.ReplaceAllTextRequest{
				ContainsText: &slides.SubstringMatchCriteria{
					Text:      r.Placeholder,
					MatchCase: true,
				},
				ReplaceText:     r.Value,
				PageObjectIds:   []string{newPageID},
				ForceSendFields: []string{"ReplaceText"},
			},
		})
	}

	// The duplicate lands right after the template; one more slide now exists.
	reqs = append(reqs, &slides.Request{
		UpdateSlidesPosition: &slides.UpdateSlidesPositionRequest{
			SlideObjectIds:  []string{newPageID},
			InsertionIndex:  end + 1,
			ForceSendFields: []string{"InsertionIndex"},
		},
	})
	return reqs
}

// RebuildRequests creates a blank slide at position end and recreates the
// merged slide's elements on it. newID supplies object IDs for elements.
// Elements that cannot be recreated are skipped unless they carry text,
// in which case ErrUnsupportedType is returned.
func RebuildRequests(slide domain.MergedSlide, newPageID string, end int64, newID func() string) ([]*slides.Request, error) {
	reqs := []*slides.Request{{
		CreateSlide: &slides.CreateSlideRequest{
			ObjectId:             newPageID,
			InsertionIndex:       end,
			SlideLayoutReference: &slides.LayoutReference{PredefinedLayout: "BLANK"},
			ForceSendFields:      []string{"InsertionIndex"},
		},
	}}

	if bg := slide.Template.Background; bg != nil {
		reqs = append(reqs, &slides.Request{
			UpdatePageProperties: &slides.UpdatePagePropertiesRequest{
				ObjectId: newPageID,
				PageProperties: &slides.PageProperties{
					PageBackgroundFill: &slides.PageBackgroundFill{
						SolidFill: &slides.SolidFill{Color: opaque(bg)},
					},
				},
				Fields: "pageBackgroundFill.solidFill.color",
			},
		})
	}

	for _, el := range slide.Elements {
		switch el.Kind {
		case domain.ElementShape:
			reqs = append(reqs, shapeRequests(el, newPageID, newID())...)
		case domain.ElementImage:
			if el.ImageURL == "" {
				continue
			}
			reqs = append(reqs, &slides.Request{
				CreateImage: &slides.CreateImageRequest{
					ObjectId:          newID(),
					Url:               el.ImageURL,
					ElementProperties: elementProperties(el, newPageID),
				},
			})
		case domain.ElementTable:
			reqs = append(reqs, tableRequests(el, newPageID, newID())...)
		default:
			if el.HasText() {
				return nil, fmt.Errorf("%w: element %s has text but cannot be copied to another presentation",
					domain.ErrUnsupportedType, el.ObjectID)
			}
			logger.Debug("Skipping element %s: no text to copy", el.ObjectID)
		}
	}
	return reqs, nil
}

func tableRequests(el domain.SlideElement, pageID, id string) []*slides.Request {
	reqs := []*slides.Request{{
		CreateTable: &slides.CreateTableRequest{
			ObjectId:          id,
			Rows:              int64(el.Rows),
			Columns:           int64(el.Columns),
			ElementProperties: elementProperties(el, pageID),
		},
	}}
	for r, row := range el.Cells {
		for c, text := range row {
			if text == "" {
				continue
			}
			reqs = append(reqs, &slides.Request{
				InsertText: &slides.InsertTextRequest{
					ObjectId: id,
					CellLocation: &slides.TableCellLocation{
						RowIndex:        int64(r),
						ColumnIndex:     int64(c),
						ForceSendFields: []string{"RowIndex", "ColumnIndex"},
					},
					Text: text,
				},
			})
		}
	}
	return reqs
}

func shapeRequests(el domain.SlideElement, pageID, id string) []*slides.Request {
	shapeType := el.ShapeType
	if shapeType == "" {
		shapeType = defaultShapeType
	}

	reqs := []*slides.Request{{
		CreateShape: &slides.CreateShapeRequest{
			ObjectId:          id,
			ShapeType:         shapeType,
			ElementProperties: elementProperties(el, pageID),
		},
	}}
	if el.Text == "" {
		return reqs
	}

	reqs = append(reqs, &slides.Request{
		InsertText: &slides.InsertTextRequest{
			ObjectId:       id,
			Text:           el.Text,
			InsertionIndex: 0,
		},
	})

	if style, fields := textStyle(el.Style); fields != "" {
		reqs = append(reqs, &slides.Request{
			UpdateTextStyle: &slides.UpdateTextStyleRequest{
				ObjectId:  id,
				TextRange: &slides.Range{Type: "ALL"},
				Style:     style,
				Fields:    fields,
			},
		})
	}
	return reqs
}

// textStyle converts s to an API style and the matching field mask.
func textStyle(s *domain.TextStyle) (*slides.TextStyle, string) {
	if s == nil {
		return nil, ""
	}

	style := &slides.TextStyle{
		Bold:            s.Bold,
		Italic:          s.Italic,
		ForceSendFields: []string{"Bold", "Italic"},
	}
	fields := []string{"bold", "italic"}

	if s.FontFamily != "" {
		style.FontFamily = s.FontFamily
		fields = append(fields, "fontFamily")
	}
	if s.FontSize > 0 {
		style.FontSize = &slides.Dimension{Magnitude: s.FontSize, Unit: "PT"}
		fields = append(fields, "fontSize")
	}
	if s.Foreground != nil {
		style.ForegroundColor = &slides.OptionalColor{OpaqueColor: opaque(s.Foreground)}
		fields = append(fields, "foregroundColor")
	}
	return style, strings.Join(fields, ",")
}

func elementProperties(el domain.SlideElement, pageID string) *slides.PageElementProperties {
	props := &slides.PageElementProperties{PageObjectId: pageID}
	if el.Size != nil {
		props.Size = &slides.Size{
			Width:  &slides.Dimension{Magnitude: el.Size.Width, Unit: el.Size.Unit},
			Height: &slides.Dimension{Magnitude: el.Size.Height, Unit: el.Size.Unit},
		}
	}
	if t := el.Transform; t != nil {
		props.Transform = &slides.AffineTransform{
			ScaleX:          t.ScaleX,
			ScaleY:          t.ScaleY,
			ShearX:          t.ShearX,
			ShearY:          t.ShearY,
			TranslateX:      t.TranslateX,
			TranslateY:      t.TranslateY,
			Unit:            t.Unit,
			ForceSendFields: []string{"ScaleX", "ScaleY", "ShearX", "ShearY", "TranslateX", "TranslateY"},
		}
	}
	return props
}

func opaque(c *domain.RGBColor) *slides.OpaqueColor {
	return &slides.OpaqueColor{
		RgbColor: &slides.RgbColor{
			Red:             c.Red,
			Green:           c.Green,
			Blue:            c.Blue,
			ForceSendFields: []string{"Red", "Green", "Blue"},
		},
	}
}
