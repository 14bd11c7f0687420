package slides

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/slides/v1"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
)

func samplePage() *slides.Page {
	return &slides.Page{
		ObjectId: "p1",
		PageProperties: &slides.PageProperties{
			PageBackgroundFill: &slides.PageBackgroundFill{
				SolidFill: &slides.SolidFill{
					Color: &slides.OpaqueColor{RgbColor: &slides.RgbColor{Red: 1, Green: 0.8}},
				},
			},
		},
		PageElements: []*slides.PageElement{
			{
				ObjectId: "title",
				Size: &slides.Size{
					Width:  &slides.Dimension{Magnitude: 3000000, Unit: "EMU"},
					Height: &slides.Dimension{Magnitude: 500000, Unit: "EMU"},
				},
				Transform: &slides.AffineTransform{ScaleX: 1, ScaleY: 1, TranslateX: 100, TranslateY: 200, Unit: "EMU"},
				Shape: &slides.Shape{
					ShapeType: "TEXT_BOX",
					Text: &slides.TextContent{TextElements: []*slides.TextElement{
						{ParagraphMarker: &slides.ParagraphMarker{}},
						{TextRun: &slides.TextRun{
							Content: "Thank you, ",
							Style: &slides.TextStyle{
								FontFamily: "Lobster",
								FontSize:   &slides.Dimension{Magnitude: 32, Unit: "PT"},
								Bold:       true,
								ForegroundColor: &slides.OptionalColor{
									OpaqueColor: &slides.OpaqueColor{RgbColor: &slides.RgbColor{Blue: 1}},
								},
							},
						}},
						{TextRun: &slides.TextRun{Content: "{{teacherName}}!\n"}},
					}},
				},
			},
			{
				ObjectId: "logo",
				Image:    &slides.Image{ContentUrl: "https://lh3.example/logo", SourceUrl: "https://example.org/logo.png"},
			},
			{
				ObjectId: "pic",
				Image:    &slides.Image{ContentUrl: "https://lh3.example/pic"},
			},
			{
				ObjectId: "table",
				Table: &slides.Table{
					Rows:    2,
					Columns: 2,
					TableRows: []*slides.TableRow{
						{TableCells: []*slides.TableCell{
							{Location: &slides.TableCellLocation{}, Text: textContent("From\n")},
							{Location: &slides.TableCellLocation{ColumnIndex: 1}, Text: textContent("{{fromName}}\n")},
						}},
						{TableCells: []*slides.TableCell{
							{Location: &slides.TableCellLocation{RowIndex: 1}},
							{Location: &slides.TableCellLocation{RowIndex: 1, ColumnIndex: 1}},
						}},
					},
				},
			},
		},
	}
}

func textContent(s string) *slides.TextContent {
	return &slides.TextContent{TextElements: []*slides.TextElement{
		{TextRun: &slides.TextRun{Content: s}},
	}}
}

func TestPageToTemplate(t *testing.T) {
	got := PageToTemplate("deck-1", samplePage())

	want := &domain.TemplateSlide{
		PresentationID: "deck-1",
		ObjectID:       "p1",
		Background:     &domain.RGBColor{Red: 1, Green: 0.8},
		Elements: []domain.SlideElement{
			{
				ObjectID:  "title",
				Kind:      domain.ElementShape,
				ShapeType: "TEXT_BOX",
				Text:      "Thank you, {{teacherName}}!",
				Style: &domain.TextStyle{
					FontFamily: "Lobster",
					FontSize:   32,
					Bold:       true,
					Foreground: &domain.RGBColor{Blue: 1},
				},
				Size:      &domain.Size{Width: 3000000, Height: 500000, Unit: "EMU"},
				Transform: &domain.Transform{ScaleX: 1, ScaleY: 1, TranslateX: 100, TranslateY: 200, Unit: "EMU"},
			},
			{ObjectID: "logo", Kind: domain.ElementImage, ImageURL: "https://example.org/logo.png"},
			{ObjectID: "pic", Kind: domain.ElementImage, ImageURL: "https://lh3.example/pic"},
			{
				ObjectID: "table",
				Kind:     domain.ElementTable,
				Rows:     2,
				Columns:  2,
				Cells:    [][]string{{"From", "{{fromName}}"}, {"", ""}},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PageToTemplate() mismatch (-want +got):\n%s", diff)
	}
}

func TestPageToTemplate_Empty(t *testing.T) {
	got := PageToTemplate("deck-1", &slides.Page{ObjectId: "p1"})

	want := &domain.TemplateSlide{PresentationID: "deck-1", ObjectID: "p1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PageToTemplate() mismatch (-want +got):\n%s", diff)
	}
}

func TestPageToTemplate_Groups(t *testing.T) {
	page := &slides.Page{
		ObjectId: "p1",
		PageElements: []*slides.PageElement{{
			ObjectId:  "outer",
			Transform: &slides.AffineTransform{ScaleX: 2, ScaleY: 2, TranslateX: 1000, TranslateY: 2000, Unit: "EMU"},
			ElementGroup: &slides.Group{Children: []*slides.PageElement{
				{
					ObjectId:  "body",
					Transform: &slides.AffineTransform{ScaleX: 1, ScaleY: 1, TranslateX: 10, TranslateY: 20, Unit: "EMU"},
					Shape:     &slides.Shape{ShapeType: "TEXT_BOX", Text: textContent("{{praise}}\n")},
				},
				{
					ObjectId: "inner",
					ElementGroup: &slides.Group{Children: []*slides.PageElement{
						{ObjectId: "art", WordArt: &slides.WordArt{RenderedText: "{{fromName}}"}},
					}},
				},
			}},
		}},
	}

	got := PageToTemplate("deck-1", page)

	want := []domain.SlideElement{
		{
			ObjectID:  "body",
			Kind:      domain.ElementShape,
			ShapeType: "TEXT_BOX",
			Text:      "{{praise}}",
			Transform: &domain.Transform{ScaleX: 2, ScaleY: 2, TranslateX: 1020, TranslateY: 2040, Unit: "EMU"},
		},
		{
			ObjectID:  "art",
			Kind:      domain.ElementOther,
			Text:      "{{fromName}}",
			Transform: &domain.Transform{ScaleX: 2, ScaleY: 2, TranslateX: 1000, TranslateY: 2000, Unit: "EMU"},
		},
	}
	if diff := cmp.Diff(want, got.Elements); diff != "" {
		t.Errorf("PageToTemplate() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "{{praise}}\n{{fromName}}", got.Text())
}

func TestComposeTransform(t *testing.T) {
	rotate := &slides.AffineTransform{ScaleX: 0, ShearX: -1, ShearY: 1, ScaleY: 0, TranslateX: 5, Unit: "EMU"}
	shift := &slides.AffineTransform{ScaleX: 1, ScaleY: 1, TranslateX: 10, TranslateY: 0}

	tests := []struct {
		name          string
		parent, child *slides.AffineTransform
		want          *slides.AffineTransform
	}{
		{name: "no parent", child: shift, want: shift},
		{name: "no child", parent: rotate, want: rotate},
		{
			name:   "rotated group",
			parent: rotate,
			child:  shift,
			want:   &slides.AffineTransform{ScaleX: 0, ShearX: -1, ShearY: 1, ScaleY: 0, TranslateX: 5, TranslateY: 10, Unit: "EMU"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, composeTransform(tt.parent, tt.child))
		})
	}
}
