package slides

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/slides/v1"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/services"
)

func mergedSlide(presentationID string) domain.MergedSlide {
	tmpl := PageToTemplate(presentationID, samplePage())
	elements := make([]domain.SlideElement, len(tmpl.Elements))
	copy(elements, tmpl.Elements)
	elements[0].Text = "Thank you, Jane D.!"
	elements[3].Cells = [][]string{{"From", "x"}, {"", ""}}

	return domain.MergedSlide{
		Template: tmpl,
		Elements: elements,
		Replacements: []domain.Replacement{
			{Placeholder: "{{teacherName}}", Value: "Jane D."},
			{Placeholder: "{{praise}}", Value: "Great job!"},
			{Placeholder: "{{fromName}}", Value: "x"},
		},
		SubmissionID: "2024-01-01T10:00:00Z",
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("el_%03d", n)
	}
}

func TestDuplicateRequests(t *testing.T) {
	reqs := DuplicateRequests(mergedSlide("deck-1"), "new_page", 4)

	require.Len(t, reqs, 5)

	dup := reqs[0].DuplicateObject
	require.NotNil(t, dup)
	assert.Equal(t, "p1", dup.ObjectId)
	assert.Equal(t, map[string]string{"p1": "new_page"}, dup.ObjectIds)

	for i, want := range []string{"{{teacherName}}", "{{praise}}", "{{fromName}}"} {
		rep := reqs[1+i].ReplaceAllText
		require.NotNil(t, rep)
		assert.Equal(t, want, rep.ContainsText.Text)
		assert.True(t, rep.ContainsText.MatchCase)
		assert.Equal(t, []string{"new_page"}, rep.PageObjectIds, "only the copy is touched")
	}
	assert.Equal(t, "Jane D.", reqs[1].ReplaceAllText.ReplaceText)

	move := reqs[4].UpdateSlidesPosition
	require.NotNil(t, move)
	assert.Equal(t, []string{"new_page"}, move.SlideObjectIds)
	assert.Equal(t, int64(5), move.InsertionIndex)
}

func TestRebuildRequests(t *testing.T) {
	reqs, err := RebuildRequests(mergedSlide("template-deck"), "new_page", 2, sequentialIDs())
	require.NoError(t, err)

	// create slide, background, shape + text + style, two images, table + two cells
	require.Len(t, reqs, 10)

	create := reqs[0].CreateSlide
	require.NotNil(t, create)
	assert.Equal(t, "new_page", create.ObjectId)
	assert.Equal(t, int64(2), create.InsertionIndex)
	assert.Equal(t, "BLANK", create.SlideLayoutReference.PredefinedLayout)

	bg := reqs[1].UpdatePageProperties
	require.NotNil(t, bg)
	assert.Equal(t, "new_page", bg.ObjectId)
	assert.Equal(t, 0.8, bg.PageProperties.PageBackgroundFill.SolidFill.Color.RgbColor.Green)

	shape := reqs[2].CreateShape
	require.NotNil(t, shape)
	assert.Equal(t, "el_001", shape.ObjectId)
	assert.Equal(t, "TEXT_BOX", shape.ShapeType)
	assert.Equal(t, "new_page", shape.ElementProperties.PageObjectId)
	assert.Equal(t, 3000000.0, shape.ElementProperties.Size.Width.Magnitude)
	assert.Equal(t, 100.0, shape.ElementProperties.Transform.TranslateX)

	text := reqs[3].InsertText
	require.NotNil(t, text)
	assert.Equal(t, "el_001", text.ObjectId)
	assert.Equal(t, "Thank you, Jane D.!", text.Text)

	style := reqs[4].UpdateTextStyle
	require.NotNil(t, style)
	assert.Equal(t, "ALL", style.TextRange.Type)
	assert.Equal(t, "bold,italic,fontFamily,fontSize,foregroundColor", style.Fields)
	assert.Equal(t, "Lobster", style.Style.FontFamily)

	assert.Equal(t, "https://example.org/logo.png", reqs[5].CreateImage.Url)
	assert.Equal(t, "el_002", reqs[5].CreateImage.ObjectId)
	assert.Equal(t, "https://lh3.example/pic", reqs[6].CreateImage.Url)

	table := reqs[7].CreateTable
	require.NotNil(t, table)
	assert.Equal(t, "el_004", table.ObjectId)
	assert.Equal(t, int64(2), table.Rows)
	assert.Equal(t, int64(2), table.Columns)
	assert.Equal(t, "new_page", table.ElementProperties.PageObjectId)

	for i, want := range []struct {
		col  int64
		text string
	}{{0, "From"}, {1, "x"}} {
		cell := reqs[8+i].InsertText
		require.NotNil(t, cell)
		assert.Equal(t, "el_004", cell.ObjectId)
		assert.Equal(t, int64(0), cell.CellLocation.RowIndex)
		assert.Equal(t, want.col, cell.CellLocation.ColumnIndex)
		assert.Equal(t, want.text, cell.Text)
	}
}

func TestRebuildRequests_GroupedPlaceholder(t *testing.T) {
	page := &slides.Page{
		ObjectId: "p1",
		PageElements: []*slides.PageElement{{
			ObjectId:  "card",
			Transform: &slides.AffineTransform{ScaleX: 1, ScaleY: 1, TranslateX: 500, Unit: "EMU"},
			ElementGroup: &slides.Group{Children: []*slides.PageElement{
				{ObjectId: "frame", Shape: &slides.Shape{ShapeType: "RECTANGLE"}},
				{ObjectId: "body", Shape: &slides.Shape{ShapeType: "TEXT_BOX", Text: textContent("{{praise}}\n")}},
			}},
		}},
	}
	merger := services.NewMerger(PageToTemplate("template-deck", page), domain.DefaultPlaceholders())
	slide := merger.Render(domain.SubmissionRow{Timestamp: "t", TeacherName: "Ana", Praise: "Wonderful class"})

	reqs, err := RebuildRequests(slide, "new_page", 0, sequentialIDs())
	require.NoError(t, err)

	require.Len(t, reqs, 4)
	assert.Equal(t, "RECTANGLE", reqs[1].CreateShape.ShapeType)
	assert.Equal(t, 500.0, reqs[1].CreateShape.ElementProperties.Transform.TranslateX)
	assert.Equal(t, "el_002", reqs[2].CreateShape.ObjectId)
	require.NotNil(t, reqs[3].InsertText)
	assert.Equal(t, "Wonderful class", reqs[3].InsertText.Text)
}

func TestRebuildRequests_Unsupported(t *testing.T) {
	tests := []struct {
		name    string
		element domain.SlideElement
		wantErr bool
		wantLen int
	}{
		{
			name:    "word art with text",
			element: domain.SlideElement{ObjectID: "art", Kind: domain.ElementOther, Text: "Thanks Ana"},
			wantErr: true,
		},
		{
			name:    "line without text",
			element: domain.SlideElement{ObjectID: "line", Kind: domain.ElementOther},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slide := domain.MergedSlide{
				Template: &domain.TemplateSlide{PresentationID: "t", ObjectID: "p"},
				Elements: []domain.SlideElement{tt.element},
			}

			reqs, err := RebuildRequests(slide, "new_page", 0, sequentialIDs())
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnsupportedType)
				assert.Contains(t, err.Error(), tt.element.ObjectID)
				return
			}
			require.NoError(t, err)
			assert.Len(t, reqs, tt.wantLen)
		})
	}
}

func TestRebuildRequests_PlainShapes(t *testing.T) {
	slide := domain.MergedSlide{
		Template: &domain.TemplateSlide{PresentationID: "t", ObjectID: "p"},
		Elements: []domain.SlideElement{
			{ObjectID: "empty", Kind: domain.ElementShape, ShapeType: "RECTANGLE"},
			{ObjectID: "plain", Kind: domain.ElementShape, Text: "hello"},
			{ObjectID: "broken", Kind: domain.ElementImage},
		},
	}

	reqs, err := RebuildRequests(slide, "new_page", 0, sequentialIDs())
	require.NoError(t, err)

	require.Len(t, reqs, 4)
	assert.NotNil(t, reqs[0].CreateSlide)
	assert.Equal(t, "RECTANGLE", reqs[1].CreateShape.ShapeType)
	assert.Equal(t, defaultShapeType, reqs[2].CreateShape.ShapeType)
	assert.Equal(t, "hello", reqs[3].InsertText.Text)
}

func TestTextStyle(t *testing.T) {
	style, fields := textStyle(nil)
	assert.Nil(t, style)
	assert.Empty(t, fields)

	style, fields = textStyle(&domain.TextStyle{Italic: true})
	require.NotNil(t, style)
	assert.True(t, style.Italic)
	assert.Equal(t, "bold,italic", fields)
}

func TestNewObjectID(t *testing.T) {
	id := NewObjectID()

	assert.Regexp(t, `^praise_[0-9a-f]{32}$`, id)
	assert.NotEqual(t, id, NewObjectID())
}
