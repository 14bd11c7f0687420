package driven

import (
	"context"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
)

// Presentations opens slide decks.
type Presentations interface {
	// OpenTemplate reads the first slide of a presentation as the template.
	OpenTemplate(ctx context.Context, presentationID string) (*domain.TemplateSlide, error)

	// OpenTarget opens a presentation for appending slides.
	OpenTarget(ctx context.Context, presentationID string) (SlideSink, error)
}

// SlideSink appends merged slides to a presentation, preserving order.
type SlideSink interface {
	// AppendSlide adds slide at the end of the presentation and
	// returns the new slide's object ID.
	AppendSlide(ctx context.Context, slide domain.MergedSlide) (string, error)

	// SlideCount returns the number of slides currently in the deck.
	SlideCount() int
}
