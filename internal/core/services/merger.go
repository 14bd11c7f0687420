package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
)

// Merger renders submissions onto copies of the template slide.
type Merger struct {
	template     *domain.TemplateSlide
	placeholders domain.Placeholders
}

// NewMerger creates a merger for the given template and placeholder tokens.
func NewMerger(template *domain.TemplateSlide, placeholders domain.Placeholders) *Merger {
	return &Merger{template: template, placeholders: placeholders}
}

// Render returns the template with every placeholder replaced by the
// row's values. The template itself is not modified.
func (m *Merger) Render(row domain.SubmissionRow) domain.MergedSlide {
	replacements := m.placeholders.Replacements(row)

	elements := make([]domain.SlideElement, len(m.template.Elements))
	for i, el := range m.template.Elements {
		elements[i] = el
		if !el.HasText() {
			continue
		}
		elements[i].Text = ReplaceAll(el.Text, replacements)
		if el.Cells != nil {
			elements[i].Cells = make([][]string, len(el.Cells))
			for r, row := range el.Cells {
				elements[i].Cells[r] = make([]string, len(row))
				for c, cell := range row {
					elements[i].Cells[r][c] = ReplaceAll(cell, replacements)
				}
			}
		}
	}

	return domain.MergedSlide{
		Template:     m.template,
		Elements:     elements,
		Replacements: replacements,
		SubmissionID: row.Timestamp,
	}
}

// Merge renders row and appends it to target.
// Failures are wrapped with ErrMerge.
func (m *Merger) Merge(ctx context.Context, target driven.SlideSink, row domain.SubmissionRow) (string, error) {
	slideID, err := target.AppendSlide(ctx, m.Render(row))
	if err != nil {
		return "", fmt.Errorf("%w: append slide for %s: %w", domain.ErrMerge, row.Timestamp, err)
	}
	return slideID, nil
}

// ReplaceAll applies each replacement in order as a literal substitution.
// Placeholders absent from text are ignored.
func ReplaceAll(text string, replacements []domain.Replacement) string {
	for _, r := range replacements {
		if r.Placeholder == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.Placeholder, r.Value)
	}
	return text
}
