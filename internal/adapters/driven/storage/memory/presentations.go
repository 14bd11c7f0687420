package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
)

// Ensure Presentations and Deck implement the interfaces.
var (
	_ driven.Presentations = (*Presentations)(nil)
	_ driven.SlideSink     = (*Deck)(nil)
)

// Presentations is an in-memory implementation of driven.Presentations.
// Presentations that were never added are reported as ErrNotFound.
type Presentations struct {
	mu        sync.Mutex
	templates map[string]*domain.TemplateSlide
	decks     map[string]*Deck
	opens     int
}

// NewPresentations creates an empty presentation set.
func NewPresentations() *Presentations {
	return &Presentations{
		templates: make(map[string]*domain.TemplateSlide),
		decks:     make(map[string]*Deck),
	}
}

// AddTemplate registers tmpl under its PresentationID.
func (p *Presentations) AddTemplate(tmpl *domain.TemplateSlide) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.templates[tmpl.PresentationID] = tmpl
}

// AddDeck registers an empty target deck and returns it.
func (p *Presentations) AddDeck(id string) *Deck {
	p.mu.Lock()
	defer p.mu.Unlock()
	d := &Deck{ID: id, failAt: -1}
	p.decks[id] = d
	return d
}

// Opens returns how many OpenTemplate and OpenTarget calls were made.
func (p *Presentations) Opens() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opens
}

// OpenTemplate returns the registered template slide.
func (p *Presentations) OpenTemplate(_ context.Context, presentationID string) (*domain.TemplateSlide, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opens++
	tmpl, ok := p.templates[presentationID]
	if !ok {
		return nil, fmt.Errorf("presentation %s: %w", presentationID, domain.ErrNotFound)
	}
	return tmpl, nil
}

// OpenTarget returns the registered deck.
func (p *Presentations) OpenTarget(_ context.Context, presentationID string) (driven.SlideSink, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opens++
	d, ok := p.decks[presentationID]
	if !ok {
		return nil, fmt.Errorf("presentation %s: %w", presentationID, domain.ErrNotFound)
	}
	return d, nil
}

// Deck is an in-memory append-only slide deck.
type Deck struct {
	ID string

	mu     sync.Mutex
	slides []domain.MergedSlide
	failAt int
	err    error
}

// FailAt makes the n-th append (0-based, counted from now) return err.
func (d *Deck) FailAt(n int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failAt = len(d.slides) + n
	d.err = err
}

// AppendSlide records slide at the end of the deck.
func (d *Deck) AppendSlide(_ context.Context, slide domain.MergedSlide) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failAt >= 0 && len(d.slides) == d.failAt {
		return "", d.err
	}
	d.slides = append(d.slides, slide)
	return fmt.Sprintf("%s_slide_%d", d.ID, len(d.slides)), nil
}

// SlideCount returns the number of appended slides.
func (d *Deck) SlideCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.slides)
}

// Slides returns a copy of the appended slides in order.
func (d *Deck) Slides() []domain.MergedSlide {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.MergedSlide, len(d.slides))
	copy(out, d.slides)
	return out
}
