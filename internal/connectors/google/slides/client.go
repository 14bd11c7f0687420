package slides

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/api/slides/v1"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/connectors/google"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
)

// Ensure Client and Deck implement the interfaces.
var (
	_ driven.Presentations = (*Client)(nil)
	_ driven.SlideSink     = (*Deck)(nil)
)

// Client opens presentations through the Slides API.
type Client struct {
	svc     *slides.Service
	limiter *google.RateLimiter
	newID   func() string
}

// NewClient creates a client. limiter may be shared with other clients of
// the same service.
func NewClient(svc *slides.Service, limiter *google.RateLimiter) *Client {
	return &Client{svc: svc, limiter: limiter, newID: NewObjectID}
}

// NewObjectID returns a fresh page or element ID. IDs must start with a
// letter, digit or underscore and be 5 to 50 characters long.
func NewObjectID() string {
	return "praise_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// OpenTemplate returns the first slide of the presentation.
func (c *Client) OpenTemplate(ctx context.Context, presentationID string) (*domain.TemplateSlide, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	pres, err := c.svc.Presentations.Get(presentationID).Context(ctx).Do()
	if err != nil {
		return nil, c.wrap(err)
	}
	if len(pres.Slides) == 0 {
		return nil, fmt.Errorf("presentation %s has no slides: %w", presentationID, domain.ErrNotFound)
	}

	return PageToTemplate(presentationID, pres.Slides[0]), nil
}

// OpenTarget returns a sink appending to the presentation.
func (c *Client) OpenTarget(ctx context.Context, presentationID string) (driven.SlideSink, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	pres, err := c.svc.Presentations.Get(presentationID).
		Fields("presentationId,slides(objectId)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, c.wrap(err)
	}

	return &Deck{client: c, id: presentationID, count: len(pres.Slides)}, nil
}

func (c *Client) wrap(err error) error {
	if google.IsRateLimited(err) {
		c.limiter.RecordRateLimitError(0)
	}
	return google.WrapError(err)
}

// Deck appends slides to one presentation. Each slide is one batch update,
// so a failed append leaves nothing half-built.
type Deck struct {
	client *Client
	id     string

	mu    sync.Mutex
	count int
}

// AppendSlide adds slide at the end of the deck and returns its page ID.
func (d *Deck) AppendSlide(ctx context.Context, slide domain.MergedSlide) (string, error) {
	if slide.Template == nil {
		return "", fmt.Errorf("merged slide for %s has no template: %w", slide.SubmissionID, domain.ErrInvalidInput)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	pageID := d.client.newID()
	end := int64(d.count)

	var reqs []*slides.Request
	if slide.Template.PresentationID == d.id {
		reqs = DuplicateRequests(slide, pageID, end)
	} else {
		var err error
		if reqs, err = RebuildRequests(slide, pageID, end, d.client.newID); err != nil {
			return "", err
		}
	}

	if err := d.client.limiter.Wait(ctx); err != nil {
		return "", err
	}
	_, err := d.client.svc.Presentations.BatchUpdate(d.id, &slides.BatchUpdatePresentationRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return "", d.client.wrap(err)
	}

	d.count++
	return pageID, nil
}

// SlideCount returns the number of slides, including appended ones.
func (d *Deck) SlideCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count
}
