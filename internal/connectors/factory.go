package connectors

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/adapters/driven/spreadsheet/xlsx"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/connectors/google"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/connectors/google/sheets"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/connectors/google/slides"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// Ensure Factory implements the interfaces.
var (
	_ driven.RowSourceFactory = (*Factory)(nil)
	_ driven.Presentations    = (*Factory)(nil)
)

// Factory opens row sources and presentations.
type Factory struct {
	config driven.ConfigStore
	opts   []option.ClientOption

	sheetsLimiter *google.RateLimiter
	slidesLimiter *google.RateLimiter

	mu        sync.Mutex
	clientOpt []option.ClientOption
	sheetsSvc *sheetsapi.Service
	slidesCli *slides.Client
}

// NewFactory creates a factory. Credentials are read from the
// google.credentials_file setting when a Google service is first needed.
// opts, when given, replace the credentials lookup.
func NewFactory(config driven.ConfigStore, opts ...option.ClientOption) *Factory {
	return &Factory{
		config:        config,
		opts:          opts,
		sheetsLimiter: google.NewRateLimiter(google.ServiceSheets),
		slidesLimiter: google.NewRateLimiter(google.ServiceSlides),
	}
}

// Open returns a RowSource for cfg.
func (f *Factory) Open(ctx context.Context, cfg domain.SourceConfig) (driven.RowSource, error) {
	switch cfg.Kind {
	case domain.SourceSheets:
		svc, err := f.sheets(ctx)
		if err != nil {
			return nil, err
		}
		return sheets.Open(ctx, svc, f.sheetsLimiter, cfg)
	case domain.SourceWorkbook:
		return xlsx.Open(cfg)
	default:
		return nil, fmt.Errorf("%w: source kind %q", domain.ErrUnsupportedType, cfg.Kind)
	}
}

// OpenTemplate reads the first slide of a presentation.
func (f *Factory) OpenTemplate(ctx context.Context, presentationID string) (*domain.TemplateSlide, error) {
	c, err := f.slides(ctx)
	if err != nil {
		return nil, err
	}
	return c.OpenTemplate(ctx, presentationID)
}

// OpenTarget opens a presentation for appending.
func (f *Factory) OpenTarget(ctx context.Context, presentationID string) (driven.SlideSink, error) {
	c, err := f.slides(ctx)
	if err != nil {
		return nil, err
	}
	return c.OpenTarget(ctx, presentationID)
}

func (f *Factory) sheets(ctx context.Context) (*sheetsapi.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sheetsSvc != nil {
		return f.sheetsSvc, nil
	}
	opts, err := f.clientOptions(ctx)
	if err != nil {
		return nil, err
	}
	svc, err := google.NewSheetsService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	f.sheetsSvc = svc
	return svc, nil
}

func (f *Factory) slides(ctx context.Context) (*slides.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.slidesCli != nil {
		return f.slidesCli, nil
	}
	opts, err := f.clientOptions(ctx)
	if err != nil {
		return nil, err
	}
	svc, err := google.NewSlidesService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	f.slidesCli = slides.NewClient(svc, f.slidesLimiter)
	return f.slidesCli, nil
}

// clientOptions loads credentials once. Callers hold f.mu.
func (f *Factory) clientOptions(ctx context.Context) ([]option.ClientOption, error) {
	if len(f.opts) > 0 {
		return f.opts, nil
	}
	if f.clientOpt != nil {
		return f.clientOpt, nil
	}

	path := f.config.GetString(domain.KeyCredentialsFile)
	creds, err := google.LoadCredentials(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("google credentials: %w", err)
	}
	if path == "" {
		logger.Debug("Using application default credentials")
	} else {
		logger.Debug("Using credentials from %s", path)
	}

	f.clientOpt = []option.ClientOption{google.WithCredentials(creds)}
	return f.clientOpt, nil
}
