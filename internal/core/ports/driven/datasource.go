package driven

import (
	"context"
	"time"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
)

// RowSource reads raw rows of form submissions.
type RowSource interface {
	// Rows returns every data row in sheet order, header rows excluded.
	Rows(ctx context.Context) ([]domain.RawRow, error)

	// Location is the time zone for timestamps without an explicit offset.
	// Returns nil if the source does not know its zone.
	Location() *time.Location

	// Close releases any resources held by the source.
	Close() error
}

// RowSourceFactory opens row sources from configuration.
type RowSourceFactory interface {
	// Open returns a RowSource for cfg.
	// Returns ErrUnsupportedType if cfg.Kind is unknown.
	Open(ctx context.Context, cfg domain.SourceConfig) (RowSource, error)
}
