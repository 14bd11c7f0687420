package memory

import (
	"context"
	"sync"
	"time"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
)

// Ensure RowSourceFactory and rowSource implement the interfaces.
var (
	_ driven.RowSourceFactory = (*RowSourceFactory)(nil)
	_ driven.RowSource        = (*rowSource)(nil)
)

// RowSourceFactory serves fixed rows per sheet name.
type RowSourceFactory struct {
	mu       sync.Mutex
	sheets   map[string][]domain.RawRow
	location *time.Location
	openErr  error
	readErr  error
	opened   []domain.SourceConfig
}

// NewRowSourceFactory creates a factory with no sheets.
func NewRowSourceFactory() *RowSourceFactory {
	return &RowSourceFactory{sheets: make(map[string][]domain.RawRow)}
}

// SetRows replaces the rows of sheet. Rows are data rows: HeaderRows is
// not applied by sources from this factory.
func (f *RowSourceFactory) SetRows(sheet string, rows ...domain.RawRow) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sheets[sheet] = rows
}

// AppendRows adds rows to the end of sheet.
func (f *RowSourceFactory) AppendRows(sheet string, rows ...domain.RawRow) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sheets[sheet] = append(f.sheets[sheet], rows...)
}

// SetLocation sets the zone reported by opened sources.
func (f *RowSourceFactory) SetLocation(loc *time.Location) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.location = loc
}

// FailOpen makes Open return err. Pass nil to reset.
func (f *RowSourceFactory) FailOpen(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.openErr = err
}

// FailRead makes Rows return err. Pass nil to reset.
func (f *RowSourceFactory) FailRead(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErr = err
}

// Opened returns the configurations passed to Open, in order.
func (f *RowSourceFactory) Opened() []domain.SourceConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.SourceConfig, len(f.opened))
	copy(out, f.opened)
	return out
}

// Open returns a source over the rows of cfg.Sheet.
func (f *RowSourceFactory) Open(_ context.Context, cfg domain.SourceConfig) (driven.RowSource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = append(f.opened, cfg)
	if f.openErr != nil {
		return nil, f.openErr
	}
	rows := make([]domain.RawRow, len(f.sheets[cfg.Sheet]))
	copy(rows, f.sheets[cfg.Sheet])
	return &rowSource{rows: rows, location: f.location, readErr: f.readErr}, nil
}

type rowSource struct {
	rows     []domain.RawRow
	location *time.Location
	readErr  error
}

func (s *rowSource) Rows(_ context.Context) ([]domain.RawRow, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.rows, nil
}

func (s *rowSource) Location() *time.Location { return s.location }

func (s *rowSource) Close() error { return nil }
