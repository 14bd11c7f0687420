// Package sheets reads form responses from a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/connectors/google"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.RowSource = (*Source)(nil)

// Value rendering used for every read. Dates come back as serial numbers
// so they do not depend on the spreadsheet's display locale.
const (
	valueRender    = "UNFORMATTED_VALUE"
	dateTimeRender = "SERIAL_NUMBER"
)

// Source is one sheet of a spreadsheet.
type Source struct {
	svc      *sheets.Service
	limiter  *google.RateLimiter
	cfg      domain.SourceConfig
	location *time.Location
}

// Open checks that the spreadsheet and sheet exist and reads the
// spreadsheet's time zone.
func Open(ctx context.Context, svc *sheets.Service, limiter *google.RateLimiter, cfg domain.SourceConfig) (*Source, error) {
	if cfg.SpreadsheetID == "" {
		return nil, domain.MissingKey(domain.KeySpreadsheetID)
	}

	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}
	ss, err := svc.Spreadsheets.Get(cfg.SpreadsheetID).
		Fields("properties(timeZone),sheets(properties(title))").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet %s: %w", cfg.SpreadsheetID, wrap(limiter, err))
	}

	if !hasSheet(ss, cfg.Sheet) {
		return nil, fmt.Errorf("sheet %q in spreadsheet %s: %w", cfg.Sheet, cfg.SpreadsheetID, domain.ErrNotFound)
	}

	return &Source{
		svc:      svc,
		limiter:  limiter,
		cfg:      cfg,
		location: spreadsheetLocation(ss),
	}, nil
}

// Rows reads the configured range, header rows dropped.
// Trailing empty cells are omitted by the API.
func (s *Source) Rows(ctx context.Context) ([]domain.RawRow, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.cfg.SpreadsheetID, A1Range(s.cfg.Sheet, s.cfg.Range)).
		ValueRenderOption(valueRender).
		DateTimeRenderOption(dateTimeRender).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", A1Range(s.cfg.Sheet, s.cfg.Range), wrap(s.limiter, err))
	}

	values := resp.Values
	if s.cfg.HeaderRows >= len(values) {
		return nil, nil
	}
	values = values[s.cfg.HeaderRows:]

	rows := make([]domain.RawRow, len(values))
	for i, v := range values {
		rows[i] = domain.RawRow(v)
	}
	return rows, nil
}

// Location returns the spreadsheet's time zone, nil if unknown.
func (s *Source) Location() *time.Location { return s.location }

// Close is a no-op; the service is shared.
func (s *Source) Close() error { return nil }

// A1Range builds a range like 'Form Responses 1'!A:Z.
// The sheet name is always quoted; embedded quotes are doubled.
func A1Range(sheet, cols string) string {
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if cols == "" {
		return quoted
	}
	return quoted + "!" + cols
}

func hasSheet(ss *sheets.Spreadsheet, title string) bool {
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return true
		}
	}
	return false
}

func spreadsheetLocation(ss *sheets.Spreadsheet) *time.Location {
	if ss.Properties == nil || ss.Properties.TimeZone == "" {
		return nil
	}
	loc, err := time.LoadLocation(ss.Properties.TimeZone)
	if err != nil {
		logger.Warn("Unknown spreadsheet time zone %q, using UTC", ss.Properties.TimeZone)
		return nil
	}
	return loc
}

// wrap maps API errors and starts a backoff on 429.
func wrap(limiter *google.RateLimiter, err error) error {
	if google.IsRateLimited(err) {
		limiter.RecordRateLimitError(0)
	}
	return google.WrapError(err)
}
