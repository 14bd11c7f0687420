package services

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// serialEpoch is day zero of spreadsheet serial dates (Lotus 1-2-3 leap bug included).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// minSerial is 2000-01-01. Smaller numbers are not submission times.
const minSerial = 36526

// timestampLayouts are the display formats Forms and Sheets write into the
// timestamp column, tried in order after RFC 3339.
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"02.01.2006 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// Extractor turns raw sheet rows into new SubmissionRows.
type Extractor struct {
	layout   domain.FormLayout
	location *time.Location
}

// NewExtractor creates an extractor for the given column layout.
// Timestamps without a zone are read in loc; nil means UTC.
func NewExtractor(layout domain.FormLayout, loc *time.Location) *Extractor {
	if loc == nil {
		loc = time.UTC
	}
	return &Extractor{layout: layout, location: loc}
}

// Extract returns the rows that are complete and not yet in processed,
// in source order. A timestamp seen earlier in the same batch counts as
// processed.
func (e *Extractor) Extract(rows []domain.RawRow, processed *domain.ProcessedSet) []domain.SubmissionRow {
	seen := domain.NewProcessedSet()
	var out []domain.SubmissionRow

	for i, raw := range rows {
		row, ok := e.extractRow(raw)
		if !ok {
			logger.Debug("row %d: skipped (incomplete)", i+1)
			continue
		}
		if processed.Contains(row.Timestamp) || !seen.Add(row.Timestamp) {
			logger.Debug("row %d: skipped (already processed %s)", i+1, row.Timestamp)
			continue
		}
		out = append(out, row)
	}

	return out
}

// extractRow normalises one raw row. Returns false if any field is empty
// or the timestamp cannot be parsed.
func (e *Extractor) extractRow(raw domain.RawRow) (domain.SubmissionRow, bool) {
	ts, ok := NormalizeTimestamp(cell(raw, e.layout.Timestamp), e.location)
	if !ok {
		return domain.SubmissionRow{}, false
	}

	row := domain.SubmissionRow{
		Timestamp:   ts,
		TeacherName: strings.TrimSpace(cast.ToString(cell(raw, e.layout.TeacherName))),
		Praise:      CollapseLineBreaks(strings.TrimSpace(cast.ToString(cell(raw, e.layout.Praise)))),
		FromName:    strings.TrimSpace(cast.ToString(cell(raw, e.layout.FromName))),
	}

	if row.TeacherName == "" || row.Praise == "" || row.FromName == "" {
		return domain.SubmissionRow{}, false
	}
	return row, true
}

// cell returns raw[i], or nil for cells past the end of a short row.
func cell(raw domain.RawRow, i int) any {
	if i < 0 || i >= len(raw) {
		return nil
	}
	return raw[i]
}

// CollapseLineBreaks replaces each run of line breaks (and the spaces
// around them) with a single space.
func CollapseLineBreaks(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' })
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	kept := lines[:0]
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, " ")
}

// NormalizeTimestamp converts a raw timestamp cell to RFC 3339 in UTC,
// rounded to the second. Values without a zone are read in loc.
// Returns false for empty or unparseable values.
func NormalizeTimestamp(v any, loc *time.Location) (string, bool) {
	if loc == nil {
		loc = time.UTC
	}

	t, ok := parseTimestamp(v, loc)
	if !ok || t.IsZero() {
		return "", false
	}
	return t.UTC().Round(time.Second).Format(time.RFC3339), true
}

func parseTimestamp(v any, loc *time.Location) (time.Time, bool) {
	switch val := v.(type) {
	case nil, bool:
		return time.Time{}, false
	case time.Time:
		return val, true
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, true
	case string:
		return parseTimestampString(strings.TrimSpace(val), loc)
	}

	serial, err := cast.ToFloat64E(v)
	if err != nil {
		return time.Time{}, false
	}
	return fromSerial(serial, loc)
}

func parseTimestampString(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fromSerial converts a spreadsheet serial date (days since 1899-12-30,
// fraction = time of day) to a time in loc.
func fromSerial(serial float64, loc *time.Location) (time.Time, bool) {
	if serial < minSerial || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}

	days := math.Floor(serial)
	secs := math.Round((serial - days) * 86400)
	wall := serialEpoch.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)

	return time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), 0, loc), true
}
