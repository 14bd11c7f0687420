package xlsx

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.RowSource = (*Source)(nil)

// Source is an open workbook sheet.
type Source struct {
	file       *excelize.File
	sheet      string
	firstCol   int
	lastCol    int
	headerRows int
}

// Open opens the workbook at cfg.Path and checks that cfg.Sheet exists.
func Open(cfg domain.SourceConfig) (*Source, error) {
	if cfg.Path == "" {
		return nil, domain.MissingKey(domain.KeyWorkbookPath)
	}

	first, last, err := columnSpan(cfg.Range)
	if err != nil {
		return nil, &domain.ConfigError{Key: domain.KeySheetRange, Reason: err.Error()}
	}

	f, err := excelize.OpenFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", cfg.Path, err)
	}

	idx, err := f.GetSheetIndex(cfg.Sheet)
	if err != nil || idx < 0 {
		f.Close()
		return nil, fmt.Errorf("sheet %q in %s: %w", cfg.Sheet, cfg.Path, domain.ErrNotFound)
	}

	return &Source{
		file:       f,
		sheet:      cfg.Sheet,
		firstCol:   first,
		lastCol:    last,
		headerRows: cfg.HeaderRows,
	}, nil
}

// Rows returns the data rows of the sheet, header rows dropped.
func (s *Source) Rows(ctx context.Context) ([]domain.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cells, err := s.file.GetRows(s.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", s.sheet, err)
	}

	if s.headerRows >= len(cells) {
		return nil, nil
	}
	cells = cells[s.headerRows:]

	rows := make([]domain.RawRow, 0, len(cells))
	for i, line := range cells {
		row, err := s.project(line, s.headerRows+i+1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// project keeps the configured column span of one row. Number cells,
// dates included, become float64 so they are not mistaken for text.
func (s *Source) project(line []string, rowNum int) (domain.RawRow, error) {
	start := s.firstCol - 1
	end := len(line)
	if s.lastCol > 0 && s.lastCol < end {
		end = s.lastCol
	}
	if start >= end {
		return domain.RawRow{}, nil
	}

	row := make(domain.RawRow, 0, end-start)
	for i, v := range line[start:end] {
		cell, err := s.cellValue(v, start+i+1, rowNum)
		if err != nil {
			return nil, err
		}
		row = append(row, cell)
	}
	return row, nil
}

func (s *Source) cellValue(raw string, col, rowNum int) (any, error) {
	if raw == "" {
		return raw, nil
	}

	name, err := excelize.CoordinatesToCellName(col, rowNum)
	if err != nil {
		return nil, err
	}
	typ, err := s.file.GetCellType(s.sheet, name)
	if err != nil {
		return nil, fmt.Errorf("reading cell %s: %w", name, err)
	}
	if typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber {
		return raw, nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n, nil
	}
	return raw, nil
}

// Location returns nil: workbooks carry no time zone.
func (s *Source) Location() *time.Location { return nil }

// Close releases the workbook.
func (s *Source) Close() error {
	return s.file.Close()
}

// columnSpan parses an A1 column range such as "A:Z" or "B2:F" into
// 1-based column numbers. Row numbers are ignored. An empty range, or an
// open end, reads every column (last = 0).
func columnSpan(r string) (first, last int, err error) {
	r = strings.TrimSpace(r)
	if r == "" {
		return 1, 0, nil
	}

	from, to, _ := strings.Cut(r, ":")
	first, err = columnNumber(from)
	if err != nil {
		return 0, 0, err
	}
	if strings.TrimSpace(to) == "" {
		return first, 0, nil
	}
	last, err = columnNumber(to)
	if err != nil {
		return 0, 0, err
	}
	if last < first {
		return 0, 0, fmt.Errorf("range %q ends before it starts", r)
	}
	return first, last, nil
}

func columnNumber(ref string) (int, error) {
	letters := strings.TrimRightFunc(strings.TrimSpace(ref), unicode.IsDigit)
	if letters == "" {
		return 0, fmt.Errorf("range part %q has no column", ref)
	}
	return excelize.ColumnNameToNumber(letters)
}
