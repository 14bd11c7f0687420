package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
)

// LoadPipelineSettings reads and validates run settings from cfg.
// The template and target IDs are checked first so that a missing one
// is reported before anything else.
func LoadPipelineSettings(cfg driven.ConfigStore) (domain.PipelineSettings, error) {
	var s domain.PipelineSettings

	s.TemplateID = strings.TrimSpace(cfg.GetString(domain.KeyTemplateID))
	if s.TemplateID == "" {
		return s, domain.MissingKey(domain.KeyTemplateID)
	}
	s.TargetID = strings.TrimSpace(cfg.GetString(domain.KeyTargetID))
	if s.TargetID == "" {
		return s, domain.MissingKey(domain.KeyTargetID)
	}

	source, err := loadSourceConfig(cfg)
	if err != nil {
		return s, err
	}
	s.Source = source

	layout := domain.DefaultFormLayout()
	for _, col := range []struct {
		key string
		dst *int
	}{
		{domain.KeyColumnTimestamp, &layout.Timestamp},
		{domain.KeyColumnFromName, &layout.FromName},
		{domain.KeyColumnTeacher, &layout.TeacherName},
		{domain.KeyColumnPraise, &layout.Praise},
	} {
		if *col.dst, err = intOr(cfg, col.key, *col.dst); err != nil {
			return s, err
		}
	}
	s.Layout = layout
	if !s.Layout.IsValid() {
		return s, &domain.ConfigError{Key: "columns", Reason: "has a negative column index"}
	}

	defaults := domain.DefaultPlaceholders()
	s.Placeholders = domain.Placeholders{
		TeacherName: stringOr(cfg, domain.KeyPlaceholderTeacher, defaults.TeacherName),
		Praise:      stringOr(cfg, domain.KeyPlaceholderPraise, defaults.Praise),
		FromName:    stringOr(cfg, domain.KeyPlaceholderFrom, defaults.FromName),
	}

	s.LockTTL, err = durationOr(cfg, domain.KeyLockTTL, domain.DefaultLockTTL)
	if err != nil {
		return s, err
	}

	return s, nil
}

// LoadWatchSettings reads the watch interval and, for workbook sources,
// the file to watch. An incomplete source is not an error here; the runs
// themselves report it.
func LoadWatchSettings(cfg driven.ConfigStore) (domain.WatchSettings, error) {
	var s domain.WatchSettings

	interval, err := durationOr(cfg, domain.KeyWatchInterval, domain.DefaultWatchInterval)
	if err != nil {
		return s, err
	}
	s.Interval = interval

	if src, err := loadSourceConfig(cfg); err == nil && src.Kind == domain.SourceWorkbook {
		s.WorkbookPath = src.Path
	}
	return s, nil
}

// loadSourceConfig reads the data source location.
// The kind defaults to sheets, or xlsx when only a workbook path is set.
func loadSourceConfig(cfg driven.ConfigStore) (domain.SourceConfig, error) {
	src := domain.SourceConfig{
		Kind:          domain.SourceKind(strings.TrimSpace(cfg.GetString(domain.KeySourceKind))),
		SpreadsheetID: strings.TrimSpace(cfg.GetString(domain.KeySpreadsheetID)),
		Path:          strings.TrimSpace(cfg.GetString(domain.KeyWorkbookPath)),
		Sheet:         stringOr(cfg, domain.KeySheetName, domain.DefaultSheetName),
		Range:         stringOr(cfg, domain.KeySheetRange, domain.DefaultSheetRange),
	}

	var err error
	if src.HeaderRows, err = intOr(cfg, domain.KeyHeaderRows, domain.DefaultHeaderRows); err != nil {
		return src, err
	}

	if src.Kind == "" {
		src.Kind = domain.SourceSheets
		if src.SpreadsheetID == "" && src.Path != "" {
			src.Kind = domain.SourceWorkbook
		}
	}
	if src.HeaderRows < 0 {
		return src, &domain.ConfigError{Key: domain.KeyHeaderRows, Reason: "must not be negative"}
	}

	if tz := strings.TrimSpace(cfg.GetString(domain.KeyTimeZone)); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return src, &domain.ConfigError{Key: domain.KeyTimeZone, Reason: "is not a known time zone: " + tz}
		}
		src.Location = loc
	}

	return src, src.Validate()
}

// stringOr returns the trimmed string at key, or def when unset or blank.
func stringOr(cfg driven.ConfigStore, key, def string) string {
	if v := strings.TrimSpace(cfg.GetString(key)); v != "" {
		return v
	}
	return def
}

// intOr returns the integer at key, or def when unset or blank.
// Strings holding integers are accepted since the setup sheet writes text.
func intOr(cfg driven.ConfigStore, key string, def int) (int, error) {
	val, ok := cfg.Get(key)
	if !ok {
		return def, nil
	}

	var (
		n   int
		err error
	)
	if str, isString := val.(string); isString {
		str = strings.TrimSpace(str)
		if str == "" {
			return def, nil
		}
		n, err = strconv.Atoi(str)
	} else {
		n, err = cast.ToIntE(val)
	}
	if err != nil {
		return def, &domain.ConfigError{Key: key, Reason: fmt.Sprintf("is not an integer: %v", val)}
	}
	return n, nil
}

// durationOr parses a Go duration string at key, or returns def when unset.
func durationOr(cfg driven.ConfigStore, key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(cfg.GetString(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def, &domain.ConfigError{Key: key, Reason: "is not a positive duration: " + raw}
	}
	return d, nil
}
