package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cast"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driving"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// Ensure SetupService implements the interface.
var _ driving.SetupService = (*SetupService)(nil)

// configurableKeys are the keys Configure accepts.
var configurableKeys = map[string]bool{
	domain.KeyTemplateID:         true,
	domain.KeyTargetID:           true,
	domain.KeySourceKind:         true,
	domain.KeySpreadsheetID:      true,
	domain.KeySheetName:          true,
	domain.KeySheetRange:         true,
	domain.KeyWorkbookPath:       true,
	domain.KeyHeaderRows:         true,
	domain.KeyTimeZone:           true,
	domain.KeySetupSheet:         true,
	domain.KeyCredentialsFile:    true,
	domain.KeyColumnTimestamp:    true,
	domain.KeyColumnFromName:     true,
	domain.KeyColumnTeacher:      true,
	domain.KeyColumnPraise:       true,
	domain.KeyPlaceholderTeacher: true,
	domain.KeyPlaceholderPraise:  true,
	domain.KeyPlaceholderFrom:    true,
	domain.KeyWatchInterval:      true,
	domain.KeyLockTTL:            true,
	domain.KeyLogFile:            true,
	domain.KeyLogMaxSizeMB:       true,
}

// setupLabels maps labels found in column A of the setup sheet, with case,
// spaces and punctuation removed, to configuration keys.
var setupLabels = map[string]string{
	"templateid":             domain.KeyTemplateID,
	"templatepresentationid": domain.KeyTemplateID,
	"templateslidesid":       domain.KeyTemplateID,
	"templatedeckid":         domain.KeyTemplateID,
	"targetid":               domain.KeyTargetID,
	"targetpresentationid":   domain.KeyTargetID,
	"targetslidesid":         domain.KeyTargetID,
	"targetdeckid":           domain.KeyTargetID,
	"sheetname":              domain.KeySheetName,
	"responsesheet":          domain.KeySheetName,
	"timezone":               domain.KeyTimeZone,
}

// SetupService writes pipeline configuration.
type SetupService struct {
	config  driven.ConfigStore
	sources driven.RowSourceFactory
}

// NewSetupService creates a setup service.
func NewSetupService(config driven.ConfigStore, sources driven.RowSourceFactory) *SetupService {
	return &SetupService{config: config, sources: sources}
}

// Configure stores the given key/value pairs after checking every key.
func (s *SetupService) Configure(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		if !configurableKeys[key] {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := s.config.Set(key, strings.TrimSpace(values[key])); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// ImportSetupSheet copies recognised key/value rows from the setup tab of
// the configured spreadsheet into the configuration.
func (s *SetupService) ImportSetupSheet(ctx context.Context) ([]string, error) {
	src, err := loadSourceConfig(s.config)
	if err != nil {
		return nil, err
	}
	src.Sheet = stringOr(s.config, domain.KeySetupSheet, domain.DefaultSetupSheet)
	src.Range = "A:B"
	src.HeaderRows = 0

	source, err := s.sources.Open(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%w: open setup sheet %q: %w", domain.ErrResourceOpen, src.Sheet, err)
	}
	defer source.Close()

	rows, err := source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read setup sheet %q: %w", domain.ErrResourceOpen, src.Sheet, err)
	}

	values := make(map[string]string)
	for _, row := range rows {
		label := strings.TrimSpace(cast.ToString(cell(row, 0)))
		value := strings.TrimSpace(cast.ToString(cell(row, 1)))
		if label == "" || value == "" {
			continue
		}
		key, ok := setupKey(label)
		if !ok {
			logger.Debug("Setup sheet: ignoring unknown label %q", label)
			continue
		}
		values[key] = value
	}

	if err := s.Configure(values); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(values))
	for key := range values {
		written = append(written, key)
	}
	sort.Strings(written)
	return written, nil
}

// Missing returns required keys that are not yet configured.
func (s *SetupService) Missing() []string {
	var missing []string
	for _, key := range []string{domain.KeyTemplateID, domain.KeyTargetID} {
		if strings.TrimSpace(s.config.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}

	if _, err := loadSourceConfig(s.config); err != nil {
		var cfgErr *domain.ConfigError
		if errors.As(err, &cfgErr) {
			missing = append(missing, cfgErr.Key)
		}
	}
	return missing
}

// setupKey resolves a setup sheet label to a configuration key.
// Labels may also be configuration keys verbatim.
func setupKey(label string) (string, bool) {
	if configurableKeys[label] {
		return label, true
	}
	key, ok := setupLabels[normaliseLabel(label)]
	return key, ok
}

func normaliseLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
