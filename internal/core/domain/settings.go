package domain

import "time"

// Configuration keys read from the ConfigStore.
const (
	KeyTemplateID         = "slides.template_id"
	KeyTargetID           = "slides.target_id"
	KeySourceKind         = "source.kind"
	KeySpreadsheetID      = "source.spreadsheet_id"
	KeySheetName          = "source.sheet"
	KeySheetRange         = "source.range"
	KeyWorkbookPath       = "source.path"
	KeyHeaderRows         = "source.header_rows"
	KeyTimeZone           = "source.timezone"
	KeySetupSheet         = "source.setup_sheet"
	KeyCredentialsFile    = "google.credentials_file"
	KeyColumnTimestamp    = "columns.timestamp"
	KeyColumnFromName     = "columns.from_name"
	KeyColumnTeacher      = "columns.teacher_name"
	KeyColumnPraise       = "columns.praise"
	KeyPlaceholderTeacher = "placeholders.teacher_name"
	KeyPlaceholderPraise  = "placeholders.praise"
	KeyPlaceholderFrom    = "placeholders.from_name"
	KeyWatchInterval      = "watch.interval"
	KeyLockTTL            = "lock.ttl"
	KeyLogFile            = "log.file"
	KeyLogMaxSizeMB       = "log.max_size_mb"
)

// Defaults for optional settings.
const (
	DefaultSheetName     = "Form Responses 1"
	DefaultSheetRange    = "A:Z"
	DefaultHeaderRows    = 1
	DefaultSetupSheet    = "Setup"
	DefaultWatchInterval = 5 * time.Minute
	DefaultLockTTL       = 10 * time.Minute
)

// SourceKind identifies where submissions are read from.
type SourceKind string

// Supported source kinds.
const (
	// SourceSheets reads a Google Sheets spreadsheet.
	SourceSheets SourceKind = "sheets"
	// SourceWorkbook reads a local .xlsx workbook.
	SourceWorkbook SourceKind = "xlsx"
)

// IsValid returns true if the source kind is recognised.
func (k SourceKind) IsValid() bool {
	return k == SourceSheets || k == SourceWorkbook
}

// SourceConfig locates the tabular data source.
type SourceConfig struct {
	Kind SourceKind

	// SpreadsheetID is the Google Sheets file ID (sheets only).
	SpreadsheetID string

	// Path is the workbook file path (xlsx only).
	Path string

	// Sheet is the tab holding form responses.
	Sheet string

	// Range is the A1 column range to read within Sheet.
	Range string

	// HeaderRows is the number of leading rows to drop.
	HeaderRows int

	// Location interprets zone-less timestamps and serial dates.
	Location *time.Location
}

// Validate checks that the source can be located.
func (c SourceConfig) Validate() error {
	switch c.Kind {
	case SourceSheets:
		if c.SpreadsheetID == "" {
			return MissingKey(KeySpreadsheetID)
		}
	case SourceWorkbook:
		if c.Path == "" {
			return MissingKey(KeyWorkbookPath)
		}
	default:
		return &ConfigError{Key: KeySourceKind, Reason: "unsupported source kind " + string(c.Kind)}
	}
	return nil
}

// PipelineSettings is everything a run needs from configuration.
type PipelineSettings struct {
	TemplateID   string
	TargetID     string
	Source       SourceConfig
	Layout       FormLayout
	Placeholders Placeholders
	LockTTL      time.Duration
}

// WatchSettings configures the watch loop.
type WatchSettings struct {
	Interval time.Duration

	// WorkbookPath is the local workbook to watch for changes.
	// Empty when the source is not a workbook.
	WorkbookPath string
}

// ConfigError describes a missing or invalid configuration value.
// It matches ErrConfiguration with errors.Is.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Key + " " + e.Reason
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// MissingKey returns a ConfigError for an absent required key.
func MissingKey(key string) error {
	return &ConfigError{Key: key, Reason: "is not set"}
}
