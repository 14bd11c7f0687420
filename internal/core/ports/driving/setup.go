package driving

import "context"

// SetupService writes pipeline configuration.
type SetupService interface {
	// Configure stores the given key/value pairs.
	// Unknown keys are rejected with ErrInvalidInput.
	Configure(values map[string]string) error

	// ImportSetupSheet reads key/value pairs from the spreadsheet's setup tab
	// and stores the recognised ones. Returns the keys that were written.
	ImportSetupSheet(ctx context.Context) ([]string, error)

	// Missing returns required keys that are not yet configured.
	Missing() []string
}
