package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/adapters/driven/storage/memory"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
)

func TestSetupService_Configure(t *testing.T) {
	cfg := memory.NewConfigStore()
	svc := NewSetupService(cfg, memory.NewRowSourceFactory())

	err := svc.Configure(map[string]string{
		domain.KeyTemplateID:    " tmpl ",
		domain.KeyTargetID:      "target",
		domain.KeySpreadsheetID: "sheet",
	})

	require.NoError(t, err)
	assert.Equal(t, "tmpl", cfg.GetString(domain.KeyTemplateID))
	assert.Equal(t, "target", cfg.GetString(domain.KeyTargetID))
	assert.Empty(t, svc.Missing())
}

func TestSetupService_Configure_UnknownKey(t *testing.T) {
	cfg := memory.NewConfigStore()
	svc := NewSetupService(cfg, memory.NewRowSourceFactory())

	err := svc.Configure(map[string]string{
		domain.KeyTemplateID: "tmpl",
		"slides.colour":      "red",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, ok := cfg.Get(domain.KeyTemplateID)
	assert.False(t, ok, "nothing is written when a key is rejected")
}

func TestSetupService_Configure_WriteError(t *testing.T) {
	cfg := memory.NewConfigStore()
	cause := errors.New("read-only")
	cfg.FailWrites(cause)
	svc := NewSetupService(cfg, memory.NewRowSourceFactory())

	err := svc.Configure(map[string]string{domain.KeyTemplateID: "tmpl"})

	assert.ErrorIs(t, err, cause)
}

func TestSetupService_Missing(t *testing.T) {
	svc := NewSetupService(memory.NewConfigStore(), memory.NewRowSourceFactory())

	assert.Equal(t,
		[]string{domain.KeyTemplateID, domain.KeyTargetID, domain.KeySpreadsheetID},
		svc.Missing())
}

func TestSetupService_ImportSetupSheet(t *testing.T) {
	cfg := memory.NewConfigStore(map[string]any{domain.KeySpreadsheetID: "sheet-1"})
	sources := memory.NewRowSourceFactory()
	sources.SetRows(domain.DefaultSetupSheet,
		domain.RawRow{"Template Presentation ID", "tmpl-deck"},
		domain.RawRow{"Target Slides ID:", " target-deck "},
		domain.RawRow{"Time zone", "America/Chicago"},
		domain.RawRow{"Notes", "ignored"},
		domain.RawRow{"", "no label"},
		domain.RawRow{"slides.template_id"},
		domain.RawRow{"placeholders.praise", "<<praise>>"},
	)
	svc := NewSetupService(cfg, sources)

	keys, err := svc.ImportSetupSheet(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		domain.KeyPlaceholderPraise,
		domain.KeyTargetID,
		domain.KeyTemplateID,
		domain.KeyTimeZone,
	}, keys)
	assert.Equal(t, "tmpl-deck", cfg.GetString(domain.KeyTemplateID))
	assert.Equal(t, "target-deck", cfg.GetString(domain.KeyTargetID))
	assert.Equal(t, "America/Chicago", cfg.GetString(domain.KeyTimeZone))
	assert.Equal(t, "<<praise>>", cfg.GetString(domain.KeyPlaceholderPraise))

	opened := sources.Opened()
	require.Len(t, opened, 1)
	assert.Equal(t, domain.DefaultSetupSheet, opened[0].Sheet)
	assert.Equal(t, "A:B", opened[0].Range)
	assert.Zero(t, opened[0].HeaderRows)
}

func TestSetupService_ImportSetupSheet_NeedsSource(t *testing.T) {
	sources := memory.NewRowSourceFactory()
	svc := NewSetupService(memory.NewConfigStore(), sources)

	_, err := svc.ImportSetupSheet(context.Background())

	assert.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Empty(t, sources.Opened())
}

func TestSetupService_ImportSetupSheet_OpenError(t *testing.T) {
	sources := memory.NewRowSourceFactory()
	sources.FailOpen(domain.ErrNotFound)
	svc := NewSetupService(memory.NewConfigStore(map[string]any{domain.KeySpreadsheetID: "s"}), sources)

	_, err := svc.ImportSetupSheet(context.Background())

	assert.ErrorIs(t, err, domain.ErrResourceOpen)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNormaliseLabel(t *testing.T) {
	assert.Equal(t, "templateid", normaliseLabel("Template ID:"))
	assert.Equal(t, "sheetname", normaliseLabel(" sheet_name "))
}
