package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/domain"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/core/ports/driven"
	"github.com/AlvaroGomezMartinez/oc-panther-praise/internal/logger"
)

// ProcessedSlot is the key holding the processed set in the KeyValueStore.
const ProcessedSlot = "processed_timestamps"

// Tracker persists the processed set in a single durable slot.
type Tracker struct {
	store driven.KeyValueStore
	slot  string
}

// NewTracker creates a tracker over store using the default slot.
func NewTracker(store driven.KeyValueStore) *Tracker {
	return &Tracker{store: store, slot: ProcessedSlot}
}

// Load returns the persisted set. A missing slot is the empty set (first run).
// An unreadable slot is logged and also treated as empty so the automation
// never wedges; the cost is reprocessing.
func (t *Tracker) Load(ctx context.Context) (*domain.ProcessedSet, error) {
	raw, ok, err := t.store.Get(ctx, t.slot)
	if err != nil {
		return nil, fmt.Errorf("read processed set: %w", err)
	}
	if !ok || raw == "" {
		return domain.NewProcessedSet(), nil
	}

	set, err := DecodeProcessedSet(raw)
	if err != nil {
		logger.Warn("Ignoring unreadable processed set: %v", err)
		return domain.NewProcessedSet(), nil
	}
	return set, nil
}

// Save replaces the slot with set. Callers pass the complete desired set.
func (t *Tracker) Save(ctx context.Context, set *domain.ProcessedSet) error {
	if err := t.store.Set(ctx, t.slot, EncodeProcessedSet(set)); err != nil {
		return fmt.Errorf("write processed set: %w", err)
	}
	return nil
}

// EncodeProcessedSet serialises set as a JSON array of strings.
func EncodeProcessedSet(set *domain.ProcessedSet) string {
	ids := set.Values()
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeProcessedSet parses a JSON array of strings.
// Returns ErrSerialization if raw is not such an array.
func DecodeProcessedSet(raw string) (*domain.ProcessedSet, error) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSerialization, err)
	}
	return domain.NewProcessedSet(ids...), nil
}
