// Package snapshot implements the collection repositories on top of a
// SlotStore: each collection is serialized wholesale into one named slot and
// rewritten on every mutation. There is exactly one logical writer, so no
// locking happens here; last write wins.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// record is the minimal contract a snapshot collection element must satisfy.
type record interface {
	ID() string
}

// slotLoader is the read half of the SlotStore contract needed here.
type slotLoader interface {
	Load(ctx context.Context, slot string) ([]byte, error)
}

// slotSaver is the write half of the SlotStore contract needed here.
type slotSaver interface {
	Save(ctx context.Context, slot string, payload []byte) error
}

// loadAll deserializes the slot payload into a collection. A slot that was
// never written yields an empty collection; so does an unparsable payload,
// which is logged and discarded rather than treated as fatal.
func loadAll[T record](ctx context.Context, store slotLoader, slot string, logger *slog.Logger) ([]T, error) {
	payload, err := store.Load(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s snapshot: %w", slot, err)
	}
	if len(payload) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		logger.Warn("Discarding unparsable snapshot, starting empty",
			slog.String("slot", slot),
			slog.String("error", err.Error()))
		return []T{}, nil
	}
	return records, nil
}

// persist serializes the whole collection and rewrites the slot.
func persist[T record](ctx context.Context, store slotSaver, slot string, records []T) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize %s snapshot: %w", slot, err)
	}
	if err := store.Save(ctx, slot, payload); err != nil {
		return fmt.Errorf("failed to persist %s snapshot: %w", slot, err)
	}
	return nil
}

// upsertFront replaces the record with the same ID in place, preserving the
// position of untouched elements, or prepends the record when its ID is new.
func upsertFront[T record](records []T, r T) []T {
	for i := range records {
		if records[i].ID() == r.ID() {
			records[i] = r
			return records
		}
	}
	return append([]T{r}, records...)
}

// upsertBack is upsertFront with append-at-end semantics, used by the chat
// collection which keeps append order.
func upsertBack[T record](records []T, r T) []T {
	for i := range records {
		if records[i].ID() == r.ID() {
			records[i] = r
			return records
		}
	}
	return append(records, r)
}

// removeByID filters the ID out of the collection. Absent IDs are a no-op.
func removeByID[T record](records []T, id string) []T {
	kept := records[:0]
	for _, r := range records {
		if r.ID() != id {
			kept = append(kept, r)
		}
	}
	return kept
}
