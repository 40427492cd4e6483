package repositories

import "context"

// SlotStore is the low-level persistence contract: one named slot per
// collection, holding the entire serialized collection as a single payload.
// Every mutation is a whole-slot rewrite; last write wins. There is no
// incremental diffing and no concurrent-writer detection.
type SlotStore interface {
	// Load returns the payload stored under slot, or nil if the slot has
	// never been written.
	Load(ctx context.Context, slot string) ([]byte, error)

	// Save atomically replaces the payload stored under slot.
	Save(ctx context.Context, slot string, payload []byte) error

	// Clear removes the slot entirely. Clearing an absent slot is a no-op.
	Clear(ctx context.Context, slot string) error
}
