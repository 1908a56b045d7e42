package store

import "context"

// Slot names for the two persisted collections. Each slot holds the full
// collection as one JSON text blob; writes always replace the whole value.
// The slots are independent: there is no transactional coupling between them.
const (
	NewsSlot    = "tribuna_news"
	ReportsSlot = "tribuna_reports"
)

// SlotStore is a named text-blob store. Get reports ok=false when the slot
// was never written.
type SlotStore interface {
	Get(ctx context.Context, slot string) (value string, ok bool, err error)
	Set(ctx context.Context, slot, value string) error
	Ping(ctx context.Context) error
	Close() error
}
