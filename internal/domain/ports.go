package domain

// OrderStore persists the open-order queue between runs.
type OrderStore interface {
	// Save writes the full snapshot and returns the path it landed on
	// (the fallback path when the primary location refuses the write).
	Save(orders []Order) (string, error)
	// Load reads whatever valid orders are recoverable. An absent or
	// unreadable file is not an error: the result degrades to empty and
	// the warnings explain what was skipped.
	Load() (orders []Order, warnings []string)
	// Delete removes the persisted snapshot if present.
	Delete() error
}

// SalesLedger records finished orders and produces summary artifacts.
type SalesLedger interface {
	// RecordFinished appends one line for a finished order. No dedup:
	// the queue's single-removal semantics are the only guard against
	// recording an order twice.
	RecordFinished(o Order, fee float64) error
	// Summarize writes a fresh timestamped report over the open orders
	// and returns its path.
	Summarize(orders []Order, fees FeeSchedule) (string, error)
}
