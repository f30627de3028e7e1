package application

import (
	"fmt"
	"strings"

	"github.com/washline/washline/internal/domain"
)

// OrderService orchestrates the order queue:
// load snapshot -> mutate queue -> checkpoint save (-> ledger on finish).
// Every mutating call persists the queue before returning, so on-disk state
// is current at all times.
type OrderService struct {
	queue     *domain.Queue
	store     domain.OrderStore
	ledger    domain.SalesLedger
	fees      domain.FeeSchedule
	strict    bool
	savedPath string
}

// NewOrderService restores the queue from the store and returns the service
// plus any warnings from a degraded load.
func NewOrderService(store domain.OrderStore, ledger domain.SalesLedger, cfg domain.Config) (*OrderService, []string) {
	orders, warnings := store.Load()
	return &OrderService{
		queue:  domain.RestoreQueue(orders),
		store:  store,
		ledger: ledger,
		fees:   cfg.FeeSchedule(),
		strict: cfg.StrictStatus,
	}, warnings
}

// Add validates the input, creates the order, and checkpoints the store.
func (s *OrderService) Add(name, contact string, weightKg float64, category string) (domain.Order, error) {
	if name == "" {
		return domain.Order{}, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if weightKg <= 0 {
		return domain.Order{}, &domain.ValidationError{Field: "weight", Reason: "must be greater than zero"}
	}
	service, ok := domain.NormalizeService(category)
	if !ok {
		return domain.Order{}, &domain.ValidationError{
			Field:  "service",
			Reason: fmt.Sprintf("%q is not one of wash, dry, fold, combo", category),
		}
	}

	o := s.queue.Add(domain.Customer{Name: name, Contact: contact}, weightKg, service)
	if err := s.checkpoint(); err != nil {
		return o, err
	}
	return o, nil
}

// UpdateStatus moves an order to a new lifecycle label and checkpoints.
// With strict checking on, only known labels are accepted and the change
// must follow the lifecycle table. With strict checking off any label at
// all is stored verbatim, matching the legacy free-text behavior.
func (s *OrderService) UpdateStatus(id int, rawStatus string) (domain.Order, error) {
	status, ok := domain.ParseStatus(rawStatus)
	if !ok {
		if s.strict {
			return domain.Order{}, &domain.ValidationError{
				Field:  "status",
				Reason: fmt.Sprintf("%q is not a known status", rawStatus),
			}
		}
		status = domain.Status(strings.TrimSpace(rawStatus))
	}
	o, err := s.queue.UpdateStatus(id, status, s.strict)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.checkpoint(); err != nil {
		return o, err
	}
	return o, nil
}

// Finish completes an order: removes it from the queue, records it in the
// sales ledger, and checkpoints. The returned snapshot carries the Finished
// status for receipt rendering.
//
// The ledger append and the snapshot save are two writes; a crash between
// them can leave a ledger line for an order still in the snapshot. The
// checkpoint-per-mutation design keeps that window narrow, and replaying the
// finish only duplicates a ledger line, never corrupts the snapshot.
func (s *OrderService) Finish(id int) (domain.Order, float64, error) {
	o, fee, err := s.queue.Finish(id, s.fees)
	if err != nil {
		return domain.Order{}, 0, err
	}
	if err := s.ledger.RecordFinished(o, fee); err != nil {
		return o, fee, fmt.Errorf("order %d finished but not recorded: %w", id, err)
	}
	if err := s.checkpoint(); err != nil {
		return o, fee, err
	}
	return o, fee, nil
}

// Find returns all open orders matching a customer name (case-insensitive)
// or contact (exact).
func (s *OrderService) Find(nameOrContact string) []domain.Order {
	return s.queue.FindByCustomer(nameOrContact)
}

// List returns a snapshot of the open orders in insertion order.
func (s *OrderService) List() []domain.Order {
	return s.queue.Orders()
}

// Clear drops all open orders and checkpoints. IDs keep counting from the
// prior high-water mark.
func (s *OrderService) Clear() error {
	s.queue.Clear()
	return s.checkpoint()
}

// Reset clears the queue and removes the persisted snapshot entirely.
func (s *OrderService) Reset() error {
	s.queue.Clear()
	if err := s.store.Delete(); err != nil {
		return fmt.Errorf("resetting store: %w", err)
	}
	return nil
}

// CheckpointPath reports where the last checkpoint landed: empty before any
// save, otherwise the primary path or the fallback path when the primary
// location refused the write. Callers use it to tell the user the snapshot
// went somewhere it will not be read back from.
func (s *OrderService) CheckpointPath() string {
	return s.savedPath
}

func (s *OrderService) checkpoint() error {
	path, err := s.store.Save(s.queue.Orders())
	if err != nil {
		return fmt.Errorf("checkpointing orders: %w", err)
	}
	s.savedPath = path
	return nil
}
