package domain

import "fmt"

// Queue owns the in-memory set of open orders. Insertion order is preserved
// and IDs are assigned from a high-water counter that never moves backwards,
// so an ID is never reused within a process lifetime — not even after Clear.
//
// The queue is not safe for concurrent use; it assumes one logical session
// mutating it between persistence checkpoints.
type Queue struct {
	orders []Order
	nextID int
}

// NewQueue returns an empty queue with IDs starting at 1.
func NewQueue() *Queue {
	return &Queue{nextID: 1}
}

// RestoreQueue rebuilds a queue from persisted orders. The ID counter is
// recomputed as max(existing)+1 so IDs never collide across restarts.
func RestoreQueue(orders []Order) *Queue {
	q := &Queue{orders: append([]Order(nil), orders...), nextID: 1}
	for _, o := range orders {
		if o.ID >= q.nextID {
			q.nextID = o.ID + 1
		}
	}
	return q
}

// Add creates a new order with the next ID and the initial status. The
// service category must already be validated by the caller; the queue does
// not re-check it. Every call creates a distinct record, even for identical
// customer data.
func (q *Queue) Add(c Customer, weightKg float64, service ServiceCategory) Order {
	o := Order{
		ID:       q.nextID,
		Customer: c,
		WeightKg: weightKg,
		Service:  service,
		Status:   StatusForWashing,
	}
	q.nextID++
	q.orders = append(q.orders, o)
	return o
}

// UpdateStatus overwrites the status of the order with the given ID. When
// strict is true the change must follow the lifecycle table; when false any
// label is accepted, matching the legacy behavior. On a miss nothing is
// mutated and ErrOrderNotFound is returned.
func (q *Queue) UpdateStatus(id int, next Status, strict bool) (Order, error) {
	i := q.indexOf(id)
	if i < 0 {
		return Order{}, fmt.Errorf("updating status of order %d: %w", id, ErrOrderNotFound)
	}
	if strict && !q.orders[i].Status.CanTransitionTo(next) {
		return Order{}, &TransitionError{From: q.orders[i].Status, To: next}
	}
	q.orders[i].Status = next
	return q.orders[i], nil
}

// Finish marks the order finished, computes its fee, removes it from the
// queue, and returns the pre-removal snapshot plus fee. After this call the
// sales ledger is the only remaining trace of the order.
func (q *Queue) Finish(id int, fees FeeSchedule) (Order, float64, error) {
	i := q.indexOf(id)
	if i < 0 {
		return Order{}, 0, fmt.Errorf("finishing order %d: %w", id, ErrOrderNotFound)
	}
	o := q.orders[i]
	o.Status = StatusFinished
	fee := fees.Fee(o.WeightKg, string(o.Service))
	q.orders = append(q.orders[:i], q.orders[i+1:]...)
	return o, fee, nil
}

// FindByCustomer returns all orders whose customer name matches ignoring
// case or whose contact matches exactly. Read-only.
func (q *Queue) FindByCustomer(nameOrContact string) []Order {
	var matched []Order
	for _, o := range q.orders {
		if o.MatchesCustomer(nameOrContact) {
			matched = append(matched, o)
		}
	}
	return matched
}

// Orders returns a snapshot of the open orders in insertion order.
func (q *Queue) Orders() []Order {
	return append([]Order(nil), q.orders...)
}

// Len returns the number of open orders.
func (q *Queue) Len() int { return len(q.orders) }

// Clear drops every open order. The ID counter is deliberately kept, so new
// orders continue from the prior high-water mark and never shadow historical
// ledger entries.
func (q *Queue) Clear() {
	q.orders = nil
}

func (q *Queue) indexOf(id int) int {
	for i, o := range q.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
