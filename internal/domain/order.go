package domain

import "strings"

// Customer identifies who dropped off a load. Each order keeps its own copy;
// there is no shared customer registry, so two orders from the same person
// are independent records.
type Customer struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Status is the human-meaningful progress label on an order.
type Status string

const (
	StatusForWashing     Status = "For Washing"
	StatusDrying         Status = "Drying"
	StatusReadyForPickup Status = "Ready for Pickup"
	StatusFinished       Status = "Finished"
)

// ValidStatuses enumerates the lifecycle labels in order.
var ValidStatuses = []Status{
	StatusForWashing, StatusDrying, StatusReadyForPickup, StatusFinished,
}

// statusTransitions is the allowed forward path through the lifecycle.
// Finish is not modeled here: finishing an order is a terminal side effect
// on the queue, not a label edit, and is allowed from any status.
var statusTransitions = map[Status]Status{
	StatusForWashing:     StatusDrying,
	StatusDrying:         StatusReadyForPickup,
	StatusReadyForPickup: StatusFinished,
}

// ParseStatus matches a raw label against the known statuses, ignoring case.
func ParseStatus(raw string) (Status, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, s := range ValidStatuses {
		if strings.EqualFold(trimmed, string(s)) {
			return s, true
		}
	}
	return "", false
}

// CanTransitionTo reports whether next is the allowed successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	return statusTransitions[s] == next
}

// Order is one laundry job moving through the queue.
type Order struct {
	ID       int             `json:"id"`
	Customer Customer        `json:"customer"`
	WeightKg float64         `json:"weight_kg"`
	Service  ServiceCategory `json:"service"`
	Status   Status          `json:"status"`
}

// MatchesCustomer reports whether the order belongs to the given customer
// query: name matches ignoring case, or contact matches exactly.
func (o Order) MatchesCustomer(nameOrContact string) bool {
	return strings.EqualFold(o.Customer.Name, nameOrContact) ||
		o.Customer.Contact == nameOrContact
}
