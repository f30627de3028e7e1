package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/washline/washline/internal/adapters/outbound/tui"
	"github.com/washline/washline/internal/domain"
)

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, Customer: domain.Customer{Name: "Maria Santos", Contact: "0917"},
			WeightKg: 5, Service: domain.ServiceWash, Status: domain.StatusForWashing},
		{ID: 2, Customer: domain.Customer{Name: "Jose Cruz", Contact: "0999"},
			WeightKg: 2.5, Service: domain.ServiceCombo, Status: domain.StatusDrying},
	}
}

func TestRenderOrders(t *testing.T) {
	out := tui.RenderOrders(sampleOrders())

	assert.Contains(t, out, "Maria Santos")
	assert.Contains(t, out, "Jose Cruz")
	assert.Contains(t, out, "For Washing")
	assert.Contains(t, out, "Drying")
	assert.Contains(t, out, "2 order(s)")
}

func TestRenderOrders_Empty(t *testing.T) {
	out := tui.RenderOrders(nil)
	assert.Contains(t, out, "No open orders")
}

func TestRenderOrders_UnknownStatusStillRenders(t *testing.T) {
	orders := sampleOrders()
	orders[0].Status = domain.Status("Soaking Overnight")

	out := tui.RenderOrders(orders)
	assert.Contains(t, out, "Soaking Overnight")
}

func TestRenderReceipt(t *testing.T) {
	out := tui.RenderReceipt(sampleOrders()[0], 100)

	assert.Contains(t, out, "Order")
	assert.Contains(t, out, "Maria Santos")
	assert.Contains(t, out, "₱100.00")
}

func TestRenderWarnings(t *testing.T) {
	assert.Empty(t, tui.RenderWarnings(nil))

	out := tui.RenderWarnings([]string{"line 3: bad weight"})
	assert.Contains(t, out, "line 3: bad weight")
}

func TestRenderSaved(t *testing.T) {
	out := tui.RenderSaved("summary written to", "/tmp/sales_summary.txt")
	assert.Contains(t, out, "/tmp/sales_summary.txt")
}
