package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/washline/washline/internal/domain"
)

// ── warm laundromat palette ──
var (
	accent  = lipgloss.Color("#0EA5E9") // sky blue
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	warning = lipgloss.Color("#F59E0B") // amber
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	okStyle       = lipgloss.NewStyle().Foreground(success)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	feeStyle      = lipgloss.NewStyle().Bold(true).Foreground(success)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))

	statusColors = map[domain.Status]lipgloss.Color{
		domain.StatusForWashing:     accent,
		domain.StatusDrying:         warning,
		domain.StatusReadyForPickup: success,
		domain.StatusFinished:       dim,
	}
)

// RenderOrders renders the open-order queue as a table.
func RenderOrders(orders []domain.Order) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("washline") + "  " + dimStyle.Render("open orders") + "\n\n")

	if len(orders) == 0 {
		b.WriteString("  " + dimStyle.Render("No open orders.") + "\n")
		return b.String()
	}

	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("%-5s %-20s %-14s %8s  %-7s %s",
		"ID", "Customer", "Contact", "Weight", "Service", "Status")) + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, o := range orders {
		status := lipgloss.NewStyle().Foreground(statusColor(o.Status)).Render(string(o.Status))
		b.WriteString(fmt.Sprintf("  %-5d %-20s %-14s %6.2fkg %-7s %s\n",
			o.ID, o.Customer.Name, o.Customer.Contact, o.WeightKg, o.Service, status))
	}
	b.WriteString("\n  " + dimStyle.Render(fmt.Sprintf("%d order(s)", len(orders))) + "\n")
	return b.String()
}

// RenderReceipt renders a pickup receipt for a finished order.
func RenderReceipt(o domain.Order, fee float64) string {
	lines := []string{
		headerStyle.Render("washline") + dimStyle.Render("  ·  receipt"),
		"",
		fmt.Sprintf("%s %d", dimStyle.Render("Order"), o.ID),
		fmt.Sprintf("%s %s (%s)", dimStyle.Render("Customer"), o.Customer.Name, o.Customer.Contact),
		fmt.Sprintf("%s %s, %.2f kg", dimStyle.Render("Service"), o.Service, o.WeightKg),
		"",
		titleStyle.Render("Total  ") + feeStyle.Render(fmt.Sprintf("₱%.2f", fee)),
	}
	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// RenderWarnings renders degraded-load warnings, one per line.
func RenderWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString("  " + warnStyle.Render("⚠ "+w) + "\n")
	}
	return b.String()
}

// RenderSaved confirms where a snapshot or report landed.
func RenderSaved(what, path string) string {
	return "  " + okStyle.Render("✓") + " " + what + " " + dimStyle.Render(path) + "\n"
}

func statusColor(s domain.Status) lipgloss.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return fg
}
