package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/washline/washline/internal/domain"
)

// ledgerHeader is the column order of the daily sales file.
var ledgerHeader = []string{"OrderID", "Customer", "Service", "Weight(kg)", "Fee(₱)", "DateCompleted"}

const timestampLayout = "2006-01-02 15:04:05"

// FileLedger implements domain.SalesLedger with one append-only CSV per
// calendar day plus standalone summary files.
type FileLedger struct {
	cfg domain.Config
	now func() time.Time
}

// New creates a ledger writing under the configured data directory.
func New(cfg domain.Config) *FileLedger {
	return &FileLedger{cfg: cfg, now: time.Now}
}

// NewWithClock creates a ledger with an injected clock for tests.
func NewWithClock(cfg domain.Config, now func() time.Time) *FileLedger {
	return &FileLedger{cfg: cfg, now: now}
}

// RecordFinished appends one line for a finished order to today's ledger,
// creating the file with a header row on first use. An existing same-day
// file is never overwritten.
func (l *FileLedger) RecordFinished(o domain.Order, fee float64) error {
	ts := l.now()
	path := l.cfg.LedgerPath(ts)

	if err := os.MkdirAll(l.cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("preparing ledger dir: %w", err)
	}
	if err := ensureHeader(path); err != nil {
		return fmt.Errorf("preparing ledger %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		strconv.Itoa(o.ID),
		o.Customer.Name,
		string(o.Service),
		strconv.FormatFloat(o.WeightKg, 'f', 2, 64),
		strconv.FormatFloat(fee, 'f', 2, 64),
		ts.Format(timestampLayout),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("appending to ledger %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("appending to ledger %s: %w", path, err)
	}
	return nil
}

// Summarize writes a human-readable table of the open orders with projected
// fees and a grand total to a new timestamped file, and returns its path.
// Each call produces a fresh artifact; nothing is overwritten.
func (l *FileLedger) Summarize(orders []domain.Order, fees domain.FeeSchedule) (string, error) {
	at := l.now()
	path := l.cfg.SummaryPath(at)

	var b strings.Builder
	fmt.Fprintf(&b, "Sales Summary — %s\n", at.Format(timestampLayout))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", 62))
	fmt.Fprintf(&b, "%-8s %-20s %-8s %10s %12s\n", "OrderID", "Customer", "Service", "Weight", "Fee(₱)")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 62))

	var total float64
	for _, o := range orders {
		fee := fees.Fee(o.WeightKg, string(o.Service))
		total += fee
		fmt.Fprintf(&b, "%-8d %-20s %-8s %9.2fkg %12.2f\n",
			o.ID, o.Customer.Name, o.Service, o.WeightKg, fee)
	}
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 62))
	fmt.Fprintf(&b, "%-48s %13.2f\n", "GRAND TOTAL", total)

	if err := os.MkdirAll(l.cfg.DataDir, 0755); err != nil {
		return "", fmt.Errorf("preparing summary dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("writing summary %s: %w", path, err)
	}
	return path, nil
}

// ensureHeader creates the file with a header row if it does not exist.
// An existing file is left untouched.
func ensureHeader(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(ledgerHeader); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
