package ledger_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washline/washline/internal/adapters/outbound/ledger"
	"github.com/washline/washline/internal/domain"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	return func() time.Time { return at }
}

func newLedger(t *testing.T) (*ledger.FileLedger, domain.Config) {
	t.Helper()
	cfg := domain.DefaultConfig()
	cfg.DataDir = t.TempDir()
	return ledger.NewWithClock(cfg, fixedClock()), cfg
}

func order() domain.Order {
	return domain.Order{
		ID:       7,
		Customer: domain.Customer{Name: "Maria Santos", Contact: "0917"},
		WeightKg: 5,
		Service:  domain.ServiceWash,
		Status:   domain.StatusFinished,
	}
}

func TestFileLedger_RecordFinished_CreatesDailyFileWithHeader(t *testing.T) {
	l, cfg := newLedger(t)

	require.NoError(t, l.RecordFinished(order(), 100))

	data, err := os.ReadFile(cfg.LedgerPath(fixedClock()()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "OrderID,Customer,Service,Weight(kg),Fee(₱),DateCompleted", lines[0])
	assert.Equal(t, "7,Maria Santos,wash,5.00,100.00,2026-08-29 14:30:05", lines[1])
}

func TestFileLedger_RecordFinished_AppendsWithoutRewritingHeader(t *testing.T) {
	l, cfg := newLedger(t)

	require.NoError(t, l.RecordFinished(order(), 100))
	require.NoError(t, l.RecordFinished(order(), 100))

	data, err := os.ReadFile(cfg.LedgerPath(fixedClock()()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "no dedup: two calls produce two ledger lines")
	assert.Equal(t, lines[1], lines[2])
}

func TestFileLedger_Summarize(t *testing.T) {
	l, cfg := newLedger(t)
	orders := []domain.Order{
		{ID: 1, Customer: domain.Customer{Name: "Maria Santos"}, WeightKg: 5, Service: domain.ServiceWash},
		{ID: 2, Customer: domain.Customer{Name: "Jose Cruz"}, WeightKg: 2, Service: domain.ServiceDry},
	}
	fees := domain.FeeSchedule{Wash: 20, Dry: 25, Fold: 15, Combo: 50}

	path, err := l.Summarize(orders, fees)
	require.NoError(t, err)
	assert.Equal(t, cfg.SummaryPath(fixedClock()()), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "Maria Santos")
	assert.Contains(t, content, "100.00")
	assert.Contains(t, content, "50.00")
	assert.Contains(t, content, "GRAND TOTAL")
	assert.Contains(t, content, "150.00")
}

func TestFileLedger_Summarize_EmptyQueue(t *testing.T) {
	l, _ := newLedger(t)

	path, err := l.Summarize(nil, domain.DefaultFees())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GRAND TOTAL")
	assert.Contains(t, string(data), "0.00")
}
