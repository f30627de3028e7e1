package application_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washline/washline/internal/adapters/outbound/ledger"
	"github.com/washline/washline/internal/adapters/outbound/store"
	"github.com/washline/washline/internal/application"
)

func TestReportService_GenerateSummary(t *testing.T) {
	cfg := testConfig(t)
	cfg.Rates.Wash = 20
	svc := newService(t, cfg)
	_, err := svc.Add("Maria Santos", "0917", 5.0, "wash")
	require.NoError(t, err)

	st := store.New(cfg.OrdersPath(), cfg.FallbackOrdersPath())
	reports := application.NewReportService(st, ledger.New(cfg), cfg)

	path, warnings, err := reports.GenerateSummary()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Maria Santos")
	assert.Contains(t, string(data), "100.00")
}

func TestReportService_GenerateSummary_EmptyStore(t *testing.T) {
	cfg := testConfig(t)
	st := store.New(cfg.OrdersPath(), cfg.FallbackOrdersPath())
	reports := application.NewReportService(st, ledger.New(cfg), cfg)

	path, warnings, err := reports.GenerateSummary()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GRAND TOTAL")
}
