package application

import (
	"fmt"

	"github.com/washline/washline/internal/domain"
)

// ReportService produces sales summaries over the open-order queue.
type ReportService struct {
	store  domain.OrderStore
	ledger domain.SalesLedger
	fees   domain.FeeSchedule
}

// NewReportService creates a report service over the given store and ledger.
func NewReportService(store domain.OrderStore, ledger domain.SalesLedger, cfg domain.Config) *ReportService {
	return &ReportService{store: store, ledger: ledger, fees: cfg.FeeSchedule()}
}

// GenerateSummary loads the current queue and writes a timestamped summary
// of projected fees for every open order. Returns the summary path and any
// warnings from a degraded load.
func (s *ReportService) GenerateSummary() (string, []string, error) {
	orders, warnings := s.store.Load()
	path, err := s.ledger.Summarize(orders, s.fees)
	if err != nil {
		return "", warnings, fmt.Errorf("generating summary: %w", err)
	}
	return path, warnings, nil
}
