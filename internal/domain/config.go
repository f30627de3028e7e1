package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	ordersFileName   = "laundry_orders.csv"
	ledgerFilePrefix = "sales_report_"
	summaryPrefix    = "sales_summary_"
)

// Config holds shop configuration loaded from .washline.yaml.
type Config struct {
	// DataDir is where the order snapshot, ledgers, and summaries live.
	DataDir string `yaml:"data_dir"`
	// FallbackDir receives the order snapshot when DataDir is not writable.
	FallbackDir string `yaml:"fallback_dir"`
	// StrictStatus enforces the lifecycle transition table. Set false to
	// accept any status label, as the legacy system did.
	StrictStatus bool       `yaml:"strict_status"`
	Rates        RateConfig `yaml:"rates"`
}

// RateConfig carries the per-kilogram rates for each service.
type RateConfig struct {
	Wash  float64 `yaml:"wash"`
	Dry   float64 `yaml:"dry"`
	Fold  float64 `yaml:"fold"`
	Combo float64 `yaml:"combo"`
}

// DefaultConfig returns the configuration used when no config file exists:
// data in the working directory, fallback under the user's home, strict
// lifecycle checking, standard rates.
func DefaultConfig() Config {
	fallback := os.TempDir()
	if home, err := os.UserHomeDir(); err == nil {
		fallback = filepath.Join(home, ".washline")
	}
	fees := DefaultFees()
	return Config{
		DataDir:      ".",
		FallbackDir:  fallback,
		StrictStatus: true,
		Rates: RateConfig{
			Wash:  fees.Wash,
			Dry:   fees.Dry,
			Fold:  fees.Fold,
			Combo: fees.Combo,
		},
	}
}

// Validate catches unusable values before any file is touched.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.FallbackDir == "" {
		return fmt.Errorf("fallback_dir must not be empty")
	}
	for name, rate := range map[string]float64{
		"wash": c.Rates.Wash, "dry": c.Rates.Dry,
		"fold": c.Rates.Fold, "combo": c.Rates.Combo,
	} {
		if rate < 0 {
			return fmt.Errorf("rates.%s must not be negative", name)
		}
	}
	return nil
}

// FeeSchedule builds the process-lifetime fee schedule from the configured
// rates.
func (c Config) FeeSchedule() FeeSchedule {
	return FeeSchedule{
		Wash:  c.Rates.Wash,
		Dry:   c.Rates.Dry,
		Fold:  c.Rates.Fold,
		Combo: c.Rates.Combo,
	}
}

// OrdersPath is the primary location of the order snapshot.
func (c Config) OrdersPath() string {
	return filepath.Join(c.DataDir, ordersFileName)
}

// FallbackOrdersPath is where the snapshot goes when the primary write is
// denied.
func (c Config) FallbackOrdersPath() string {
	return filepath.Join(c.FallbackDir, ordersFileName)
}

// LedgerPath is the sales ledger file for the given day.
func (c Config) LedgerPath(day time.Time) string {
	return filepath.Join(c.DataDir, ledgerFilePrefix+day.Format("2006-01-02")+".csv")
}

// SummaryPath is a fresh summary artifact name for the given moment.
func (c Config) SummaryPath(at time.Time) string {
	return filepath.Join(c.DataDir, summaryPrefix+at.Format("20060102_150405")+".txt")
}
