package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/washline/washline/internal/domain"
)

// header is the snapshot column order. It is fixed; changing it breaks
// files written by earlier versions.
var header = []string{"OrderID", "Name", "Contact", "Weight", "Service", "Status"}

// CSVStore is a file-based implementation of domain.OrderStore. The snapshot
// is a small CSV rewritten whole on every save; fields are quoted, so names
// containing commas survive the round trip.
type CSVStore struct {
	primaryPath  string
	fallbackPath string
}

// New creates a store writing to primaryPath, falling back to fallbackPath
// when the primary location denies the write.
func New(primaryPath, fallbackPath string) *CSVStore {
	return &CSVStore{primaryPath: primaryPath, fallbackPath: fallbackPath}
}

// Save writes the full snapshot, overwriting any existing file. The data is
// encoded fully in memory and written to a temp file that replaces the
// target, so a failed save never truncates a valid existing snapshot. On a
// permission failure the write is retried once at the fallback path. Returns
// the path the snapshot landed on.
func (s *CSVStore) Save(orders []domain.Order) (string, error) {
	data, err := encode(orders)
	if err != nil {
		return "", err
	}

	if err := writeAtomic(s.primaryPath, data); err != nil {
		if !errors.Is(err, os.ErrPermission) {
			return "", fmt.Errorf("saving orders to %s: %w", s.primaryPath, err)
		}
		if err := writeAtomic(s.fallbackPath, data); err != nil {
			return "", fmt.Errorf("saving orders to fallback %s: %w", s.fallbackPath, err)
		}
		return s.fallbackPath, nil
	}
	return s.primaryPath, nil
}

// Load reads the snapshot line by line, recovering every parsable order.
// An absent or unopenable file yields an empty result; a corrupt row is
// skipped with a warning and never aborts the load.
func (s *CSVStore) Load() ([]domain.Order, []string) {
	f, err := os.Open(s.primaryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no snapshot yet is not an error
		}
		return nil, []string{fmt.Sprintf("cannot open %s: %v; starting with an empty queue", s.primaryPath, err)}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true // legacy files were written unquoted

	var (
		orders   []domain.Order
		warnings []string
		line     int
	)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: unreadable row skipped: %v", line, err))
			continue
		}
		if line == 1 {
			continue // header
		}
		if len(row) < 6 {
			continue
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: bad order ID %q, row skipped", line, row[0]))
			continue
		}
		weight, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: bad weight %q, row skipped", line, row[3]))
			continue
		}

		service := domain.ServiceCategory(row[4])
		if normalized, ok := domain.NormalizeService(row[4]); ok {
			service = normalized
		}
		orders = append(orders, domain.Order{
			ID:       id,
			Customer: domain.Customer{Name: row[1], Contact: row[2]},
			WeightKg: weight,
			Service:  service,
			// persisted label is kept verbatim, bypassing the
			// "For Washing" default for fresh orders
			Status: domain.Status(row[5]),
		})
	}
	return orders, warnings
}

// Delete removes the persisted snapshot if present.
func (s *CSVStore) Delete() error {
	if err := os.Remove(s.primaryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", s.primaryPath, err)
	}
	return nil
}

func encode(orders []domain.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, o := range orders {
		row := []string{
			strconv.Itoa(o.ID),
			o.Customer.Name,
			o.Customer.Contact,
			strconv.FormatFloat(o.WeightKg, 'f', 2, 64),
			string(o.Service),
			string(o.Status),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAtomic writes data to a sibling temp file and renames it over path,
// creating directories as needed.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
