package domain

import "strings"

// ServiceCategory names one of the offered laundry services.
type ServiceCategory string

const (
	ServiceWash  ServiceCategory = "wash"
	ServiceDry   ServiceCategory = "dry"
	ServiceFold  ServiceCategory = "fold"
	ServiceCombo ServiceCategory = "combo"
)

// ValidServices enumerates all recognized service categories.
var ValidServices = []ServiceCategory{
	ServiceWash, ServiceDry, ServiceFold, ServiceCombo,
}

// NormalizeService case-folds a raw category string and reports whether it
// names a recognized service. All category comparison in the system goes
// through this; matching anywhere else risks the silent zero-fee path in
// FeeSchedule.Fee.
func NormalizeService(raw string) (ServiceCategory, bool) {
	c := ServiceCategory(strings.ToLower(strings.TrimSpace(raw)))
	for _, v := range ValidServices {
		if c == v {
			return v, true
		}
	}
	return "", false
}

// IsValidService reports whether raw names a recognized service category,
// ignoring case.
func IsValidService(raw string) bool {
	_, ok := NormalizeService(raw)
	return ok
}

// FeeSchedule maps each service category to a per-kilogram rate in pesos.
// A schedule is fixed for the process lifetime; rates come from config at
// startup.
type FeeSchedule struct {
	Wash  float64
	Dry   float64
	Fold  float64
	Combo float64
}

// DefaultFees returns the standard shop rates.
func DefaultFees() FeeSchedule {
	return FeeSchedule{Wash: 20, Dry: 25, Fold: 15, Combo: 50}
}

// Rate returns the per-kilogram rate for a category, or 0 if the category is
// not recognized. Callers must validate categories up front; the zero return
// is a permissive default, not a validation signal.
func (f FeeSchedule) Rate(category string) float64 {
	c, ok := NormalizeService(category)
	if !ok {
		return 0
	}
	switch c {
	case ServiceWash:
		return f.Wash
	case ServiceDry:
		return f.Dry
	case ServiceFold:
		return f.Fold
	case ServiceCombo:
		return f.Combo
	}
	return 0
}

// Fee computes the charge for a load: weight times the category rate.
func (f FeeSchedule) Fee(weightKg float64, category string) float64 {
	return weightKg * f.Rate(category)
}
