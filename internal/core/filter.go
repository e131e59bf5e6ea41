package core

import (
	"strings"
	"time"
)

// DonorFilter narrows a donor listing. Nil fields are not applied; the
// remaining ones are combined with AND and all bounds are inclusive.
type DonorFilter struct {
	Name      *string
	MinAmount *Money
	MaxAmount *Money
	DateFrom  *time.Time
	DateTo    *time.Time
}

// IsEmpty reports whether no criterion is set.
func (f DonorFilter) IsEmpty() bool {
	return f.Name == nil && f.MinAmount == nil && f.MaxAmount == nil && f.DateFrom == nil && f.DateTo == nil
}

// Matches evaluates the filter in memory with the same semantics as the SQL
// predicates: case-insensitive substring on name, inclusive bounds elsewhere.
func (f DonorFilter) Matches(d Donor) bool {
	if f.Name != nil && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(*f.Name)) {
		return false
	}
	if f.MinAmount != nil && d.DonationAmount.Cmp(*f.MinAmount) < 0 {
		return false
	}
	if f.MaxAmount != nil && d.DonationAmount.Cmp(*f.MaxAmount) > 0 {
		return false
	}
	if f.DateFrom != nil && d.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && d.Date.After(*f.DateTo) {
		return false
	}
	return true
}
