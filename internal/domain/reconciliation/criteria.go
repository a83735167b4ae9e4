package reconciliation

import (
	"strings"
	"time"
)

// FilterMode selects which categorical dimension FilterValue is matched
// against.
type FilterMode string

const (
	// FilterModeStatus matches the entry status of payments or the derived
	// reconciliation status of summaries
	FilterModeStatus FilterMode = "status"
	// FilterModeMethod matches the payment method
	FilterModeMethod FilterMode = "method"
	// FilterModeBucket matches the derived ongoing/completed/over_budget
	// bucket computed from amounts
	FilterModeBucket FilterMode = "bucket"
)

// FilterValueAll is the sentinel filter value that keeps every item
const FilterValueAll = "all"

// Bucket values for FilterModeBucket
const (
	BucketOngoing    = "ongoing"     // paid < agreed
	BucketCompleted  = "completed"   // paid == agreed, exact
	BucketOverBudget = "over_budget" // paid > agreed
)

// SortKey selects the field collections are ordered by
type SortKey string

const (
	SortKeyName   SortKey = "name"
	SortKeyAmount SortKey = "amount"
	SortKeyDate   SortKey = "date"
	SortKeyStatus SortKey = "status"
	SortKeyMethod SortKey = "method"
)

// IsValid checks if the sort key is recognized
func (k SortKey) IsValid() bool {
	switch k {
	case SortKeyName, SortKeyAmount, SortKeyDate, SortKeyStatus, SortKeyMethod:
		return true
	}
	return false
}

// IsValid checks if the filter mode is recognized
func (m FilterMode) IsValid() bool {
	switch m {
	case FilterModeStatus, FilterModeMethod, FilterModeBucket:
		return true
	}
	return false
}

// ParseSortKey maps an externally supplied token to a SortKey, falling back
// to the given default for unrecognized tokens. Stale UI state must never
// crash presentation, so unknown tokens are not an error.
func ParseSortKey(token string, fallback SortKey) SortKey {
	k := SortKey(strings.ToLower(strings.TrimSpace(token)))
	if k.IsValid() {
		return k
	}
	return fallback
}

// ParseFilterMode maps an externally supplied token to a FilterMode, falling
// back to the given default for unrecognized tokens.
func ParseFilterMode(token string, fallback FilterMode) FilterMode {
	m := FilterMode(strings.ToLower(strings.TrimSpace(token)))
	if m.IsValid() {
		return m
	}
	return fallback
}

// Criteria is the plain configuration value driving one pipeline run. Zero
// values are safe: empty search keeps everything, empty or "all" filter
// value keeps everything, nil date bounds impose no constraint, and an
// unrecognized sort key falls back to the shape's default.
type Criteria struct {
	SearchTerm    string
	FilterMode    FilterMode
	FilterValue   string
	SortKey       SortKey
	SortAscending bool
	DateFrom      *time.Time // payments only, inclusive
	DateTo        *time.Time // payments only, inclusive
}

// DefaultPaymentCriteria returns the criteria the payments view starts with:
// everything, date ascending.
func DefaultPaymentCriteria() Criteria {
	return Criteria{
		FilterValue:   FilterValueAll,
		SortKey:       SortKeyDate,
		SortAscending: true,
	}
}

// DefaultSummaryCriteria returns the criteria the summaries view starts
// with: everything, customer name ascending.
func DefaultSummaryCriteria() Criteria {
	return Criteria{
		FilterValue:   FilterValueAll,
		SortKey:       SortKeyName,
		SortAscending: true,
	}
}

// filterIsNoop reports whether the categorical filter stage keeps everything
func (c Criteria) filterIsNoop() bool {
	v := strings.ToLower(strings.TrimSpace(c.FilterValue))
	return v == "" || v == FilterValueAll
}

// normalizedFilterValue returns the filter value lowered and trimmed
func (c Criteria) normalizedFilterValue() string {
	return strings.ToLower(strings.TrimSpace(c.FilterValue))
}
