package reconciliation

import (
	"sort"
	"strings"

	"github.com/eventbook/backend/internal/domain/payment"
)

// The filter/sort pipeline applies its stages in a fixed order: text search,
// categorical filter, date range (payments only), stable sort. Later stages
// only see the survivors of earlier ones, and every surface that lists
// payments or summaries goes through the same entry points, so list views,
// dashboards and export all agree on ordering.

// ApplyToPayments runs the pipeline over raw payment records. The input
// slice is never reordered or mutated.
func ApplyToPayments(items []payment.Payment, c Criteria) []payment.Payment {
	out := applySearch(items, c.SearchTerm, paymentSearchFields)
	out = applyCategorical(out, c, paymentMatchesCategory)
	out = applyDateRange(out, c)

	key := c.SortKey
	if !key.IsValid() {
		key = SortKeyDate
	}
	sortStable(out, paymentComparator(key), c.SortAscending)
	return out
}

// ApplyToSummaries runs the pipeline over financial summaries. Date range
// bounds do not apply to summaries and are ignored.
func ApplyToSummaries(items []FinancialSummary, c Criteria) []FinancialSummary {
	out := applySearch(items, c.SearchTerm, summarySearchFields)
	out = applyCategorical(out, c, summaryMatchesCategory)

	key := c.SortKey
	if !key.IsValid() || key == SortKeyMethod {
		// summaries have no single method; stale method tokens fall back
		key = SortKeyName
	}
	sortStable(out, summaryComparator(key), c.SortAscending)
	return out
}

// ---- generic stages ----

func applySearch[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return copySlice(items)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func applyCategorical[T any](items []T, c Criteria, matches func(T, FilterMode, string) bool) []T {
	if c.filterIsNoop() {
		return items
	}
	value := c.normalizedFilterValue()

	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, c.FilterMode, value) {
			out = append(out, item)
		}
	}
	return out
}

func applyDateRange(items []payment.Payment, c Criteria) []payment.Payment {
	if c.DateFrom == nil && c.DateTo == nil {
		return items
	}

	out := make([]payment.Payment, 0, len(items))
	for _, p := range items {
		if c.DateFrom != nil && p.PaymentDate.Before(*c.DateFrom) {
			continue
		}
		if c.DateTo != nil && p.PaymentDate.After(*c.DateTo) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sortStable sorts in place with a stable sort. Descending flips the
// comparator sign only; ties always keep their input order.
func sortStable[T any](items []T, cmp func(a, b T) int, ascending bool) {
	sign := 1
	if !ascending {
		sign = -1
	}
	sort.SliceStable(items, func(i, j int) bool {
		return sign*cmp(items[i], items[j]) < 0
	})
}

func copySlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// ---- payment accessors ----

func paymentSearchFields(p payment.Payment) []string {
	return []string{p.ID.String(), p.EventID.String(), p.PayerName, p.Reference}
}

func paymentMatchesCategory(p payment.Payment, mode FilterMode, value string) bool {
	switch mode {
	case FilterModeMethod:
		return strings.EqualFold(string(p.Method), value)
	case FilterModeStatus:
		return strings.EqualFold(string(p.Status), value)
	default:
		// buckets are defined over aggregates, not single payments; an
		// unrecognized mode degrades to keeping everything
		return true
	}
}

func paymentComparator(key SortKey) func(a, b payment.Payment) int {
	switch key {
	case SortKeyName:
		return func(a, b payment.Payment) int { return compareFold(a.PayerName, b.PayerName) }
	case SortKeyAmount:
		return func(a, b payment.Payment) int { return a.Amount.Cmp(b.Amount) }
	case SortKeyStatus:
		return func(a, b payment.Payment) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case SortKeyMethod:
		return func(a, b payment.Payment) int { return strings.Compare(string(a.Method), string(b.Method)) }
	default:
		return func(a, b payment.Payment) int { return a.PaymentDate.Compare(b.PaymentDate) }
	}
}

// ---- summary accessors ----

func summarySearchFields(s FinancialSummary) []string {
	return []string{s.EventID.String(), s.EventName, s.CustomerName}
}

func summaryMatchesCategory(s FinancialSummary, mode FilterMode, value string) bool {
	switch mode {
	case FilterModeStatus:
		return strings.EqualFold(string(s.Status), value)
	case FilterModeBucket:
		switch value {
		case BucketOngoing:
			return s.TotalPaid.LessThan(s.AgreedAmount)
		case BucketCompleted:
			return s.TotalPaid.Equal(s.AgreedAmount)
		case BucketOverBudget:
			return s.TotalPaid.GreaterThan(s.AgreedAmount)
		default:
			// unknown bucket token keeps everything
			return true
		}
	default:
		// summaries aggregate mixed methods; method filtering degrades to
		// keeping everything
		return true
	}
}

func summaryComparator(key SortKey) func(a, b FinancialSummary) int {
	switch key {
	case SortKeyAmount:
		return func(a, b FinancialSummary) int { return a.AgreedAmount.Cmp(b.AgreedAmount) }
	case SortKeyStatus:
		return func(a, b FinancialSummary) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case SortKeyDate:
		// summaries without payments order after any dated summary
		return func(a, b FinancialSummary) int {
			switch {
			case a.LatestPaymentDate == nil && b.LatestPaymentDate == nil:
				return 0
			case a.LatestPaymentDate == nil:
				return 1
			case b.LatestPaymentDate == nil:
				return -1
			default:
				return a.LatestPaymentDate.Compare(*b.LatestPaymentDate)
			}
		}
	default:
		return func(a, b FinancialSummary) int { return compareFold(a.CustomerName, b.CustomerName) }
	}
}
