// Package report reshapes grouped ledger sums into chart-ready series.
// It performs no querying of its own; the storage layer produces the
// rows and this package only changes their shape for display.
package report

import (
	"fmt"

	"github.com/gastos-cli/gastos/internal/model"
)

// Series is an ordered label/value pairing shared by categorical
// (bar, pie) and temporal (line) charts. Labels[i] corresponds to
// Values[i]; order is whatever the producing query guaranteed.
type Series struct {
	Labels []string
	Values []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Labels)
}

// Max returns the largest value in the series, or zero when empty.
func (s Series) Max() float64 {
	var max float64
	for _, v := range s.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// Total returns the sum of all values in the series.
func (s Series) Total() float64 {
	var total float64
	for _, v := range s.Values {
		total += v
	}
	return total
}

// CategorySeries reshapes per-category totals into a categorical series,
// preserving the descending-by-total order of the rows.
func CategorySeries(totals []model.CategoryTotal) Series {
	s := Series{
		Labels: make([]string, 0, len(totals)),
		Values: make([]float64, 0, len(totals)),
	}
	for _, row := range totals {
		s.Labels = append(s.Labels, row.Category)
		s.Values = append(s.Values, row.Total)
	}
	return s
}

// MonthlySeries reshapes per-month totals into a temporal series,
// preserving chronological order. The series is sparse: months without
// transactions are absent, and gap filling is left to the renderer.
func MonthlySeries(totals []model.MonthTotal) Series {
	s := Series{
		Labels: make([]string, 0, len(totals)),
		Values: make([]float64, 0, len(totals)),
	}
	for _, row := range totals {
		s.Labels = append(s.Labels, row.Month)
		s.Values = append(s.Values, row.Total)
	}
	return s
}

// BalanceRows flattens a balance summary into display rows.
func BalanceRows(b model.Balance) []model.CategoryTotal {
	return []model.CategoryTotal{
		{Category: "Income", Total: b.TotalIncome},
		{Category: "Expense", Total: b.TotalExpense},
		{Category: "Balance", Total: b.Balance},
	}
}

// FormatAmount renders a numeric value for display with two decimals.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
