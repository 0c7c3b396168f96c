package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gastos-cli/gastos/internal/model"
)

func TestSeries(t *testing.T) {
	s := Series{
		Labels: []string{"Comida", "Transporte"},
		Values: []float64{500, 200},
	}

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 500.0, s.Max())
	assert.Equal(t, 700.0, s.Total())

	t.Run("empty series", func(t *testing.T) {
		var empty Series
		assert.Equal(t, 0, empty.Len())
		assert.Equal(t, 0.0, empty.Max())
		assert.Equal(t, 0.0, empty.Total())
	})
}

func TestCategorySeries(t *testing.T) {
	totals := []model.CategoryTotal{
		{Category: "Comida", Total: 500},
		{Category: "Transporte", Total: 200},
		{Category: model.UncategorizedLabel, Total: 50},
	}

	s := CategorySeries(totals)
	assert.Equal(t, []string{"Comida", "Transporte", model.UncategorizedLabel}, s.Labels)
	assert.Equal(t, []float64{500, 200, 50}, s.Values)
}

func TestMonthlySeries(t *testing.T) {
	totals := []model.MonthTotal{
		{Month: "2025-01", Total: 75},
		{Month: "2025-03", Total: 100},
	}

	s := MonthlySeries(totals)
	assert.Equal(t, []string{"2025-01", "2025-03"}, s.Labels)
	assert.Equal(t, []float64{75, 100}, s.Values)
}

func TestBalanceRows(t *testing.T) {
	rows := BalanceRows(model.Balance{TotalIncome: 3000, TotalExpense: 700, Balance: 2300})

	assert.Equal(t, []model.CategoryTotal{
		{Category: "Income", Total: 3000},
		{Category: "Expense", Total: 700},
		{Category: "Balance", Total: 2300},
	}, rows)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2300.00", FormatAmount(2300))
	assert.Equal(t, "0.50", FormatAmount(0.5))
	assert.Equal(t, "-200.00", FormatAmount(-200))
}
