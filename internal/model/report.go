package model

// UncategorizedLabel is the sentinel name used for transactions with no
// category reference in grouped reports.
const UncategorizedLabel = "Uncategorized"

// MonthLayout is the year-month key format used by monthly totals.
const MonthLayout = "2006-01"

// Balance summarizes the active transaction set by type.
type Balance struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
}

// CategoryTotal is one row of a per-category sum.
type CategoryTotal struct {
	Category string
	Total    float64
}

// MonthTotal is one row of a per-month sum, keyed "YYYY-MM".
type MonthTotal struct {
	Month string
	Total float64
}
