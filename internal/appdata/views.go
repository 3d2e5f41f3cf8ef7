package appdata

import (
	"slices"

	"github.com/shopspring/decimal"
)

// NetProfit is total income minus total expenses.
func (r AppRecord) NetProfit() float64 {
	net := decimal.NewFromFloat(r.FinancialSummary.Income).Sub(decimal.NewFromFloat(r.FinancialSummary.Expenses))
	f, _ := net.Float64()
	return f
}

type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CategoryTotals sums amounts per category in order of first appearance.
// A blank category is reported as "Uncategorized".
func CategoryTotals(ts []Transaction) []CategoryTotal {
	index := map[string]int{}
	sums := []decimal.Decimal{}
	names := []string{}
	for _, t := range ts {
		name := t.Category
		if name == "" {
			name = "Uncategorized"
		}
		i, ok := index[name]
		if !ok {
			i = len(names)
			index[name] = i
			names = append(names, name)
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(decimal.NewFromFloat(t.Amount))
	}

	out := make([]CategoryTotal, len(names))
	for i, name := range names {
		v, _ := sums[i].Float64()
		out[i] = CategoryTotal{Name: name, Value: v}
	}
	return out
}

// RecentWins returns up to n wins, newest first.
func (r AppRecord) RecentWins(n int) []Win {
	if n < 0 {
		n = 0
	}
	return slices.Clone(r.Wins[:min(n, len(r.Wins))])
}

// Journey returns the last n daily logs ordered by date.
func (r AppRecord) Journey(n int) []DailyLog {
	dates := make([]string, 0, len(r.DailyLogs))
	for d := range r.DailyLogs {
		dates = append(dates, d)
	}
	slices.Sort(dates)
	if n >= 0 && len(dates) > n {
		dates = dates[len(dates)-n:]
	}

	out := make([]DailyLog, len(dates))
	for i, d := range dates {
		out[i] = r.DailyLogs[d]
	}
	return out
}

// LogFor returns the saved log for date, or an empty one.
func (r AppRecord) LogFor(date string) DailyLog {
	if log, ok := r.DailyLogs[date]; ok {
		return log
	}
	return EmptyLog(date)
}

// Connected lists connected platform names in catalog order where known.
func (r AppRecord) Connected(order []string) []string {
	out := make([]string, 0, len(r.ConnectedPlatforms))
	seen := map[string]bool{}
	for _, name := range order {
		if r.ConnectedPlatforms[name] {
			out = append(out, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range r.ConnectedPlatforms {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}
