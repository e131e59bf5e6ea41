// Package dashboard derives the figures shown on the dashboard page from the
// summary and record lists. Everything here is a pure function of its inputs.
package dashboard

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"festival/internal/core"
)

const (
	TopDonorCount      = 6
	RecentDonorCount   = 6
	RecentExpenseCount = 10

	// Trend chart viewBox.
	TrendWidth  = 100.0
	TrendHeight = 40.0
	trendSpan   = 35.0
	trendPad    = 2.0
)

// DonorAmount is one row of the top donors list.
type DonorAmount struct {
	Name   string
	Amount core.Money
}

// Initial is the avatar letter for the row.
func (d DonorAmount) Initial() string {
	for _, r := range d.Name {
		return strings.ToUpper(string(r))
	}
	return "D"
}

type Point struct {
	X, Y float64
}

// Trend is a polyline over donor amounts in list order.
type Trend struct {
	Points []Point
}

func (t Trend) Empty() bool { return len(t.Points) == 0 }

// Polyline formats the points for an SVG points attribute.
func (t Trend) Polyline() string {
	parts := lo.Map(t.Points, func(p Point, _ int) string {
		return formatCoord(p.X) + "," + formatCoord(p.Y)
	})
	return strings.Join(parts, " ")
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}

// View is everything the dashboard template renders.
type View struct {
	Summary   core.Summary
	Donors    []core.Donor
	Expenses  []core.Expense
	Remaining *core.Remaining

	TotalSpent      core.Money
	RemainingAmount core.Money
	SpentPercent    int
	TopDonors       []DonorAmount
	Trend           Trend
	RecentDonors    []core.Donor
	RecentExpenses  []core.Expense
}

// Build computes the view. remaining is optional and may be nil.
func Build(summary core.Summary, donors []core.Donor, expenses []core.Expense, remaining *core.Remaining) View {
	spent := TotalSpent(expenses)
	return View{
		Summary:         summary,
		Donors:          donors,
		Expenses:        expenses,
		Remaining:       remaining,
		TotalSpent:      spent,
		RemainingAmount: Remaining(summary.TotalDonations, spent),
		SpentPercent:    SpentPercent(summary.TotalDonations, spent),
		TopDonors:       TopDonors(donors, TopDonorCount),
		Trend:           BuildTrend(donors),
		RecentDonors:    lo.Subset(donors, 0, RecentDonorCount),
		RecentExpenses:  lo.Subset(expenses, 0, RecentExpenseCount),
	}
}

// TotalSpent sums the listed expenses.
func TotalSpent(expenses []core.Expense) core.Money {
	return lo.Reduce(expenses, func(acc core.Money, e core.Expense, _ int) core.Money {
		return acc.Add(e.Amount)
	}, core.Money{})
}

// Remaining is donations minus spent, floored at zero.
func Remaining(donations, spent core.Money) core.Money {
	left := donations.Sub(spent)
	if left.IsPositive() {
		return left
	}
	return core.Money{}
}

// SpentPercent is spent as a whole percentage of donations, capped at 100.
// It is 0 when there are no donations.
func SpentPercent(donations, spent core.Money) int {
	if !donations.IsPositive() {
		return 0
	}
	pct := math.Floor(spent.Float64()/donations.Float64()*100 + 0.5)
	return int(math.Max(0, math.Min(100, pct)))
}

// TopDonors returns the n largest donations. Equal amounts keep list order.
func TopDonors(donors []core.Donor, n int) []DonorAmount {
	rows := lo.Map(donors, func(d core.Donor, _ int) DonorAmount {
		return DonorAmount{Name: d.Name, Amount: d.DonationAmount}
	})
	slices.SortStableFunc(rows, func(a, b DonorAmount) int {
		return b.Amount.Cmp(a.Amount)
	})
	return lo.Subset(rows, 0, uint(max(n, 0)))
}

// BuildTrend scales donor amounts into the chart viewBox. Amounts are scaled
// against the largest one (at least 1) and spread evenly along x.
func BuildTrend(donors []core.Donor) Trend {
	if len(donors) == 0 {
		return Trend{}
	}
	values := lo.Map(donors, func(d core.Donor, _ int) float64 {
		return d.DonationAmount.Float64()
	})
	top := math.Max(lo.Max(values), 1)
	step := TrendWidth / math.Max(float64(len(values)-1), 1)

	return Trend{Points: lo.Map(values, func(v float64, i int) Point {
		return Point{
			X: float64(i) * step,
			Y: TrendHeight - (v/top)*trendSpan - trendPad,
		}
	})}
}
