package ledger

import (
	"math"
	"time"

	"winnet_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	// HistoryWindow is how many recent months feed the averages.
	HistoryWindow = 6
	// ProjectionHorizon is how many months ahead are projected.
	ProjectionHorizon = 12
	monthLayout       = "2006-01"
)

var (
	criticalBalance  = decimal.NewFromInt(-10000)
	outflowInflation = decimal.RequireFromString("1.05")
)

type ProjectionStatus string

const (
	ProjectionPositive ProjectionStatus = "positive"
	ProjectionNegative ProjectionStatus = "negative"
	ProjectionCritical ProjectionStatus = "critical"
)

type Projection struct {
	Month            string           `json:"month"`
	ProjectedInflow  decimal.Decimal  `json:"projected_inflow"`
	ProjectedOutflow decimal.Decimal  `json:"projected_outflow"`
	ProjectedBalance decimal.Decimal  `json:"projected_balance"`
	Status           ProjectionStatus `json:"status"`
}

// Seasonality is the inflow factor for a calendar month.
func Seasonality(month time.Month) float64 {
	idx := int(month) - 1
	return 1 + math.Sin(float64(idx+1)*math.Pi/6)*0.1
}

func StatusForBalance(balance decimal.Decimal) ProjectionStatus {
	switch {
	case balance.LessThan(criticalBalance):
		return ProjectionCritical
	case balance.IsNegative():
		return ProjectionNegative
	}
	return ProjectionPositive
}

// Project extrapolates the next ProjectionHorizon months from history, which
// must be ordered most recent month first. Only now's calendar month is read
// from the clock argument, so equal inputs give equal outputs.
func Project(history []MonthlyCashFlow, now time.Time) []Projection {
	window := history
	if len(window) > HistoryWindow {
		window = window[:HistoryWindow]
	}

	avgInflow, avgOutflow := decimal.Zero, decimal.Zero
	if n := len(window); n > 0 {
		for _, m := range window {
			avgInflow = avgInflow.Add(m.InflowTotal)
			avgOutflow = avgOutflow.Add(m.OutflowTotal)
		}
		count := decimal.NewFromInt(int64(n))
		avgInflow = avgInflow.Div(count)
		avgOutflow = avgOutflow.Div(count)
	}

	projectedOutflow := entities.RoundMoney(avgOutflow.Mul(outflowInflation))
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	out := make([]Projection, 0, ProjectionHorizon)
	for i := 1; i <= ProjectionHorizon; i++ {
		month := first.AddDate(0, i, 0)
		inflow := entities.RoundMoney(avgInflow.Mul(decimal.NewFromFloat(Seasonality(month.Month()))))
		balance := inflow.Sub(projectedOutflow)
		out = append(out, Projection{
			Month:            month.Format(monthLayout),
			ProjectedInflow:  inflow,
			ProjectedOutflow: projectedOutflow,
			ProjectedBalance: balance,
			Status:           StatusForBalance(balance),
		})
	}
	return out
}
