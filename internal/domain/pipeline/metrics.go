package pipeline

import (
	"time"

	"winnet_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type Metrics struct {
	TotalOpportunities int             `json:"total_opportunities"`
	PipelineValue      decimal.Decimal `json:"pipeline_value"`
	ConversionRate     float64         `json:"conversion_rate"`
	AvgCycleTimeDays   float64         `json:"avg_cycle_time_days"`
	AvgDealSize        decimal.Decimal `json:"avg_deal_size"`
}

// WindowStart returns the start of the trailing twelve calendar months.
func WindowStart(now time.Time) time.Time {
	return now.AddDate(-1, 0, 0)
}

// ComputeMetrics derives funnel-wide figures. board is the full working set;
// recentQuotes and recentSales are the quotes and sales created inside the
// trailing window.
func ComputeMetrics(board []Stage, recentQuotes []entities.Quote, recentSales []entities.Sale) Metrics {
	m := Metrics{PipelineValue: decimal.Zero, AvgDealSize: decimal.Zero}
	for _, stage := range board {
		for _, opp := range stage.Opportunities {
			m.TotalOpportunities++
			m.PipelineValue = m.PipelineValue.Add(opp.Total)
		}
	}
	if m.TotalOpportunities > 0 {
		m.AvgDealSize = entities.RoundMoney(m.PipelineValue.Div(decimal.NewFromInt(int64(m.TotalOpportunities))))
	}

	createdAt := make(map[string]time.Time, len(recentQuotes))
	for _, q := range recentQuotes {
		createdAt[q.ID] = q.CreatedAt
	}

	confirmed := 0
	cycleSum, cycleCount := 0, 0
	for _, s := range recentSales {
		if s.Status != entities.SaleStatusConfirmed {
			continue
		}
		confirmed++
		quoteCreated, ok := createdAt[s.QuoteID]
		if !ok {
			continue
		}
		if days := ceilDays(s.SaleDate.Sub(quoteCreated)); days > 0 {
			cycleSum += days
			cycleCount++
		}
	}

	if len(recentQuotes) > 0 {
		m.ConversionRate = float64(confirmed) / float64(len(recentQuotes)) * 100
	}
	if cycleCount > 0 {
		m.AvgCycleTimeDays = float64(cycleSum) / float64(cycleCount)
	}
	return m
}
