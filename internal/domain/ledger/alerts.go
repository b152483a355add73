package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	lowBalanceThreshold   = decimal.NewFromInt(10000)
	pendingSalesThreshold = decimal.NewFromInt(50000)
)

const pendingPaymentsThreshold = 5

// Alerts turns the KPIs and the projection into cash-flow warnings.
func Alerts(k KPIs, projections []Projection) []string {
	alerts := make([]string, 0)

	if k.Balance().LessThan(lowBalanceThreshold) {
		alerts = append(alerts, "Low balance: less than R$ 10,000.00 in cash")
	}
	if k.PendingPaymentsCount > pendingPaymentsThreshold {
		alerts = append(alerts, fmt.Sprintf("%d pending payments", k.PendingPaymentsCount))
	}
	if k.PendingSalesTotal.GreaterThan(pendingSalesThreshold) {
		alerts = append(alerts, "High value in sales pending confirmation")
	}

	critical := 0
	for _, p := range projections {
		if p.Status == ProjectionCritical {
			critical++
		}
	}
	if critical > 0 {
		alerts = append(alerts, fmt.Sprintf("%d months with critical projection", critical))
	}
	return alerts
}
