package ledger

import (
	"time"

	"winnet_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type MonthlyReport struct {
	Period        string          `json:"period"`
	TotalInflows  decimal.Decimal `json:"total_inflows"`
	TotalOutflows decimal.Decimal `json:"total_outflows"`
	Transactions  int             `json:"transactions"`
	ActiveClients int             `json:"active_clients"`
}

// ParseMonth validates a "YYYY-MM" period and returns its [start, end) range.
func ParseMonth(period string) (time.Time, time.Time, error) {
	start, err := time.Parse(monthLayout, period)
	if err != nil {
		return time.Time{}, time.Time{}, entities.NewValidationError("month", "must be formatted as YYYY-MM")
	}
	return start, start.AddDate(0, 1, 0), nil
}

// BuildMonthlyReport summarises the non-cancelled lines of one month. Active
// clients are the distinct clients behind the month's sale-linked lines.
func BuildMonthlyReport(period string, entries []entities.FinancialEntry, sales map[string]entities.Sale, quotes map[string]entities.Quote) MonthlyReport {
	r := MonthlyReport{Period: period, TotalInflows: decimal.Zero, TotalOutflows: decimal.Zero}
	clients := make(map[string]struct{})

	for _, e := range entries {
		if e.Status == entities.EntryStatusCancelled {
			continue
		}
		r.Transactions++
		switch e.Type {
		case entities.EntryTypeInflow:
			r.TotalInflows = r.TotalInflows.Add(e.Amount)
		case entities.EntryTypeOutflow:
			r.TotalOutflows = r.TotalOutflows.Add(e.Amount)
		}
		if e.SaleID == "" {
			continue
		}
		if q, ok := quotes[sales[e.SaleID].QuoteID]; ok && q.ClientID != "" {
			clients[q.ClientID] = struct{}{}
		}
	}
	r.ActiveClients = len(clients)
	return r
}
