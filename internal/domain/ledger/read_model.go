package ledger

import (
	"sort"
	"time"

	"winnet_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MonthlyCashFlow aggregates confirmed ledger lines for one calendar month.
type MonthlyCashFlow struct {
	Month        string          `json:"month"`
	InflowTotal  decimal.Decimal `json:"inflow_total"`
	OutflowTotal decimal.Decimal `json:"outflow_total"`
	Balance      decimal.Decimal `json:"balance"`
}

// KPIs is the dashboard summary of the ledger.
type KPIs struct {
	InflowsThisMonth     decimal.Decimal `json:"inflows_this_month"`
	OutflowsThisMonth    decimal.Decimal `json:"outflows_this_month"`
	PendingSalesTotal    decimal.Decimal `json:"pending_sales_total"`
	PendingPaymentsCount int             `json:"pending_payments_count"`
	InflowsTotal         decimal.Decimal `json:"inflows_total"`
	OutflowsTotal        decimal.Decimal `json:"outflows_total"`
}

func (k KPIs) Balance() decimal.Decimal {
	return k.InflowsTotal.Sub(k.OutflowsTotal)
}

// PendingFinancial is one sale that still needs financial follow-up.
type PendingFinancial struct {
	SaleID        string                 `json:"sale_id"`
	Total         decimal.Decimal        `json:"total"`
	SaleStatus    entities.SaleStatus    `json:"sale_status"`
	PaymentStatus entities.PaymentStatus `json:"payment_status,omitempty"`
	PaymentMethod string                 `json:"payment_method"`
	PaymentDate   *time.Time             `json:"payment_date,omitempty"`
	EntryStatus   entities.EntryStatus   `json:"entry_status,omitempty"`
	QuoteNumber   string                 `json:"quote_number"`
	ClientName    string                 `json:"client_name"`
	SaleDate      time.Time              `json:"sale_date"`
}

// PendingLimit caps the pending list the same way the dashboard does.
const PendingLimit = 50

// CashFlowByMonth returns the last `months` calendar months, most recent
// first, months without movement included as zeros. Only confirmed lines count.
func CashFlowByMonth(entries []entities.FinancialEntry, now time.Time, months int) []MonthlyCashFlow {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]MonthlyCashFlow, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		key := first.AddDate(0, -i, 0).Format(monthLayout)
		out[i] = MonthlyCashFlow{Month: key, InflowTotal: decimal.Zero, OutflowTotal: decimal.Zero, Balance: decimal.Zero}
		index[key] = i
	}

	for _, e := range entries {
		if e.Status != entities.EntryStatusConfirmed {
			continue
		}
		i, ok := index[e.EntryDate.UTC().Format(monthLayout)]
		if !ok {
			continue
		}
		switch e.Type {
		case entities.EntryTypeInflow:
			out[i].InflowTotal = out[i].InflowTotal.Add(e.Amount)
		case entities.EntryTypeOutflow:
			out[i].OutflowTotal = out[i].OutflowTotal.Add(e.Amount)
		}
	}
	for i := range out {
		out[i].Balance = out[i].InflowTotal.Sub(out[i].OutflowTotal)
	}
	return out
}

func ComputeKPIs(entries []entities.FinancialEntry, sales []entities.Sale, payments []entities.Payment, now time.Time) KPIs {
	k := KPIs{
		InflowsThisMonth:  decimal.Zero,
		OutflowsThisMonth: decimal.Zero,
		PendingSalesTotal: decimal.Zero,
		InflowsTotal:      decimal.Zero,
		OutflowsTotal:     decimal.Zero,
	}
	current := now.UTC().Format(monthLayout)

	for _, e := range entries {
		if e.Status != entities.EntryStatusConfirmed {
			continue
		}
		thisMonth := e.EntryDate.UTC().Format(monthLayout) == current
		switch e.Type {
		case entities.EntryTypeInflow:
			k.InflowsTotal = k.InflowsTotal.Add(e.Amount)
			if thisMonth {
				k.InflowsThisMonth = k.InflowsThisMonth.Add(e.Amount)
			}
		case entities.EntryTypeOutflow:
			k.OutflowsTotal = k.OutflowsTotal.Add(e.Amount)
			if thisMonth {
				k.OutflowsThisMonth = k.OutflowsThisMonth.Add(e.Amount)
			}
		}
	}
	for _, s := range sales {
		if s.Status == entities.SaleStatusPending {
			k.PendingSalesTotal = k.PendingSalesTotal.Add(s.Total)
		}
	}
	for _, p := range payments {
		if p.Status == entities.PaymentStatusPending {
			k.PendingPaymentsCount++
		}
	}
	return k
}

// PendingInputs bundles the collections joined by PendingFinancials.
type PendingInputs struct {
	Sales    []entities.Sale
	Payments []entities.Payment
	Entries  []entities.FinancialEntry
	Quotes   map[string]entities.Quote
	Clients  map[string]entities.Client
}

// PendingFinancials lists non-cancelled sales whose sale, payment or inflow
// entry is still pending, newest sale first.
func PendingFinancials(in PendingInputs) []PendingFinancial {
	latestPayment := make(map[string]entities.Payment)
	for _, p := range in.Payments {
		if cur, ok := latestPayment[p.SaleID]; !ok || p.CreatedAt.After(cur.CreatedAt) {
			latestPayment[p.SaleID] = p
		}
	}
	pendingPayment := make(map[string]bool)
	for _, p := range in.Payments {
		if p.Status == entities.PaymentStatusPending {
			pendingPayment[p.SaleID] = true
		}
	}
	entryStatus := make(map[string]entities.EntryStatus)
	for _, e := range in.Entries {
		if e.SaleID == "" || e.Type != entities.EntryTypeInflow {
			continue
		}
		if cur, ok := entryStatus[e.SaleID]; !ok || cur != entities.EntryStatusPending {
			entryStatus[e.SaleID] = e.Status
		}
	}

	rows := make([]PendingFinancial, 0)
	for _, s := range in.Sales {
		if s.Status == entities.SaleStatusCancelled {
			continue
		}
		if s.Status != entities.SaleStatusPending && !pendingPayment[s.ID] && entryStatus[s.ID] != entities.EntryStatusPending {
			continue
		}

		row := PendingFinancial{
			SaleID:        s.ID,
			Total:         s.Total,
			SaleStatus:    s.Status,
			PaymentMethod: s.PaymentMethod,
			EntryStatus:   entryStatus[s.ID],
			SaleDate:      s.SaleDate,
		}
		if p, ok := latestPayment[s.ID]; ok {
			row.PaymentStatus = p.Status
			row.PaymentMethod = p.Method
			if !p.PaymentDate.IsZero() {
				d := p.PaymentDate
				row.PaymentDate = &d
			}
		}
		if q, ok := in.Quotes[s.QuoteID]; ok {
			row.QuoteNumber = q.Number
			row.ClientName = in.Clients[q.ClientID].Name
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SaleDate.After(rows[j].SaleDate)
	})
	if len(rows) > PendingLimit {
		rows = rows[:PendingLimit]
	}
	return rows
}
