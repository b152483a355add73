package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryTypeInflow  EntryType = "inflow"
	EntryTypeOutflow EntryType = "outflow"
)

type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "pending"
	EntryStatusConfirmed EntryStatus = "confirmed"
	EntryStatusCancelled EntryStatus = "cancelled"
)

const SalesCategory = "Sales"

// FinancialEntry is one ledger line. SaleID is empty for manual expenses.
type FinancialEntry struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"sale_id,omitempty"`
	Type        EntryType       `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Status      EntryStatus     `json:"status"`
	EntryDate   time.Time       `json:"entry_date"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// InflowEntryIDForQuote is the deterministic id of the inflow entry derived
// from an approved quote.
func InflowEntryIDForQuote(quoteID string) string {
	return uuid.NewSHA1(cascadeNamespace, []byte("entry:"+quoteID)).String()
}
