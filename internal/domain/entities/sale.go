package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusConfirmed SaleStatus = "confirmed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

const DefaultPaymentMethod = "unspecified"

// cascadeNamespace seeds the name-based ids derived from a quote id.
var cascadeNamespace = uuid.MustParse("5d8a3c1e-9b27-4f0e-8c61-2e4b7a9d0f13")

// Sale is created from an approved quote. Total is a snapshot of the quote
// total at creation time.
//
// Storage model (DynamoDB):
//   - PK: id, always SaleIDForQuote(quote_id), which makes quote_id unique
type Sale struct {
	ID            string          `json:"id"`
	QuoteID       string          `json:"quote_id"`
	SaleDate      time.Time       `json:"sale_date"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Status        SaleStatus      `json:"status"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleIDForQuote is the idempotency key of the approval cascade: one quote,
// one sale id, whoever writes it first.
func SaleIDForQuote(quoteID string) string {
	return uuid.NewSHA1(cascadeNamespace, []byte("sale:"+quoteID)).String()
}
