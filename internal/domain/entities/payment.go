package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is one installment received (or expected) for a sale.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (sale_id-index): sale_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the payment provider response for traceability.
//   - ProviderPayload is the parsed representation, when it parses.
type Payment struct {
	ID               string          `json:"id"`
	SaleID           string          `json:"sale_id"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	PaymentDate      time.Time       `json:"payment_date"`
	Method           string          `json:"method"`
	InstallmentNum   int             `json:"installment_num"`
	InstallmentTotal int             `json:"installment_total"`
	Status           PaymentStatus   `json:"status"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
