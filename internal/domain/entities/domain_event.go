package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventQuoteApproved     EventType = "quote.approved"
	EventQuoteRejected     EventType = "quote.rejected"
	EventFollowUpScheduled EventType = "quote.follow_up_scheduled"
	EventSaleCreated       EventType = "sale.created"
	EventSaleConfirmed     EventType = "sale.confirmed"
	EventSaleCancelled     EventType = "sale.cancelled"
	EventPaymentConfirmed  EventType = "payment.confirmed"
	EventOutflowRecorded   EventType = "ledger.outflow_recorded"
	EventCascadeReconciled EventType = "cascade.reconciled"
)

// DomainEvent is what use cases emit after a successful write. Subscribers
// (notifications, audit, cross-process fan-out) never affect the write.
type DomainEvent struct {
	Type       EventType       `json:"type"`
	QuoteID    string          `json:"quote_id,omitempty"`
	SaleID     string          `json:"sale_id,omitempty"`
	EntryID    string          `json:"entry_id,omitempty"`
	UserID     string          `json:"user_id,omitempty"`
	ClientName string          `json:"client_name,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
