package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a quote (orçamento).
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}

// LineItem belongs to exactly one quote. Total is derived, never trusted from input.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Unit        string          `json:"unit,omitempty"`
	Code        string          `json:"code,omitempty"`
	Total       decimal.Decimal `json:"total"`
}

// Quote is the priced proposal sent to a client.
//
// Invariants kept by ApplyTotals:
//   - Subtotal = sum(quantity * unit_price)
//   - Total = Subtotal - Subtotal*DiscountPercent/100
//
// Version is bumped on every status write so concurrent approvals of the same
// quote cannot both succeed.
type Quote struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	ClientID        string          `json:"client_id"`
	Status          QuoteStatus     `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Total           decimal.Decimal `json:"total"`
	DueDate         time.Time       `json:"due_date"`
	LineItems       []LineItem      `json:"line_items"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	NextContact     *time.Time      `json:"next_contact,omitempty"`
	CreatedBy       string          `json:"created_by"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type QuoteTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals is the pure quote pricing rule. Amounts are rounded to cents
// once, after summing, so totals do not drift with the number of lines.
func ComputeTotals(items []LineItem, discountPercent decimal.Decimal) (QuoteTotals, error) {
	subtotal := decimal.Zero
	for i, it := range items {
		if it.Quantity.IsNegative() {
			return QuoteTotals{}, NewValidationError(fmt.Sprintf("line_items[%d].quantity", i), "must not be negative")
		}
		if it.UnitPrice.IsNegative() {
			return QuoteTotals{}, NewValidationError(fmt.Sprintf("line_items[%d].unit_price", i), "must not be negative")
		}
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}

	subtotal = RoundMoney(subtotal)
	discount := RoundMoney(subtotal.Mul(discountPercent).Div(hundred))
	return QuoteTotals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}, nil
}

// ValidateLineItems enforces the input-boundary rules: at least one line,
// quantity >= 1 and unit price >= 0.
func ValidateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return NewValidationError("line_items", "at least one line item is required")
	}
	one := decimal.NewFromInt(1)
	for i, it := range items {
		if it.Quantity.LessThan(one) {
			return NewValidationError(fmt.Sprintf("line_items[%d].quantity", i), "must be at least 1")
		}
		if it.UnitPrice.IsNegative() {
			return NewValidationError(fmt.Sprintf("line_items[%d].unit_price", i), "must not be negative")
		}
	}
	return nil
}

func ValidateDiscount(discountPercent decimal.Decimal) error {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return NewValidationError("discount_percent", "must be between 0 and 100")
	}
	return nil
}

// ApplyTotals recomputes every line total and the quote totals in place.
func (q *Quote) ApplyTotals() error {
	totals, err := ComputeTotals(q.LineItems, q.DiscountPercent)
	if err != nil {
		return err
	}
	for i := range q.LineItems {
		q.LineItems[i].Total = RoundMoney(q.LineItems[i].Quantity.Mul(q.LineItems[i].UnitPrice))
	}
	q.Subtotal = totals.Subtotal
	q.Total = totals.Total
	return nil
}

// CanTransition guards quote status writes.
//
//   - approved is terminal
//   - rejected can be reopened (draft/sent) but not approved directly
//   - same-status writes are rejected here; callers decide whether that is a no-op
func CanTransition(from, to QuoteStatus) error {
	if !to.Valid() || from == to {
		return ErrInvalidStatusTransition
	}
	switch from {
	case QuoteStatusApproved:
		return ErrInvalidStatusTransition
	case QuoteStatusRejected:
		if to == QuoteStatusApproved {
			return ErrInvalidStatusTransition
		}
	}
	return nil
}
