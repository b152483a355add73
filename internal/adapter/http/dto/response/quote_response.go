package response

import (
	"time"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Unit        string `json:"unit,omitempty"`
	Code        string `json:"code,omitempty"`
	Total       string `json:"total"`
}

type QuoteResponse struct {
	QuoteID         string             `json:"quote_id"`
	ID              string             `json:"id"`
	Number          string             `json:"number"`
	ClientID        string             `json:"client_id"`
	Status          string             `json:"status"`
	Subtotal        string             `json:"subtotal"`
	DiscountPercent string             `json:"discount_percent"`
	Total           string             `json:"total"`
	DueDate         *time.Time         `json:"due_date,omitempty"`
	LineItems       []LineItemResponse `json:"line_items"`
	PaymentMethod   string             `json:"payment_method,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	NextContact     *time.Time         `json:"next_contact,omitempty"`
	CreatedBy       string             `json:"created_by,omitempty"`
	Version         int64              `json:"version"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type TotalsResponse struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

// StageMoveResponse carries the sale too when the move closed the deal.
type StageMoveResponse struct {
	Quote QuoteResponse `json:"quote"`
	Sale  *SaleResponse `json:"sale,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]LineItemResponse, 0, len(q.LineItems))
	for _, it := range q.LineItems {
		items = append(items, LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   money(it.UnitPrice),
			Unit:        it.Unit,
			Code:        it.Code,
			Total:       money(it.Total),
		})
	}
	res := QuoteResponse{
		QuoteID:         q.ID,
		ID:              q.ID,
		Number:          q.Number,
		ClientID:        q.ClientID,
		Status:          string(q.Status),
		Subtotal:        money(q.Subtotal),
		DiscountPercent: q.DiscountPercent.String(),
		Total:           money(q.Total),
		LineItems:       items,
		PaymentMethod:   q.PaymentMethod,
		Notes:           q.Notes,
		NextContact:     q.NextContact,
		CreatedBy:       q.CreatedBy,
		Version:         q.Version,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
	if !q.DueDate.IsZero() {
		due := q.DueDate
		res.DueDate = &due
	}
	return res
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromTotals(t entities.QuoteTotals) TotalsResponse {
	return TotalsResponse{Subtotal: money(t.Subtotal), Discount: money(t.Discount), Total: money(t.Total)}
}

func FromStageMove(m usecase.StageMove) StageMoveResponse {
	res := StageMoveResponse{Quote: FromQuote(m.Quote)}
	if m.Sale != nil {
		sale := FromSale(*m.Sale)
		res.Sale = &sale
	}
	return res
}

// money renders amounts with exactly two decimal places.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
