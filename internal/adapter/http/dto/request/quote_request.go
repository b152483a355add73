package request

import (
	"errors"
	"strings"
	"time"
	"winnet_crm/internal/domain/pipeline"
	"winnet_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

const dateLayout = "2006-01-02"

type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Unit        string          `json:"unit"`
	Code        string          `json:"code"`
}

// QuoteRequest creates a quote. Money fields accept JSON numbers or strings.
type QuoteRequest struct {
	ClientID        string            `json:"client_id" binding:"required"`
	DueDate         string            `json:"due_date"`
	LineItems       []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
	PaymentMethod   string            `json:"payment_method"`
	Notes           string            `json:"notes"`
}

func (r QuoteRequest) ToInput(actorID string) (usecase.QuoteInput, error) {
	due, err := ParseDate(r.DueDate)
	if err != nil {
		return usecase.QuoteInput{}, err
	}
	return usecase.QuoteInput{
		ClientID:        r.ClientID,
		DueDate:         due,
		LineItems:       toLineItemInputs(r.LineItems),
		DiscountPercent: r.DiscountPercent,
		PaymentMethod:   r.PaymentMethod,
		Notes:           r.Notes,
		ActorID:         actorID,
	}, nil
}

// TotalsRequest previews totals without persisting anything.
type TotalsRequest struct {
	LineItems       []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	DiscountPercent decimal.Decimal   `json:"discount_percent"`
}

func (r TotalsRequest) Items() []usecase.LineItemInput {
	return toLineItemInputs(r.LineItems)
}

type StageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

func (r StageRequest) StageID() pipeline.StageID {
	return pipeline.StageID(strings.ToLower(strings.TrimSpace(r.Stage)))
}

type FollowUpRequest struct {
	Date string `json:"date" binding:"required"`
	Note string `json:"note" binding:"required"`
}

func (r FollowUpRequest) ToInput(actorID string) (usecase.FollowUpInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.FollowUpInput{}, err
	}
	if date.IsZero() {
		return usecase.FollowUpInput{}, ErrInvalidDate
	}
	return usecase.FollowUpInput{Date: date, Note: r.Note, ActorID: actorID}, nil
}

// ManualSaleRequest binds a sale to an approved quote that has none yet.
type ManualSaleRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ParseDate accepts a calendar date or a full RFC 3339 timestamp. Blank input
// yields the zero time.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}

func toLineItemInputs(items []LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.LineItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Unit:        it.Unit,
			Code:        it.Code,
		})
	}
	return out
}
