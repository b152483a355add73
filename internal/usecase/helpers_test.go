package usecase

import (
	"testing"
	"time"
	"winnet_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, time.May, 15, 12, 0, 0, 0, time.UTC)

func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// sentQuote is the reference quote: 2 x 100.00 + 1 x 50.00 with 10% off.
func sentQuote() entities.Quote {
	q := entities.Quote{
		ID:              "q-1",
		Number:          "ORC-20260515-ABCDEF",
		ClientID:        "c-1",
		Status:          entities.QuoteStatusSent,
		DiscountPercent: dec("10"),
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Router", Quantity: dec("2"), UnitPrice: dec("100")},
			{ID: "li-2", Description: "Install", Quantity: dec("1"), UnitPrice: dec("50")},
		},
		CreatedBy: "u-owner",
		Version:   3,
		CreatedAt: fixedNow.AddDate(0, 0, -10),
		UpdatedAt: fixedNow.AddDate(0, 0, -2),
	}
	_ = q.ApplyTotals()
	return q
}
