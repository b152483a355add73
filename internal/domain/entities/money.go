package entities

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds an amount to cents, half away from zero.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// ShortRef is the human-facing reference used in messages ("#a1b2c3").
func ShortRef(id string) string {
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return "#" + id
}
