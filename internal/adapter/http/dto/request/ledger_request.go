package request

import (
	"winnet_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// OutflowRequest records a manual expense.
type OutflowRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	EntryDate   string          `json:"entry_date"`
}

func (r OutflowRequest) ToInput(actorID string) (usecase.OutflowInput, error) {
	date, err := ParseDate(r.EntryDate)
	if err != nil {
		return usecase.OutflowInput{}, err
	}
	return usecase.OutflowInput{
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		EntryDate:   date,
		ActorID:     actorID,
	}, nil
}
