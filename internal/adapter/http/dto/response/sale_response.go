package response

import (
	"time"
	"winnet_crm/internal/domain/entities"
)

type SaleResponse struct {
	SaleID        string    `json:"sale_id"`
	ID            string    `json:"id"`
	QuoteID       string    `json:"quote_id"`
	SaleDate      time.Time `json:"sale_date"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type FinancialEntryResponse struct {
	ID          string    `json:"id"`
	SaleID      string    `json:"sale_id,omitempty"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	EntryDate   time.Time `json:"entry_date"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        s.ID,
		ID:            s.ID,
		QuoteID:       s.QuoteID,
		SaleDate:      s.SaleDate,
		Total:         money(s.Total),
		PaymentMethod: s.PaymentMethod,
		Status:        string(s.Status),
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
	}
}

func FromFinancialEntry(e entities.FinancialEntry) FinancialEntryResponse {
	return FinancialEntryResponse{
		ID:          e.ID,
		SaleID:      e.SaleID,
		Type:        string(e.Type),
		Amount:      money(e.Amount),
		Description: e.Description,
		Category:    e.Category,
		Status:      string(e.Status),
		EntryDate:   e.EntryDate,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}
