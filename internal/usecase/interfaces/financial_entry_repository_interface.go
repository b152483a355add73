package interfaces

import (
	"context"
	"time"
	"winnet_crm/internal/domain/entities"
)

// IFinancialEntryRepository abstracts persistence for ledger lines.
// ListBetween is inclusive of from and exclusive of to, on entry_date.
type IFinancialEntryRepository interface {
	Create(ctx context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error)
	GetByID(ctx context.Context, id string) (entities.FinancialEntry, error)
	List(ctx context.Context) ([]entities.FinancialEntry, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.FinancialEntry, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]entities.FinancialEntry, error)
}
