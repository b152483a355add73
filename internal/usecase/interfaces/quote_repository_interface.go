package interfaces

import (
	"context"
	"time"
	"winnet_crm/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote (line items included).
//
// Status changes are guarded by the quote version:
//   - UpdateStatus only applies when the stored version equals expectedVersion
//     and bumps it; a mismatch surfaces as ErrWriteConflict
//   - GetByID returns a zero Quote and nil error when the id does not exist
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Quote, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, expectedVersion int64) (entities.Quote, error)
	UpdateFollowUp(ctx context.Context, id string, notes string, nextContact time.Time) (entities.Quote, error)
}
