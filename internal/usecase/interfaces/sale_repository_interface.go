package interfaces

import (
	"context"
	"time"
	"winnet_crm/internal/domain/entities"
)

type ISaleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context) ([]entities.Sale, error)
	ListSince(ctx context.Context, since time.Time) ([]entities.Sale, error)
	UpdateStatus(ctx context.Context, id string, status entities.SaleStatus) (entities.Sale, error)
}
