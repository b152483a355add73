package interfaces

import (
	"context"
	"winnet_crm/internal/domain/entities"
)

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.Payment, error)
}
