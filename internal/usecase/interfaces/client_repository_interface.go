package interfaces

import (
	"context"
	"winnet_crm/internal/domain/entities"
)

// IClientRepository abstracts persistence for Client.
// GetByID returns a zero Client and nil error when the id does not exist.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}
