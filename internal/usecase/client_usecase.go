package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
	ErrClientHasQuotes = errors.New("client has quotes")
)

// ClientInput is the writable part of a client record.
type ClientInput struct {
	Name       string `validate:"required,max=200"`
	Email      string `validate:"required,email"`
	Phone      string `validate:"max=40"`
	Company    string `validate:"max=200"`
	LeadOrigin string `validate:"max=100"`
	Status     string `validate:"omitempty,oneof=lead active inactive"`
}

type IClientUseCase interface {
	Create(ctx context.Context, in ClientInput) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, id string, in ClientInput) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo      interfaces.IClientRepository
	quoteRepo interfaces.IQuoteRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, quoteRepo interfaces.IQuoteRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, quoteRepo: quoteRepo}
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (entities.Client, error) {
	in = trimClientInput(in)
	if err := validateInput(in); err != nil {
		return entities.Client{}, err
	}

	now := nowFunc()
	c := entities.Client{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Company:    in.Company,
		LeadOrigin: in.LeadOrigin,
		Status:     clientStatusOrDefault(in.Status),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] create failed err=%v", err)
		return entities.Client{}, err
	}
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, in ClientInput) (entities.Client, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	in = trimClientInput(in)
	if err := validateInput(in); err != nil {
		return entities.Client{}, err
	}

	current.Name = in.Name
	current.Email = in.Email
	current.Phone = in.Phone
	current.Company = in.Company
	current.LeadOrigin = in.LeadOrigin
	if in.Status != "" {
		current.Status = entities.ClientStatus(in.Status)
	}
	current.UpdatedAt = nowFunc()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

// Delete refuses to orphan quotes.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	quotes, err := u.quoteRepo.ListByClientID(ctx, c.ID)
	if err != nil {
		return err
	}
	if len(quotes) > 0 {
		log.Printf("[client][usecase] delete refused client_id=%s quotes=%d", c.ID, len(quotes))
		return ErrClientHasQuotes
	}
	return u.repo.Delete(ctx, c.ID)
}

func trimClientInput(in ClientInput) ClientInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.LeadOrigin = strings.TrimSpace(in.LeadOrigin)
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	return in
}

func clientStatusOrDefault(s string) entities.ClientStatus {
	if s == "" {
		return entities.ClientStatusLead
	}
	return entities.ClientStatus(s)
}
