package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/domain/pipeline"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineItemInput struct {
	Description string `validate:"required,max=500"`
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Unit        string `validate:"max=20"`
	Code        string `validate:"max=50"`
}

type QuoteInput struct {
	ClientID        string `validate:"required"`
	DueDate         time.Time
	LineItems       []LineItemInput `validate:"required,min=1,dive"`
	DiscountPercent decimal.Decimal
	PaymentMethod   string `validate:"max=50"`
	Notes           string `validate:"max=2000"`
	ActorID         string
}

type FollowUpInput struct {
	Date    time.Time
	Note    string `validate:"required,max=2000"`
	ActorID string
}

// StageMove is the outcome of dragging a quote to a pipeline stage. Sale is
// set only when the move closed the deal.
type StageMove struct {
	Quote entities.Quote `json:"quote"`
	Sale  *entities.Sale `json:"sale,omitempty"`
}

// IQuoteUseCase covers quote authoring and the commercial pipeline moves.
// Approval and rejection are delegated to the cascade.
type IQuoteUseCase interface {
	Create(ctx context.Context, in QuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	PreviewTotals(items []LineItemInput, discountPercent decimal.Decimal) (entities.QuoteTotals, error)
	Send(ctx context.Context, id, actorID string) (entities.Quote, error)
	MoveToStage(ctx context.Context, id string, stage pipeline.StageID, actorID string) (StageMove, error)
	AddFollowUp(ctx context.Context, id string, in FollowUpInput) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	clientRepo interfaces.IClientRepository
	cascade    ICascadeUseCase
	events     interfaces.IEventPublisher
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, clientRepo interfaces.IClientRepository, cascade ICascadeUseCase, events interfaces.IEventPublisher) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, clientRepo: clientRepo, cascade: cascade, events: events}
}

func (u *QuoteUseCase) Create(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	if err := validateInput(in); err != nil {
		return entities.Quote{}, err
	}
	items := toLineItems(in.LineItems)
	if err := entities.ValidateLineItems(items); err != nil {
		return entities.Quote{}, err
	}
	if err := entities.ValidateDiscount(in.DiscountPercent); err != nil {
		return entities.Quote{}, err
	}

	client, err := u.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Quote{}, err
	}
	if client.ID == "" {
		return entities.Quote{}, ErrClientNotFound
	}

	now := nowFunc()
	id := uuid.NewString()
	q := entities.Quote{
		ID:              id,
		Number:          quoteNumber(id, now),
		ClientID:        client.ID,
		Status:          entities.QuoteStatusDraft,
		DiscountPercent: in.DiscountPercent,
		DueDate:         in.DueDate.UTC(),
		LineItems:       items,
		PaymentMethod:   strings.TrimSpace(in.PaymentMethod),
		Notes:           strings.TrimSpace(in.Notes),
		CreatedBy:       in.ActorID,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := q.ApplyTotals(); err != nil {
		return entities.Quote{}, err
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed client_id=%s err=%v", client.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created quote_id=%s number=%s total=%s", created.ID, created.Number, created.Total.StringFixed(2))
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) PreviewTotals(items []LineItemInput, discountPercent decimal.Decimal) (entities.QuoteTotals, error) {
	lines := toLineItems(items)
	if err := entities.ValidateLineItems(lines); err != nil {
		return entities.QuoteTotals{}, err
	}
	if err := entities.ValidateDiscount(discountPercent); err != nil {
		return entities.QuoteTotals{}, err
	}
	return entities.ComputeTotals(lines, discountPercent)
}

func (u *QuoteUseCase) Send(ctx context.Context, id, actorID string) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	return u.transition(ctx, q, entities.QuoteStatusSent)
}

// MoveToStage maps a pipeline stage back to a quote status. Stages sharing a
// status (lead/qualification, proposal/negotiation) leave the quote as is.
func (u *QuoteUseCase) MoveToStage(ctx context.Context, id string, stage pipeline.StageID, actorID string) (StageMove, error) {
	target, ok := pipeline.StatusForStage(stage)
	if !ok {
		return StageMove{}, entities.NewValidationError("stage", fmt.Sprintf("unknown stage %q", stage))
	}
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return StageMove{}, err
	}
	log.Printf("[quote][usecase] move quote_id=%s from=%s stage=%s", q.ID, q.Status, stage)

	switch target {
	case entities.QuoteStatusApproved:
		sale, err := u.cascade.Approve(ctx, q.ID, actorID)
		if err != nil {
			return StageMove{}, err
		}
		approved, err := u.GetByID(ctx, q.ID)
		if err != nil {
			return StageMove{}, err
		}
		return StageMove{Quote: approved, Sale: &sale}, nil
	case entities.QuoteStatusRejected:
		rejected, err := u.cascade.Reject(ctx, q.ID, actorID)
		if err != nil {
			return StageMove{}, err
		}
		return StageMove{Quote: rejected}, nil
	}

	if q.Status == target {
		return StageMove{Quote: q}, nil
	}
	moved, err := u.transition(ctx, q, target)
	if err != nil {
		return StageMove{}, err
	}
	return StageMove{Quote: moved}, nil
}

// AddFollowUp replaces the quote notes with the follow-up note and schedules
// the next contact.
func (u *QuoteUseCase) AddFollowUp(ctx context.Context, id string, in FollowUpInput) (entities.Quote, error) {
	in.Note = strings.TrimSpace(in.Note)
	if err := validateInput(in); err != nil {
		return entities.Quote{}, err
	}
	if in.Date.IsZero() {
		return entities.Quote{}, entities.NewValidationError("date", "is required")
	}
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	updated, err := u.repo.UpdateFollowUp(ctx, q.ID, in.Note, in.Date.UTC())
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if u.events != nil {
		u.events.Publish(entities.DomainEvent{
			Type:       entities.EventFollowUpScheduled,
			QuoteID:    q.ID,
			UserID:     actorOr(in.ActorID, q.CreatedBy),
			Amount:     q.Total,
			Note:       fmt.Sprintf("%s: %s", in.Date.UTC().Format("2006-01-02"), in.Note),
			OccurredAt: nowFunc(),
		})
	}
	return updated, nil
}

func (u *QuoteUseCase) transition(ctx context.Context, q entities.Quote, to entities.QuoteStatus) (entities.Quote, error) {
	if err := entities.CanTransition(q.Status, to); err != nil {
		return entities.Quote{}, err
	}
	updated, err := u.repo.UpdateStatus(ctx, q.ID, to, q.Version)
	if errors.Is(err, interfaces.ErrWriteConflict) {
		return entities.Quote{}, ErrQuoteConflict
	}
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] status changed quote_id=%s from=%s to=%s", q.ID, q.Status, to)
	return updated, nil
}

func toLineItems(in []LineItemInput) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.LineItem{
			ID:          uuid.NewString(),
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Unit:        strings.TrimSpace(it.Unit),
			Code:        strings.TrimSpace(it.Code),
		})
	}
	return out
}

func quoteNumber(id string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("ORC-%s-%s", now.Format("20060102"), suffix)
}
