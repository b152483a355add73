package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/domain/pipeline"
	"winnet_crm/internal/usecase/interfaces"
	mock_interfaces "winnet_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubCascade records which cascade transition a stage move delegated to.
type stubCascade struct {
	ICascadeUseCase
	approved string
	rejected string
	sale     entities.Sale
	err      error
}

func (s *stubCascade) Approve(_ context.Context, quoteID, _ string) (entities.Sale, error) {
	s.approved = quoteID
	return s.sale, s.err
}

func (s *stubCascade) Reject(_ context.Context, quoteID, _ string) (entities.Quote, error) {
	s.rejected = quoteID
	return entities.Quote{ID: quoteID, Status: entities.QuoteStatusRejected}, s.err
}

func referenceItems() []LineItemInput {
	return []LineItemInput{
		{Description: "Router", Quantity: dec("2"), UnitPrice: dec("100")},
		{Description: "Install", Quantity: dec("1"), UnitPrice: dec("50")},
	}
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("computes totals and starts as draft", func(t *testing.T) {
		freezeClock(t, fixedNow)
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewQuoteUseCase(repo, clients, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		q, err := uc.Create(context.Background(), QuoteInput{
			ClientID:        " c-1 ",
			DueDate:         fixedNow.AddDate(0, 1, 0),
			LineItems:       referenceItems(),
			DiscountPercent: dec("10"),
			ActorID:         "u-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.Subtotal.Equal(dec("250")) || !q.Total.Equal(dec("225")) {
			t.Fatalf("unexpected totals subtotal=%s total=%s", q.Subtotal, q.Total)
		}
		if q.Status != entities.QuoteStatusDraft || q.Version != 1 || q.CreatedBy != "u-1" {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if !strings.HasPrefix(q.Number, "ORC-20260515-") {
			t.Fatalf("unexpected number %q", q.Number)
		}
		if !q.LineItems[0].Total.Equal(dec("200")) || q.LineItems[0].ID == "" {
			t.Fatalf("line totals not applied: %+v", q.LineItems[0])
		}
	})

	t.Run("validation happens before any read", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		cases := map[string]QuoteInput{
			"missing client":    {LineItems: referenceItems()},
			"no items":          {ClientID: "c-1"},
			"zero quantity":     {ClientID: "c-1", LineItems: []LineItemInput{{Description: "x", Quantity: dec("0"), UnitPrice: dec("1")}}},
			"negative price":    {ClientID: "c-1", LineItems: []LineItemInput{{Description: "x", Quantity: dec("1"), UnitPrice: dec("-1")}}},
			"blank item":        {ClientID: "c-1", LineItems: []LineItemInput{{Quantity: dec("1"), UnitPrice: dec("1")}}},
			"discount over 100": {ClientID: "c-1", LineItems: referenceItems(), DiscountPercent: dec("100.01")},
		}
		for name, in := range cases {
			if _, err := uc.Create(context.Background(), in); !entities.IsValidationError(err) {
				t.Fatalf("%s: expected validation error, got %v", name, err)
			}
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewQuoteUseCase(nil, clients, nil, nil)
		clients.EXPECT().GetByID(gomock.Any(), "c-x").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), QuoteInput{ClientID: "c-x", LineItems: referenceItems()})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_PreviewTotals(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil, nil)
	totals, err := uc.PreviewTotals(referenceItems(), dec("10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !totals.Subtotal.Equal(dec("250")) || !totals.Discount.Equal(dec("25")) || !totals.Total.Equal(dec("225")) {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if _, err := uc.PreviewTotals(nil, dec("0")); !entities.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuoteUseCase_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil, nil, nil)

	draft := sentQuote()
	draft.Status = entities.QuoteStatusDraft
	sent := draft
	sent.Status = entities.QuoteStatusSent

	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(draft, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusSent, int64(3)).Return(sent, nil)

	res, err := uc.Send(context.Background(), "q-1", "u-1")
	if err != nil || res.Status != entities.QuoteStatusSent {
		t.Fatalf("unexpected result res=%+v err=%v", res, err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(sent, nil)
	if _, err := uc.Send(context.Background(), "q-1", "u-1"); !errors.Is(err, entities.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition resending, got %v", err)
	}
}

func TestQuoteUseCase_MoveToStage(t *testing.T) {
	t.Run("unknown stage", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		_, err := uc.MoveToStage(context.Background(), "q-1", "won", "u-1")
		if !entities.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("closed runs the approval cascade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cascade := &stubCascade{sale: entities.Sale{ID: "s-1"}}
		uc := NewQuoteUseCase(repo, nil, cascade, nil)

		approved := sentQuote()
		approved.Status = entities.QuoteStatusApproved
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(sentQuote(), nil),
			repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approved, nil),
		)

		res, err := uc.MoveToStage(context.Background(), "q-1", pipeline.StageClosed, "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cascade.approved != "q-1" || res.Sale == nil || res.Sale.ID != "s-1" {
			t.Fatalf("approval not delegated: %+v", res)
		}
		if res.Quote.Status != entities.QuoteStatusApproved {
			t.Fatalf("expected refreshed quote, got %s", res.Quote.Status)
		}
	})

	t.Run("lost runs the rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		cascade := &stubCascade{}
		uc := NewQuoteUseCase(repo, nil, cascade, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(sentQuote(), nil)

		res, err := uc.MoveToStage(context.Background(), "q-1", pipeline.StageLost, "u-1")
		if err != nil || cascade.rejected != "q-1" || res.Sale != nil {
			t.Fatalf("unexpected result res=%+v err=%v", res, err)
		}
	})

	t.Run("negotiation keeps a sent quote as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, &stubCascade{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(sentQuote(), nil)

		res, err := uc.MoveToStage(context.Background(), "q-1", pipeline.StageNegotiation, "u-1")
		if err != nil || res.Quote.Status != entities.QuoteStatusSent {
			t.Fatalf("unexpected result res=%+v err=%v", res, err)
		}
	})

	t.Run("qualification reopens a rejected quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, &stubCascade{}, nil)
		rejected := sentQuote()
		rejected.Status = entities.QuoteStatusRejected
		reopened := rejected
		reopened.Status = entities.QuoteStatusDraft

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(rejected, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusDraft, int64(3)).Return(reopened, nil)

		res, err := uc.MoveToStage(context.Background(), "q-1", pipeline.StageQualification, "u-1")
		if err != nil || res.Quote.Status != entities.QuoteStatusDraft {
			t.Fatalf("unexpected result res=%+v err=%v", res, err)
		}
	})

	t.Run("concurrent move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, &stubCascade{}, nil)
		draft := sentQuote()
		draft.Status = entities.QuoteStatusDraft

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(draft, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusSent, int64(3)).Return(entities.Quote{}, interfaces.ErrWriteConflict)

		if _, err := uc.MoveToStage(context.Background(), "q-1", pipeline.StageProposal, "u-1"); !errors.Is(err, ErrQuoteConflict) {
			t.Fatalf("expected ErrQuoteConflict, got %v", err)
		}
	})
}

func TestQuoteUseCase_AddFollowUp(t *testing.T) {
	next := time.Date(2026, time.May, 20, 9, 0, 0, 0, time.UTC)

	t.Run("stores note and emits event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil, events)

		updated := sentQuote()
		updated.Notes = "Call back"
		updated.NextContact = &next

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(sentQuote(), nil)
		repo.EXPECT().UpdateFollowUp(gomock.Any(), "q-1", "Call back", next).Return(updated, nil)
		events.EXPECT().Publish(gomock.Any()).Do(func(ev entities.DomainEvent) {
			if ev.Type != entities.EventFollowUpScheduled || ev.Note != "2026-05-20: Call back" || ev.UserID != "u-1" {
				t.Fatalf("unexpected event: %+v", ev)
			}
		})

		res, err := uc.AddFollowUp(context.Background(), "q-1", FollowUpInput{Date: next, Note: " Call back ", ActorID: "u-1"})
		if err != nil || res.Notes != "Call back" {
			t.Fatalf("unexpected result res=%+v err=%v", res, err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil)
		if _, err := uc.AddFollowUp(context.Background(), "q-1", FollowUpInput{Date: next}); !entities.IsValidationError(err) {
			t.Fatalf("expected validation error for empty note, got %v", err)
		}
		if _, err := uc.AddFollowUp(context.Background(), "q-1", FollowUpInput{Note: "x"}); !entities.IsValidationError(err) {
			t.Fatalf("expected validation error for missing date, got %v", err)
		}
	})
}
