package usecase

import (
	"context"
	"errors"
	"testing"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"
	mock_interfaces "winnet_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type cascadeMocks struct {
	quotes  *mock_interfaces.MockIQuoteRepository
	clients *mock_interfaces.MockIClientRepository
	sales   *mock_interfaces.MockISaleRepository
	entries *mock_interfaces.MockIFinancialEntryRepository
	store   *mock_interfaces.MockICascadeStore
	events  *mock_interfaces.MockIEventPublisher
}

func newCascade(t *testing.T) (*CascadeUseCase, cascadeMocks) {
	ctrl := gomock.NewController(t)
	m := cascadeMocks{
		quotes:  mock_interfaces.NewMockIQuoteRepository(ctrl),
		clients: mock_interfaces.NewMockIClientRepository(ctrl),
		sales:   mock_interfaces.NewMockISaleRepository(ctrl),
		entries: mock_interfaces.NewMockIFinancialEntryRepository(ctrl),
		store:   mock_interfaces.NewMockICascadeStore(ctrl),
		events:  mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	return NewCascadeUseCase(m.quotes, m.clients, m.sales, m.entries, m.store, m.events), m
}

func TestCascadeUseCase_Approve(t *testing.T) {
	t.Run("creates pending sale and inflow entry in one commit", func(t *testing.T) {
		freezeClock(t, fixedNow)
		uc, m := newCascade(t)
		q := sentQuote()

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.store.EXPECT().CommitApproval(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.ApprovalCommit) error {
				if c.QuoteID != "q-1" || c.ExpectedVersion != 3 {
					t.Fatalf("unexpected commit guard: %+v", c)
				}
				if c.Sale.ID != entities.SaleIDForQuote("q-1") || c.Sale.QuoteID != "q-1" {
					t.Fatalf("sale not keyed on quote: %+v", c.Sale)
				}
				if !c.Sale.Total.Equal(dec("225")) || c.Sale.Status != entities.SaleStatusPending {
					t.Fatalf("unexpected sale: %+v", c.Sale)
				}
				if c.Sale.PaymentMethod != entities.DefaultPaymentMethod {
					t.Fatalf("expected default payment method, got %q", c.Sale.PaymentMethod)
				}
				e := c.Entry
				if e.ID != entities.InflowEntryIDForQuote("q-1") || e.SaleID != c.Sale.ID {
					t.Fatalf("entry not linked: %+v", e)
				}
				if !e.Amount.Equal(dec("225")) || e.Type != entities.EntryTypeInflow || e.Status != entities.EntryStatusPending {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.Category != entities.SalesCategory {
					t.Fatalf("expected sales category, got %q", e.Category)
				}
				return nil
			},
		)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)

		var published []entities.DomainEvent
		m.events.EXPECT().Publish(gomock.Any()).Do(func(ev entities.DomainEvent) {
			published = append(published, ev)
		}).Times(2)

		sale, err := uc.Approve(context.Background(), " q-1 ", "u-approver")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sale.Total.Equal(dec("225")) || sale.CreatedBy != "u-approver" {
			t.Fatalf("unexpected sale: %+v", sale)
		}
		if published[0].Type != entities.EventQuoteApproved || published[0].ClientName != "Acme" || published[0].SaleID != sale.ID {
			t.Fatalf("unexpected approval event: %+v", published[0])
		}
		if published[0].UserID != "u-owner" {
			t.Fatalf("approval notification should go to quote creator u-owner, got %q", published[0].UserID)
		}
		if published[1].Type != entities.EventSaleCreated || !published[1].Amount.Equal(dec("225")) {
			t.Fatalf("unexpected sale event: %+v", published[1])
		}
	})

	t.Run("re-approval returns the existing sale without writing", func(t *testing.T) {
		uc, m := newCascade(t)
		q := sentQuote()
		q.Status = entities.QuoteStatusApproved
		existing := entities.Sale{ID: entities.SaleIDForQuote("q-1"), QuoteID: "q-1", Total: dec("225")}

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.sales.EXPECT().GetByID(gomock.Any(), existing.ID).Return(existing, nil)

		sale, err := uc.Approve(context.Background(), "q-1", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.ID != existing.ID {
			t.Fatalf("expected existing sale, got %+v", sale)
		}
	})

	t.Run("approved quote without sale is repaired", func(t *testing.T) {
		uc, m := newCascade(t)
		q := sentQuote()
		q.Status = entities.QuoteStatusApproved
		entryID := entities.InflowEntryIDForQuote("q-1")

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.sales.EXPECT().GetByID(gomock.Any(), entities.SaleIDForQuote("q-1")).Return(entities.Sale{}, nil)
		m.entries.EXPECT().GetByID(gomock.Any(), entryID).Return(entities.FinancialEntry{ID: entryID}, nil)
		m.store.EXPECT().CommitRepair(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *entities.Sale, e *entities.FinancialEntry) error {
				if s == nil || s.QuoteID != "q-1" {
					t.Fatalf("expected sale to be written, got %+v", s)
				}
				if e != nil {
					t.Fatalf("existing entry must not be rewritten")
				}
				return nil
			},
		)

		sale, err := uc.Approve(context.Background(), "q-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.CreatedBy != "u-owner" {
			t.Fatalf("expected quote owner as actor, got %q", sale.CreatedBy)
		}
	})

	t.Run("lost race resolved by the winner's sale", func(t *testing.T) {
		uc, m := newCascade(t)
		q := sentQuote()
		approved := q
		approved.Status = entities.QuoteStatusApproved
		winner := entities.Sale{ID: entities.SaleIDForQuote("q-1"), QuoteID: "q-1"}

		gomock.InOrder(
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil),
			m.store.EXPECT().CommitApproval(gomock.Any(), gomock.Any()).Return(interfaces.ErrWriteConflict),
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(approved, nil),
			m.sales.EXPECT().GetByID(gomock.Any(), winner.ID).Return(winner, nil),
		)

		sale, err := uc.Approve(context.Background(), "q-1", "u-1")
		if err != nil || sale.ID != winner.ID {
			t.Fatalf("expected winner sale, got sale=%+v err=%v", sale, err)
		}
	})

	t.Run("lost race against a different transition", func(t *testing.T) {
		uc, m := newCascade(t)
		q := sentQuote()
		rejected := q
		rejected.Status = entities.QuoteStatusRejected

		gomock.InOrder(
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil),
			m.store.EXPECT().CommitApproval(gomock.Any(), gomock.Any()).Return(interfaces.ErrWriteConflict),
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(rejected, nil),
		)

		_, err := uc.Approve(context.Background(), "q-1", "u-1")
		if !errors.Is(err, ErrQuoteConflict) {
			t.Fatalf("expected ErrQuoteConflict, got %v", err)
		}
	})

	t.Run("store failure surfaces a cascade error", func(t *testing.T) {
		uc, m := newCascade(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(sentQuote(), nil)
		m.store.EXPECT().CommitApproval(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		_, err := uc.Approve(context.Background(), "q-1", "u-1")
		var cerr *CascadeError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected CascadeError, got %v", err)
		}
		if cerr.Stage != "approve" || cerr.QuoteID != "q-1" || cerr.SaleID != entities.SaleIDForQuote("q-1") {
			t.Fatalf("unexpected cascade error: %+v", cerr)
		}
		if cerr.Unwrap().Error() != "dynamo down" {
			t.Fatalf("cause lost: %v", cerr.Unwrap())
		}
	})

	t.Run("rejected quote cannot be approved", func(t *testing.T) {
		uc, m := newCascade(t)
		q := sentQuote()
		q.Status = entities.QuoteStatusRejected
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Approve(context.Background(), "q-1", "u-1")
		if !errors.Is(err, entities.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("fully discounted quote approves with a zero sale", func(t *testing.T) {
		uc, m := newCascade(t)
		q := sentQuote()
		q.DiscountPercent = dec("100")
		if err := q.ApplyTotals(); err != nil {
			t.Fatalf("unexpected totals error: %v", err)
		}

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.store.EXPECT().CommitApproval(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.ApprovalCommit) error {
				if !c.Sale.Total.IsZero() || c.Sale.Status != entities.SaleStatusPending {
					t.Fatalf("unexpected sale: %+v", c.Sale)
				}
				if !c.Entry.Amount.IsZero() || c.Entry.Status != entities.EntryStatusPending {
					t.Fatalf("unexpected entry: %+v", c.Entry)
				}
				return nil
			},
		)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.events.EXPECT().Publish(gomock.Any()).Times(2)

		sale, err := uc.Approve(context.Background(), "q-1", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.Total.StringFixed(2) != "0.00" {
			t.Fatalf("expected 0.00 sale, got %s", sale.Total.StringFixed(2))
		}
	})

	t.Run("invalid and missing ids", func(t *testing.T) {
		uc, m := newCascade(t)
		if _, err := uc.Approve(context.Background(), "  ", "u-1"); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
		m.quotes.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Quote{}, nil)
		if _, err := uc.Approve(context.Background(), "nope", "u-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestCascadeUseCase_Reject(t *testing.T) {
	t.Run("success publishes client name", func(t *testing.T) {
		uc, m := newCascade(t)
		q := sentQuote()
		rejected := q
		rejected.Status = entities.QuoteStatusRejected

		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusRejected, int64(3)).Return(rejected, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)
		m.events.EXPECT().Publish(gomock.Any()).Do(func(ev entities.DomainEvent) {
			if ev.Type != entities.EventQuoteRejected || ev.ClientName != "Acme" || ev.UserID != "u-1" {
				t.Fatalf("unexpected event: %+v", ev)
			}
		})

		res, err := uc.Reject(context.Background(), "q-1", "u-1")
		if err != nil || res.Status != entities.QuoteStatusRejected {
			t.Fatalf("unexpected result res=%+v err=%v", res, err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		uc, m := newCascade(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(sentQuote(), nil)
		m.quotes.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusRejected, int64(3)).Return(entities.Quote{}, interfaces.ErrWriteConflict)

		_, err := uc.Reject(context.Background(), "q-1", "u-1")
		if !errors.Is(err, ErrQuoteConflict) {
			t.Fatalf("expected ErrQuoteConflict, got %v", err)
		}
	})

	t.Run("approved quote is terminal", func(t *testing.T) {
		uc, m := newCascade(t)
		q := sentQuote()
		q.Status = entities.QuoteStatusApproved
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Reject(context.Background(), "q-1", "u-1")
		if !errors.Is(err, entities.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestCascadeUseCase_SaleLifecycle(t *testing.T) {
	pending := entities.Sale{ID: "s-1", QuoteID: "q-1", Status: entities.SaleStatusPending, Total: dec("225"), CreatedBy: "u-owner"}

	t.Run("confirm pending sale", func(t *testing.T) {
		uc, m := newCascade(t)
		confirmed := pending
		confirmed.Status = entities.SaleStatusConfirmed

		m.sales.EXPECT().GetByID(gomock.Any(), "s-1").Return(pending, nil)
		m.sales.EXPECT().UpdateStatus(gomock.Any(), "s-1", entities.SaleStatusConfirmed).Return(confirmed, nil)
		m.events.EXPECT().Publish(gomock.Any())

		res, err := uc.ConfirmSale(context.Background(), "s-1", "")
		if err != nil || res.Status != entities.SaleStatusConfirmed {
			t.Fatalf("unexpected result res=%+v err=%v", res, err)
		}
	})

	t.Run("confirm is a no-op on confirmed sale", func(t *testing.T) {
		uc, m := newCascade(t)
		confirmed := pending
		confirmed.Status = entities.SaleStatusConfirmed
		m.sales.EXPECT().GetByID(gomock.Any(), "s-1").Return(confirmed, nil)

		if _, err := uc.ConfirmSale(context.Background(), "s-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("confirm cancelled sale", func(t *testing.T) {
		uc, m := newCascade(t)
		cancelled := pending
		cancelled.Status = entities.SaleStatusCancelled
		m.sales.EXPECT().GetByID(gomock.Any(), "s-1").Return(cancelled, nil)

		if _, err := uc.ConfirmSale(context.Background(), "s-1", ""); !errors.Is(err, ErrSaleCancelled) {
			t.Fatalf("expected ErrSaleCancelled, got %v", err)
		}
	})

	t.Run("cancel only touches pending entries", func(t *testing.T) {
		uc, m := newCascade(t)
		m.sales.EXPECT().GetByID(gomock.Any(), "s-1").Return(pending, nil)
		m.entries.EXPECT().ListBySaleID(gomock.Any(), "s-1").Return([]entities.FinancialEntry{
			{ID: "e-pending", Status: entities.EntryStatusPending},
			{ID: "e-confirmed", Status: entities.EntryStatusConfirmed},
		}, nil)
		m.store.EXPECT().CommitSaleCancellation(gomock.Any(), "s-1", []string{"e-pending"}).Return(nil)
		m.events.EXPECT().Publish(gomock.Any()).Do(func(ev entities.DomainEvent) {
			if ev.Type != entities.EventSaleCancelled {
				t.Fatalf("unexpected event: %+v", ev)
			}
		})

		res, err := uc.CancelSale(context.Background(), "s-1", "u-1")
		if err != nil || res.Status != entities.SaleStatusCancelled {
			t.Fatalf("unexpected result res=%+v err=%v", res, err)
		}
	})

	t.Run("missing sale", func(t *testing.T) {
		uc, m := newCascade(t)
		m.sales.EXPECT().GetByID(gomock.Any(), "s-x").Return(entities.Sale{}, nil)
		if _, err := uc.CancelSale(context.Background(), "s-x", ""); !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
		if _, err := uc.CancelSale(context.Background(), "", ""); !errors.Is(err, ErrInvalidSaleID) {
			t.Fatalf("expected ErrInvalidSaleID, got %v", err)
		}
	})
}

func TestCascadeUseCase_RecordOutflow(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc, _ := newCascade(t)
		cases := []OutflowInput{
			{Amount: dec("10"), Category: "Rent"},
			{Amount: dec("10"), Description: "Office rent"},
			{Amount: dec("0"), Description: "Office rent", Category: "Rent"},
			{Amount: dec("-5"), Description: "Office rent", Category: "Rent"},
		}
		for i, in := range cases {
			if _, err := uc.RecordOutflow(context.Background(), in); !entities.IsValidationError(err) {
				t.Fatalf("case %d: expected validation error, got %v", i, err)
			}
		}
	})

	t.Run("records a confirmed outflow", func(t *testing.T) {
		freezeClock(t, fixedNow)
		uc, m := newCascade(t)
		m.entries.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.FinancialEntry) (entities.FinancialEntry, error) {
				if e.Type != entities.EntryTypeOutflow || e.Status != entities.EntryStatusConfirmed {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if !e.Amount.Equal(dec("1234.57")) || !e.EntryDate.Equal(fixedNow) || e.SaleID != "" {
					t.Fatalf("unexpected entry values: %+v", e)
				}
				return e, nil
			},
		)
		m.events.EXPECT().Publish(gomock.Any())

		res, err := uc.RecordOutflow(context.Background(), OutflowInput{
			Amount:      dec("1234.567"),
			Description: " Office rent ",
			Category:    "Rent",
			ActorID:     "u-1",
		})
		if err != nil || res.Description != "Office rent" {
			t.Fatalf("unexpected result res=%+v err=%v", res, err)
		}
	})
}

func TestCascadeUseCase_Reconcile(t *testing.T) {
	uc, m := newCascade(t)
	complete := entities.Quote{ID: "q-ok", Status: entities.QuoteStatusApproved, Total: dec("10")}
	broken := entities.Quote{ID: "q-broken", Status: entities.QuoteStatusApproved, Total: dec("20"), CreatedBy: "u-owner"}
	failing := entities.Quote{ID: "q-fail", Status: entities.QuoteStatusApproved, Total: dec("30")}

	m.quotes.EXPECT().ListByStatus(gomock.Any(), entities.QuoteStatusApproved).Return([]entities.Quote{complete, broken, failing}, nil)

	m.sales.EXPECT().GetByID(gomock.Any(), entities.SaleIDForQuote("q-ok")).Return(entities.Sale{ID: "s"}, nil)
	m.entries.EXPECT().GetByID(gomock.Any(), entities.InflowEntryIDForQuote("q-ok")).Return(entities.FinancialEntry{ID: "e"}, nil)

	m.sales.EXPECT().GetByID(gomock.Any(), entities.SaleIDForQuote("q-broken")).Return(entities.Sale{}, nil)
	m.entries.EXPECT().GetByID(gomock.Any(), entities.InflowEntryIDForQuote("q-broken")).Return(entities.FinancialEntry{}, nil)
	m.store.EXPECT().CommitRepair(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *entities.Sale, e *entities.FinancialEntry) error {
			if s == nil || e == nil {
				t.Fatalf("expected both records to be written")
			}
			if !s.Total.Equal(dec("20")) || !e.Amount.Equal(dec("20")) || s.CreatedBy != "u-owner" {
				t.Fatalf("unexpected repair: sale=%+v entry=%+v", s, e)
			}
			return nil
		},
	)

	m.sales.EXPECT().GetByID(gomock.Any(), entities.SaleIDForQuote("q-fail")).Return(entities.Sale{}, errors.New("throttled"))
	m.events.EXPECT().Publish(gomock.Any()).Do(func(ev entities.DomainEvent) {
		if ev.Type != entities.EventCascadeReconciled {
			t.Fatalf("unexpected event: %+v", ev)
		}
	})

	report, err := uc.Reconcile(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Scanned != 3 {
		t.Fatalf("expected 3 scanned, got %d", report.Scanned)
	}
	if len(report.Repaired) != 1 || report.Repaired[0] != "q-broken" {
		t.Fatalf("unexpected repaired list: %v", report.Repaired)
	}
	if len(report.Failed) != 1 || report.Failed[0] != "q-fail" {
		t.Fatalf("unexpected failed list: %v", report.Failed)
	}
}

func TestCascadeUseCase_CreateManualSale(t *testing.T) {
	approved := sentQuote()
	approved.Status = entities.QuoteStatusApproved

	t.Run("quote must be approved", func(t *testing.T) {
		uc, m := newCascade(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(sentQuote(), nil)
		if _, err := uc.CreateManualSale(context.Background(), "q-1", "pix", "u-1"); !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})

	t.Run("one sale per quote", func(t *testing.T) {
		uc, m := newCascade(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(approved, nil)
		m.sales.EXPECT().GetByID(gomock.Any(), entities.SaleIDForQuote("q-1")).Return(entities.Sale{ID: "s"}, nil)
		if _, err := uc.CreateManualSale(context.Background(), "q-1", "pix", "u-1"); !errors.Is(err, ErrSaleAlreadyExists) {
			t.Fatalf("expected ErrSaleAlreadyExists, got %v", err)
		}
	})

	t.Run("creates sale with the given method", func(t *testing.T) {
		uc, m := newCascade(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(approved, nil)
		m.sales.EXPECT().GetByID(gomock.Any(), entities.SaleIDForQuote("q-1")).Return(entities.Sale{}, nil)
		m.entries.EXPECT().GetByID(gomock.Any(), entities.InflowEntryIDForQuote("q-1")).Return(entities.FinancialEntry{}, nil)
		m.store.EXPECT().CommitRepair(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, errors.New("lookup failed"))
		m.events.EXPECT().Publish(gomock.Any())

		sale, err := uc.CreateManualSale(context.Background(), "q-1", " pix ", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.PaymentMethod != "pix" || !sale.Total.Equal(dec("225")) {
			t.Fatalf("unexpected sale: %+v", sale)
		}
	})

	t.Run("concurrent manual sale", func(t *testing.T) {
		uc, m := newCascade(t)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(approved, nil)
		m.sales.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Sale{}, nil)
		m.entries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.FinancialEntry{}, nil)
		m.store.EXPECT().CommitRepair(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrWriteConflict)

		if _, err := uc.CreateManualSale(context.Background(), "q-1", "", "u-1"); !errors.Is(err, ErrSaleAlreadyExists) {
			t.Fatalf("expected ErrSaleAlreadyExists, got %v", err)
		}
	})
}
