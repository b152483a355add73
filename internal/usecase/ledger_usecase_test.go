package usecase

import (
	"context"
	"testing"
	"time"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/domain/ledger"
	mock_interfaces "winnet_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type ledgerMocks struct {
	entries  *mock_interfaces.MockIFinancialEntryRepository
	sales    *mock_interfaces.MockISaleRepository
	payments *mock_interfaces.MockIPaymentRepository
	quotes   *mock_interfaces.MockIQuoteRepository
	clients  *mock_interfaces.MockIClientRepository
}

func newLedger(t *testing.T) (*LedgerUseCase, ledgerMocks) {
	ctrl := gomock.NewController(t)
	m := ledgerMocks{
		entries:  mock_interfaces.NewMockIFinancialEntryRepository(ctrl),
		sales:    mock_interfaces.NewMockISaleRepository(ctrl),
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
	}
	return NewLedgerUseCase(m.entries, m.sales, m.payments, m.quotes, m.clients), m
}

func TestLedgerUseCase_CashFlowWindow(t *testing.T) {
	cases := []struct {
		name   string
		months int
		from   time.Time
		want   int
	}{
		{name: "three months", months: 3, from: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), want: 3},
		{name: "zero falls back to a year", months: 0, from: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: 12},
		{name: "too many falls back to a year", months: 37, from: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			freezeClock(t, fixedNow)
			uc, m := newLedger(t)
			to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
			m.entries.EXPECT().ListBetween(gomock.Any(), tc.from, to).Return([]entities.FinancialEntry{
				{ID: "e-1", Type: entities.EntryTypeInflow, Status: entities.EntryStatusConfirmed, Amount: dec("10"), EntryDate: fixedNow},
			}, nil)

			got, err := uc.CashFlow(context.Background(), tc.months)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d months, got %d", tc.want, len(got))
			}
			if got[0].Month != "2026-05" || !got[0].InflowTotal.Equal(dec("10")) {
				t.Fatalf("unexpected current month: %+v", got[0])
			}
		})
	}
}

func TestLedgerUseCase_MonthlyReportRejectsBadPeriod(t *testing.T) {
	uc, _ := newLedger(t)
	if _, err := uc.MonthlyReport(context.Background(), "2026/05"); !entities.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLedgerUseCase_MonthlyReport(t *testing.T) {
	uc, m := newLedger(t)
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	m.entries.EXPECT().ListBetween(gomock.Any(), from, from.AddDate(0, 1, 0)).Return([]entities.FinancialEntry{
		{ID: "e-1", SaleID: "s-1", Type: entities.EntryTypeInflow, Status: entities.EntryStatusConfirmed, Amount: dec("225"), EntryDate: from},
		{ID: "e-2", Type: entities.EntryTypeOutflow, Status: entities.EntryStatusConfirmed, Amount: dec("25"), EntryDate: from},
	}, nil)
	m.sales.EXPECT().List(gomock.Any()).Return([]entities.Sale{{ID: "s-1", QuoteID: "q-1"}}, nil)
	m.quotes.EXPECT().List(gomock.Any()).Return([]entities.Quote{{ID: "q-1", ClientID: "c-1"}}, nil)

	r, err := uc.MonthlyReport(context.Background(), "2026-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.TotalInflows.Equal(dec("225")) || !r.TotalOutflows.Equal(dec("25")) || r.ActiveClients != 1 || r.Transactions != 2 {
		t.Fatalf("unexpected report: %+v", r)
	}
}

func TestLedgerUseCase_AlertsOnEmptyBooks(t *testing.T) {
	freezeClock(t, fixedNow)
	uc, m := newLedger(t)
	m.entries.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.sales.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.payments.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.entries.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	alerts, err := uc.Alerts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(alerts) != 1 || alerts[0] != "Low balance: less than R$ 10,000.00 in cash" {
		t.Fatalf("unexpected alerts: %v", alerts)
	}
}

func TestLedgerUseCase_Projections(t *testing.T) {
	freezeClock(t, fixedNow)
	uc, m := newLedger(t)
	m.entries.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := uc.Projections(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != ledger.ProjectionHorizon || got[0].Month != "2026-06" {
		t.Fatalf("unexpected projection: %+v", got)
	}
}

func TestLedgerUseCase_PendingFinancials(t *testing.T) {
	uc, m := newLedger(t)
	m.sales.EXPECT().List(gomock.Any()).Return([]entities.Sale{
		{ID: "s-1", QuoteID: "q-1", Status: entities.SaleStatusPending, Total: dec("225"), SaleDate: fixedNow},
	}, nil)
	m.payments.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.entries.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.quotes.EXPECT().List(gomock.Any()).Return([]entities.Quote{{ID: "q-1", Number: "ORC-1", ClientID: "c-1"}}, nil)
	m.clients.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "c-1", Name: "Acme"}}, nil)

	got, err := uc.PendingFinancials(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ClientName != "Acme" || got[0].QuoteNumber != "ORC-1" {
		t.Fatalf("unexpected pending list: %+v", got)
	}
}
