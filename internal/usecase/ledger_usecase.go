package usecase

import (
	"context"
	"time"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/domain/ledger"
	"winnet_crm/internal/usecase/interfaces"
)

const (
	defaultCashFlowMonths = 12
	maxCashFlowMonths     = 36
)

// ILedgerUseCase is the financial read model: cash flow, KPIs, pending
// follow-ups, monthly report, projection and alerts.
type ILedgerUseCase interface {
	CashFlow(ctx context.Context, months int) ([]ledger.MonthlyCashFlow, error)
	KPIs(ctx context.Context) (ledger.KPIs, error)
	PendingFinancials(ctx context.Context) ([]ledger.PendingFinancial, error)
	MonthlyReport(ctx context.Context, month string) (ledger.MonthlyReport, error)
	Projections(ctx context.Context) ([]ledger.Projection, error)
	Alerts(ctx context.Context) ([]string, error)
}

type LedgerUseCase struct {
	entryRepo   interfaces.IFinancialEntryRepository
	saleRepo    interfaces.ISaleRepository
	paymentRepo interfaces.IPaymentRepository
	quoteRepo   interfaces.IQuoteRepository
	clientRepo  interfaces.IClientRepository
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(
	entryRepo interfaces.IFinancialEntryRepository,
	saleRepo interfaces.ISaleRepository,
	paymentRepo interfaces.IPaymentRepository,
	quoteRepo interfaces.IQuoteRepository,
	clientRepo interfaces.IClientRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		entryRepo:   entryRepo,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
		quoteRepo:   quoteRepo,
		clientRepo:  clientRepo,
	}
}

// CashFlow returns the trailing months, most recent first. Out-of-range
// month counts fall back to a year.
func (u *LedgerUseCase) CashFlow(ctx context.Context, months int) ([]ledger.MonthlyCashFlow, error) {
	if months <= 0 || months > maxCashFlowMonths {
		months = defaultCashFlowMonths
	}
	now := nowFunc()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from := current.AddDate(0, -(months - 1), 0)
	to := current.AddDate(0, 1, 0)

	entries, err := u.entryRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return ledger.CashFlowByMonth(entries, now, months), nil
}

func (u *LedgerUseCase) KPIs(ctx context.Context) (ledger.KPIs, error) {
	entries, err := u.entryRepo.List(ctx)
	if err != nil {
		return ledger.KPIs{}, err
	}
	sales, err := u.saleRepo.List(ctx)
	if err != nil {
		return ledger.KPIs{}, err
	}
	payments, err := u.paymentRepo.List(ctx)
	if err != nil {
		return ledger.KPIs{}, err
	}
	return ledger.ComputeKPIs(entries, sales, payments, nowFunc()), nil
}

func (u *LedgerUseCase) PendingFinancials(ctx context.Context) ([]ledger.PendingFinancial, error) {
	sales, err := u.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := u.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := u.entryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := u.quotesByID(ctx)
	if err != nil {
		return nil, err
	}
	clientList, err := u.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clients := make(map[string]entities.Client, len(clientList))
	for _, c := range clientList {
		clients[c.ID] = c
	}

	return ledger.PendingFinancials(ledger.PendingInputs{
		Sales:    sales,
		Payments: payments,
		Entries:  entries,
		Quotes:   quotes,
		Clients:  clients,
	}), nil
}

// MonthlyReport expects month as YYYY-MM.
func (u *LedgerUseCase) MonthlyReport(ctx context.Context, month string) (ledger.MonthlyReport, error) {
	from, to, err := ledger.ParseMonth(month)
	if err != nil {
		return ledger.MonthlyReport{}, err
	}
	entries, err := u.entryRepo.ListBetween(ctx, from, to)
	if err != nil {
		return ledger.MonthlyReport{}, err
	}
	saleList, err := u.saleRepo.List(ctx)
	if err != nil {
		return ledger.MonthlyReport{}, err
	}
	sales := make(map[string]entities.Sale, len(saleList))
	for _, s := range saleList {
		sales[s.ID] = s
	}
	quotes, err := u.quotesByID(ctx)
	if err != nil {
		return ledger.MonthlyReport{}, err
	}
	return ledger.BuildMonthlyReport(month, entries, sales, quotes), nil
}

func (u *LedgerUseCase) Projections(ctx context.Context) ([]ledger.Projection, error) {
	history, err := u.CashFlow(ctx, defaultCashFlowMonths)
	if err != nil {
		return nil, err
	}
	return ledger.Project(history, nowFunc()), nil
}

func (u *LedgerUseCase) Alerts(ctx context.Context) ([]string, error) {
	kpis, err := u.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	projections, err := u.Projections(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Alerts(kpis, projections), nil
}

func (u *LedgerUseCase) quotesByID(ctx context.Context) (map[string]entities.Quote, error) {
	list, err := u.quoteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]entities.Quote, len(list))
	for _, q := range list {
		out[q.ID] = q
	}
	return out, nil
}
