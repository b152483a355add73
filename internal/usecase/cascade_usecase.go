package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrQuoteConflict      = errors.New("quote was modified concurrently")
	ErrQuoteNotApproved   = errors.New("quote not approved")
	ErrSaleNotFound       = errors.New("sale not found")
	ErrInvalidSaleID      = errors.New("invalid sale id")
	ErrSaleAlreadyExists  = errors.New("sale already exists for quote")
	ErrSaleCancelled      = errors.New("sale is cancelled")
	ErrCascadeUnavailable = errors.New("cascade store not configured")
)

// CascadeError identifies where a multi-record write failed so the affected
// quote/sale can be repaired by Reconcile.
type CascadeError struct {
	Stage   string
	QuoteID string
	SaleID  string
	Err     error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade %s failed quote_id=%s sale_id=%s: %v", e.Stage, e.QuoteID, e.SaleID, e.Err)
}

func (e *CascadeError) Unwrap() error { return e.Err }

// OutflowInput describes a manual expense. It is recorded as confirmed.
type OutflowInput struct {
	Amount      decimal.Decimal
	Description string `validate:"required,max=500"`
	Category    string `validate:"required,max=100"`
	EntryDate   time.Time
	ActorID     string
}

// ReconcileReport summarises one repair run.
type ReconcileReport struct {
	Scanned  int      `json:"scanned"`
	Repaired []string `json:"repaired"`
	Failed   []string `json:"failed"`
}

// ICascadeUseCase owns every transition that derives records from a quote.
//
//   - Approve: quote approved + pending sale + pending inflow entry, atomically
//   - Reject: quote rejected
//   - ConfirmSale / CancelSale: sale lifecycle (cancel also cancels pending entries)
//   - RecordOutflow: manual confirmed expense
//   - Reconcile: repairs approved quotes missing their sale or entry
type ICascadeUseCase interface {
	Approve(ctx context.Context, quoteID, actorID string) (entities.Sale, error)
	Reject(ctx context.Context, quoteID, actorID string) (entities.Quote, error)
	ConfirmSale(ctx context.Context, saleID, actorID string) (entities.Sale, error)
	CancelSale(ctx context.Context, saleID, actorID string) (entities.Sale, error)
	RecordOutflow(ctx context.Context, in OutflowInput) (entities.FinancialEntry, error)
	Reconcile(ctx context.Context) (ReconcileReport, error)
	CreateManualSale(ctx context.Context, quoteID, paymentMethod, actorID string) (entities.Sale, error)
}

type CascadeUseCase struct {
	quoteRepo  interfaces.IQuoteRepository
	clientRepo interfaces.IClientRepository
	saleRepo   interfaces.ISaleRepository
	entryRepo  interfaces.IFinancialEntryRepository
	store      interfaces.ICascadeStore
	events     interfaces.IEventPublisher
}

var _ ICascadeUseCase = (*CascadeUseCase)(nil)

func NewCascadeUseCase(
	quoteRepo interfaces.IQuoteRepository,
	clientRepo interfaces.IClientRepository,
	saleRepo interfaces.ISaleRepository,
	entryRepo interfaces.IFinancialEntryRepository,
	store interfaces.ICascadeStore,
	events interfaces.IEventPublisher,
) *CascadeUseCase {
	return &CascadeUseCase{
		quoteRepo:  quoteRepo,
		clientRepo: clientRepo,
		saleRepo:   saleRepo,
		entryRepo:  entryRepo,
		store:      store,
		events:     events,
	}
}

// Approve is idempotent on the quote id: approving an already approved quote
// returns its sale without writing anything.
func (u *CascadeUseCase) Approve(ctx context.Context, quoteID, actorID string) (entities.Sale, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return entities.Sale{}, err
	}
	log.Printf("[cascade][usecase] approve start quote_id=%s status=%s version=%d", q.ID, q.Status, q.Version)

	if q.Status == entities.QuoteStatusApproved {
		return u.existingOrRepairedSale(ctx, q, actorID)
	}
	if err := entities.CanTransition(q.Status, entities.QuoteStatusApproved); err != nil {
		return entities.Sale{}, err
	}
	if u.store == nil {
		return entities.Sale{}, ErrCascadeUnavailable
	}

	now := nowFunc()
	sale, entry := derivedRecords(q, actorOr(actorID, q.CreatedBy), q.PaymentMethod, now)

	err = u.store.CommitApproval(ctx, interfaces.ApprovalCommit{
		QuoteID:         q.ID,
		ExpectedVersion: q.Version,
		ApprovedAt:      now,
		Sale:            sale,
		Entry:           entry,
	})
	if errors.Is(err, interfaces.ErrWriteConflict) {
		log.Printf("[cascade][usecase] approve conflict quote_id=%s; re-reading", q.ID)
		return u.resolveApprovalConflict(ctx, q.ID)
	}
	if err != nil {
		log.Printf("[cascade][usecase] approve commit failed quote_id=%s err=%v", q.ID, err)
		return entities.Sale{}, &CascadeError{Stage: "approve", QuoteID: q.ID, SaleID: sale.ID, Err: err}
	}
	log.Printf("[cascade][usecase] approve success quote_id=%s sale_id=%s total=%s", q.ID, sale.ID, sale.Total.StringFixed(2))

	// The quote's author is notified; the sale keeps the approving user.
	clientName := u.clientName(ctx, q.ClientID)
	u.publish(entities.DomainEvent{
		Type:       entities.EventQuoteApproved,
		QuoteID:    q.ID,
		SaleID:     sale.ID,
		EntryID:    entry.ID,
		UserID:     actorOr(q.CreatedBy, sale.CreatedBy),
		ClientName: clientName,
		Amount:     sale.Total,
		OccurredAt: now,
	})
	u.publish(entities.DomainEvent{
		Type:       entities.EventSaleCreated,
		QuoteID:    q.ID,
		SaleID:     sale.ID,
		UserID:     sale.CreatedBy,
		ClientName: clientName,
		Amount:     sale.Total,
		OccurredAt: now,
	})
	return sale, nil
}

// resolveApprovalConflict decides, after a lost race, whether someone else
// already completed the same approval.
func (u *CascadeUseCase) resolveApprovalConflict(ctx context.Context, quoteID string) (entities.Sale, error) {
	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Sale{}, err
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.Sale{}, ErrQuoteConflict
	}
	sale, err := u.saleRepo.GetByID(ctx, entities.SaleIDForQuote(quoteID))
	if err != nil {
		return entities.Sale{}, err
	}
	if sale.ID == "" {
		return entities.Sale{}, &CascadeError{Stage: "approve", QuoteID: quoteID, Err: ErrQuoteConflict}
	}
	log.Printf("[cascade][usecase] approve already applied quote_id=%s sale_id=%s", quoteID, sale.ID)
	return sale, nil
}

func (u *CascadeUseCase) existingOrRepairedSale(ctx context.Context, q entities.Quote, actorID string) (entities.Sale, error) {
	sale, err := u.saleRepo.GetByID(ctx, entities.SaleIDForQuote(q.ID))
	if err != nil {
		return entities.Sale{}, err
	}
	if sale.ID != "" {
		log.Printf("[cascade][usecase] quote already approved quote_id=%s sale_id=%s", q.ID, sale.ID)
		return sale, nil
	}

	log.Printf("[cascade][usecase] approved quote without sale quote_id=%s; repairing", q.ID)
	entry, err := u.entryRepo.GetByID(ctx, entities.InflowEntryIDForQuote(q.ID))
	if err != nil {
		return entities.Sale{}, err
	}
	repaired, err := u.repair(ctx, q, actorOr(actorID, q.CreatedBy), sale, entry)
	if err != nil {
		return entities.Sale{}, err
	}
	return repaired, nil
}

func (u *CascadeUseCase) Reject(ctx context.Context, quoteID, actorID string) (entities.Quote, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := entities.CanTransition(q.Status, entities.QuoteStatusRejected); err != nil {
		return entities.Quote{}, err
	}

	updated, err := u.quoteRepo.UpdateStatus(ctx, q.ID, entities.QuoteStatusRejected, q.Version)
	if errors.Is(err, interfaces.ErrWriteConflict) {
		return entities.Quote{}, ErrQuoteConflict
	}
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[cascade][usecase] reject success quote_id=%s", q.ID)

	u.publish(entities.DomainEvent{
		Type:       entities.EventQuoteRejected,
		QuoteID:    q.ID,
		UserID:     actorOr(actorID, q.CreatedBy),
		ClientName: u.clientName(ctx, q.ClientID),
		Amount:     q.Total,
		OccurredAt: nowFunc(),
	})
	return updated, nil
}

// ConfirmSale is a no-op on confirmed sales.
func (u *CascadeUseCase) ConfirmSale(ctx context.Context, saleID, actorID string) (entities.Sale, error) {
	s, err := u.loadSale(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}
	switch s.Status {
	case entities.SaleStatusConfirmed:
		return s, nil
	case entities.SaleStatusCancelled:
		return entities.Sale{}, ErrSaleCancelled
	}

	updated, err := u.saleRepo.UpdateStatus(ctx, s.ID, entities.SaleStatusConfirmed)
	if err != nil {
		return entities.Sale{}, err
	}
	if updated.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	log.Printf("[cascade][usecase] sale confirmed sale_id=%s", s.ID)

	u.publish(entities.DomainEvent{
		Type:       entities.EventSaleConfirmed,
		QuoteID:    s.QuoteID,
		SaleID:     s.ID,
		UserID:     actorOr(actorID, s.CreatedBy),
		Amount:     s.Total,
		OccurredAt: nowFunc(),
	})
	return updated, nil
}

// CancelSale cancels the sale and its pending ledger lines together.
// Confirmed lines are kept: that money already moved.
func (u *CascadeUseCase) CancelSale(ctx context.Context, saleID, actorID string) (entities.Sale, error) {
	s, err := u.loadSale(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.Status == entities.SaleStatusCancelled {
		return s, nil
	}
	if u.store == nil {
		return entities.Sale{}, ErrCascadeUnavailable
	}

	entries, err := u.entryRepo.ListBySaleID(ctx, s.ID)
	if err != nil {
		return entities.Sale{}, err
	}
	var pendingIDs []string
	for _, e := range entries {
		if e.Status == entities.EntryStatusPending {
			pendingIDs = append(pendingIDs, e.ID)
		}
	}

	if err := u.store.CommitSaleCancellation(ctx, s.ID, pendingIDs); err != nil {
		log.Printf("[cascade][usecase] cancel commit failed sale_id=%s err=%v", s.ID, err)
		return entities.Sale{}, &CascadeError{Stage: "cancel", QuoteID: s.QuoteID, SaleID: s.ID, Err: err}
	}
	log.Printf("[cascade][usecase] sale cancelled sale_id=%s entries=%d", s.ID, len(pendingIDs))

	s.Status = entities.SaleStatusCancelled
	u.publish(entities.DomainEvent{
		Type:       entities.EventSaleCancelled,
		QuoteID:    s.QuoteID,
		SaleID:     s.ID,
		UserID:     actorOr(actorID, s.CreatedBy),
		Amount:     s.Total,
		OccurredAt: nowFunc(),
	})
	return s, nil
}

func (u *CascadeUseCase) RecordOutflow(ctx context.Context, in OutflowInput) (entities.FinancialEntry, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	if err := validateInput(in); err != nil {
		return entities.FinancialEntry{}, err
	}
	if !in.Amount.IsPositive() {
		return entities.FinancialEntry{}, entities.NewValidationError("amount", "must be greater than zero")
	}

	now := nowFunc()
	entryDate := in.EntryDate
	if entryDate.IsZero() {
		entryDate = now
	}
	e := entities.FinancialEntry{
		ID:          uuid.NewString(),
		Type:        entities.EntryTypeOutflow,
		Amount:      entities.RoundMoney(in.Amount),
		Description: in.Description,
		Category:    in.Category,
		Status:      entities.EntryStatusConfirmed,
		EntryDate:   entryDate.UTC(),
		CreatedBy:   in.ActorID,
		CreatedAt:   now,
	}
	created, err := u.entryRepo.Create(ctx, e)
	if err != nil {
		log.Printf("[cascade][usecase] outflow create failed err=%v", err)
		return entities.FinancialEntry{}, err
	}

	u.publish(entities.DomainEvent{
		Type:       entities.EventOutflowRecorded,
		EntryID:    created.ID,
		UserID:     in.ActorID,
		Amount:     created.Amount,
		Note:       created.Description,
		OccurredAt: now,
	})
	return created, nil
}

// Reconcile scans approved quotes and writes whichever derived record is
// missing, using the same deterministic ids as Approve. Failures on one quote
// do not stop the run.
func (u *CascadeUseCase) Reconcile(ctx context.Context) (ReconcileReport, error) {
	report := ReconcileReport{Repaired: []string{}, Failed: []string{}}
	if u.store == nil {
		return report, ErrCascadeUnavailable
	}

	quotes, err := u.quoteRepo.ListByStatus(ctx, entities.QuoteStatusApproved)
	if err != nil {
		return report, err
	}
	for _, q := range quotes {
		report.Scanned++
		repaired, err := u.repairIfNeeded(ctx, q)
		if err != nil {
			log.Printf("[cascade][usecase] reconcile failed quote_id=%s err=%v", q.ID, err)
			report.Failed = append(report.Failed, q.ID)
			continue
		}
		if repaired {
			report.Repaired = append(report.Repaired, q.ID)
		}
	}
	log.Printf("[cascade][usecase] reconcile done scanned=%d repaired=%d failed=%d", report.Scanned, len(report.Repaired), len(report.Failed))

	if len(report.Repaired) > 0 {
		u.publish(entities.DomainEvent{
			Type:       entities.EventCascadeReconciled,
			Note:       fmt.Sprintf("%d approved quotes repaired", len(report.Repaired)),
			Amount:     decimal.Zero,
			OccurredAt: nowFunc(),
		})
	}
	return report, nil
}

func (u *CascadeUseCase) repairIfNeeded(ctx context.Context, q entities.Quote) (bool, error) {
	sale, err := u.saleRepo.GetByID(ctx, entities.SaleIDForQuote(q.ID))
	if err != nil {
		return false, err
	}
	entry, err := u.entryRepo.GetByID(ctx, entities.InflowEntryIDForQuote(q.ID))
	if err != nil {
		return false, err
	}
	if sale.ID != "" && entry.ID != "" {
		return false, nil
	}
	if _, err := u.repair(ctx, q, q.CreatedBy, sale, entry); err != nil {
		return false, err
	}
	return true, nil
}

// repair writes the missing half (or both halves) of an approval cascade.
// Zero-valued existing records are the missing ones.
func (u *CascadeUseCase) repair(ctx context.Context, q entities.Quote, actorID string, existingSale entities.Sale, existingEntry entities.FinancialEntry) (entities.Sale, error) {
	if u.store == nil {
		return entities.Sale{}, ErrCascadeUnavailable
	}

	sale, entry := derivedRecords(q, actorID, q.PaymentMethod, nowFunc())
	var salePtr *entities.Sale
	var entryPtr *entities.FinancialEntry
	if existingSale.ID == "" {
		salePtr = &sale
	} else {
		sale = existingSale
	}
	if existingEntry.ID == "" {
		entryPtr = &entry
	}
	if salePtr == nil && entryPtr == nil {
		return sale, nil
	}

	if err := u.store.CommitRepair(ctx, salePtr, entryPtr); err != nil {
		return entities.Sale{}, &CascadeError{Stage: "repair", QuoteID: q.ID, SaleID: sale.ID, Err: err}
	}
	log.Printf("[cascade][usecase] repaired quote_id=%s sale_written=%t entry_written=%t", q.ID, salePtr != nil, entryPtr != nil)
	return sale, nil
}

// CreateManualSale registers the sale of an approved quote by hand, with an
// explicit payment method. A quote never has more than one sale.
func (u *CascadeUseCase) CreateManualSale(ctx context.Context, quoteID, paymentMethod, actorID string) (entities.Sale, error) {
	q, err := u.loadQuote(ctx, quoteID)
	if err != nil {
		return entities.Sale{}, err
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.Sale{}, ErrQuoteNotApproved
	}
	if u.store == nil {
		return entities.Sale{}, ErrCascadeUnavailable
	}

	existing, err := u.saleRepo.GetByID(ctx, entities.SaleIDForQuote(q.ID))
	if err != nil {
		return entities.Sale{}, err
	}
	if existing.ID != "" {
		return entities.Sale{}, ErrSaleAlreadyExists
	}
	existingEntry, err := u.entryRepo.GetByID(ctx, entities.InflowEntryIDForQuote(q.ID))
	if err != nil {
		return entities.Sale{}, err
	}

	method := strings.TrimSpace(paymentMethod)
	if method == "" {
		method = q.PaymentMethod
	}
	now := nowFunc()
	sale, entry := derivedRecords(q, actorOr(actorID, q.CreatedBy), method, now)
	var entryPtr *entities.FinancialEntry
	if existingEntry.ID == "" {
		entryPtr = &entry
	}

	err = u.store.CommitRepair(ctx, &sale, entryPtr)
	if errors.Is(err, interfaces.ErrWriteConflict) {
		return entities.Sale{}, ErrSaleAlreadyExists
	}
	if err != nil {
		return entities.Sale{}, &CascadeError{Stage: "manual_sale", QuoteID: q.ID, SaleID: sale.ID, Err: err}
	}
	log.Printf("[cascade][usecase] manual sale created quote_id=%s sale_id=%s method=%s", q.ID, sale.ID, sale.PaymentMethod)

	u.publish(entities.DomainEvent{
		Type:       entities.EventSaleCreated,
		QuoteID:    q.ID,
		SaleID:     sale.ID,
		UserID:     sale.CreatedBy,
		ClientName: u.clientName(ctx, q.ClientID),
		Amount:     sale.Total,
		OccurredAt: now,
	})
	return sale, nil
}

// derivedRecords builds the sale and inflow entry an approved quote owns.
func derivedRecords(q entities.Quote, actorID, paymentMethod string, now time.Time) (entities.Sale, entities.FinancialEntry) {
	if strings.TrimSpace(paymentMethod) == "" {
		paymentMethod = entities.DefaultPaymentMethod
	}
	total := entities.RoundMoney(q.Total)
	sale := entities.Sale{
		ID:            entities.SaleIDForQuote(q.ID),
		QuoteID:       q.ID,
		SaleDate:      now,
		Total:         total,
		PaymentMethod: paymentMethod,
		Status:        entities.SaleStatusPending,
		CreatedBy:     actorID,
		CreatedAt:     now,
	}
	ref := q.Number
	if ref == "" {
		ref = entities.ShortRef(q.ID)
	}
	entry := entities.FinancialEntry{
		ID:          entities.InflowEntryIDForQuote(q.ID),
		SaleID:      sale.ID,
		Type:        entities.EntryTypeInflow,
		Amount:      total,
		Description: fmt.Sprintf("Sale %s from quote %s", entities.ShortRef(sale.ID), ref),
		Category:    entities.SalesCategory,
		Status:      entities.EntryStatusPending,
		EntryDate:   now,
		CreatedBy:   actorID,
		CreatedAt:   now,
	}
	return sale, entry
}

func (u *CascadeUseCase) loadQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *CascadeUseCase) loadSale(ctx context.Context, saleID string) (entities.Sale, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	s, err := u.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

// clientName is best effort; messages fall back to the ids.
func (u *CascadeUseCase) clientName(ctx context.Context, clientID string) string {
	if u.clientRepo == nil || clientID == "" {
		return ""
	}
	c, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		log.Printf("[cascade][usecase] client lookup failed client_id=%s err=%v", clientID, err)
		return ""
	}
	return c.Name
}

func (u *CascadeUseCase) publish(ev entities.DomainEvent) {
	if u.events == nil {
		return
	}
	u.events.Publish(ev)
}

func actorOr(actorID, fallback string) string {
	if a := strings.TrimSpace(actorID); a != "" {
		return a
	}
	return fallback
}
