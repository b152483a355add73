package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentRejected                = errors.New("payment rejected by provider")
	ErrPaymentNotApproved             = errors.New("payment not approved by provider")
	ErrPaymentExceedsBalance          = errors.New("payment exceeds outstanding balance")
	ErrSaleAlreadyPaid                = errors.New("sale already paid")
	ErrInstallmentsAlreadyScheduled   = errors.New("installments already scheduled")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const maxInstallments = 24

// sandboxPayerEmail is the Mercado Pago sandbox fallback payer.
const sandboxPayerEmail = "test_user_br@testuser.com"

// PaymentOptions carries the provider knobs the payload enrichment needs.
type PaymentOptions struct {
	MockMode        bool
	Sandbox         bool
	TestPayerEmail  string
	TestPayerUserID string
}

// ConfirmPaymentInput confirms either a scheduled installment (PaymentID) or a
// new payment. A zero Amount on a new payment means the outstanding balance.
// ProviderPayload, when present, is charged through the payment gateway first.
type ConfirmPaymentInput struct {
	SaleID          string
	PaymentID       string
	Amount          decimal.Decimal
	Method          string
	ProviderPayload json.RawMessage
	ActorID         string
}

// IPaymentUseCase handles money received against sales.
//
//   - ConfirmPayment: payment confirmed; once the sale is fully paid its
//     pending inflow entries are confirmed in the same write
//   - ScheduleInstallments: n pending payments summing exactly to the sale total
type IPaymentUseCase interface {
	ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) (entities.Payment, error)
	ScheduleInstallments(ctx context.Context, saleID string, n int, method string) ([]entities.Payment, error)
	ListBySale(ctx context.Context, saleID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	saleRepo  interfaces.ISaleRepository
	entryRepo interfaces.IFinancialEntryRepository
	store     interfaces.ICascadeStore
	gateway   interfaces.IPaymentGateway
	events    interfaces.IEventPublisher
	opts      PaymentOptions
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	saleRepo interfaces.ISaleRepository,
	entryRepo interfaces.IFinancialEntryRepository,
	store interfaces.ICascadeStore,
	gateway interfaces.IPaymentGateway,
	events interfaces.IEventPublisher,
	opts PaymentOptions,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:      repo,
		saleRepo:  saleRepo,
		entryRepo: entryRepo,
		store:     store,
		gateway:   gateway,
		events:    events,
		opts:      opts,
	}
}

func (u *PaymentUseCase) ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) (entities.Payment, error) {
	log.Printf("[payment][usecase] confirm start raw_sale_id=%q payment_id=%q payload_len=%d", in.SaleID, in.PaymentID, len(in.ProviderPayload))
	sale, err := u.loadSale(ctx, in.SaleID)
	if err != nil {
		return entities.Payment{}, err
	}
	if sale.Status == entities.SaleStatusCancelled {
		return entities.Payment{}, ErrSaleCancelled
	}

	existing, err := u.repo.ListBySaleID(ctx, sale.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	paid := confirmedTotal(existing)
	outstanding := sale.Total.Sub(paid)

	now := nowFunc()
	var p entities.Payment
	isNew := true
	if id := strings.TrimSpace(in.PaymentID); id != "" {
		found, ok := findPayment(existing, id)
		if !ok {
			return entities.Payment{}, ErrPaymentNotFound
		}
		if found.Status == entities.PaymentStatusConfirmed {
			log.Printf("[payment][usecase] payment already confirmed payment_id=%s", found.ID)
			return found, nil
		}
		p, isNew = found, false
	} else {
		if !outstanding.IsPositive() {
			return entities.Payment{}, ErrSaleAlreadyPaid
		}
		amount := in.Amount
		if amount.IsZero() {
			amount = outstanding
		}
		p = entities.Payment{
			ID:               uuid.NewString(),
			SaleID:           sale.ID,
			AmountPaid:       entities.RoundMoney(amount),
			Method:           firstNonEmpty(in.Method, sale.PaymentMethod, entities.DefaultPaymentMethod),
			InstallmentNum:   1,
			InstallmentTotal: 1,
			CreatedAt:        now,
		}
	}
	if !p.AmountPaid.IsPositive() {
		return entities.Payment{}, entities.NewValidationError("amount", "must be greater than zero")
	}
	if p.AmountPaid.GreaterThan(outstanding) {
		return entities.Payment{}, ErrPaymentExceedsBalance
	}

	if len(in.ProviderPayload) > 0 {
		if err := u.charge(ctx, sale, &p, in.ProviderPayload); err != nil {
			if isNew && p.ProviderPaymentID != "" {
				u.recordAttempt(ctx, p)
			}
			return entities.Payment{}, err
		}
	}

	p.Status = entities.PaymentStatusConfirmed
	p.PaymentDate = now
	commit := interfaces.PaymentCommit{Payment: p, IsNew: isNew, ConfirmedAt: now}
	if !paid.Add(p.AmountPaid).LessThan(sale.Total) {
		commit.EntryIDs, err = u.pendingInflowIDs(ctx, sale.ID)
		if err != nil {
			return entities.Payment{}, err
		}
	}

	if u.store == nil {
		return entities.Payment{}, ErrCascadeUnavailable
	}
	if err := u.store.CommitPayment(ctx, commit); err != nil {
		log.Printf("[payment][usecase] commit failed sale_id=%s payment_id=%s err=%v", sale.ID, p.ID, err)
		return entities.Payment{}, &CascadeError{Stage: "payment", QuoteID: sale.QuoteID, SaleID: sale.ID, Err: err}
	}
	log.Printf("[payment][usecase] confirm success sale_id=%s payment_id=%s amount=%s entries=%d", sale.ID, p.ID, p.AmountPaid.StringFixed(2), len(commit.EntryIDs))

	if u.events != nil {
		u.events.Publish(entities.DomainEvent{
			Type:       entities.EventPaymentConfirmed,
			QuoteID:    sale.QuoteID,
			SaleID:     sale.ID,
			UserID:     actorOr(in.ActorID, sale.CreatedBy),
			Amount:     p.AmountPaid,
			OccurredAt: now,
		})
	}
	return p, nil
}

// charge calls the provider and keeps its response on p. Only an approved
// provider status lets the confirmation continue.
func (u *PaymentUseCase) charge(ctx context.Context, sale entities.Sale, p *entities.Payment, payload json.RawMessage) error {
	if !json.Valid(payload) {
		log.Printf("[payment][usecase] invalid payload (not-json) sale_id=%s", sale.ID)
		return ErrInvalidMPPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured sale_id=%s", sale.ID)
		return ErrPaymentGatewayNotConfigured
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if !u.opts.MockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id sale_id=%s", sale.ID)
			return ErrInvalidMPPayload
		}
		if !u.opts.MockMode {
			u.normalizeSandboxPayerFromUserID(reqMap)
			u.ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				log.Printf("[payment][usecase] missing/invalid payer sale_id=%s", sale.ID)
				return ErrInvalidMPPayload
			}
		}

		// Mercado Pago uses external_reference to reconcile its webhooks.
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = sale.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Sale %s", entities.ShortRef(sale.ID))
		}
		reqMap["transaction_amount"] = p.AmountPaid.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	} else {
		log.Printf("[payment][usecase] payload unmarshal failed sale_id=%s err=%v", sale.ID, err)
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed sale_id=%s err=%v", sale.ID, err)
		return classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway answered sale_id=%s provider_payment_id=%s provider_status=%s", sale.ID, providerID, providerStatus)

	p.ProviderPaymentID = providerID
	p.ProviderPayloadRaw = providerResp
	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed sale_id=%s err=%v", sale.ID, err)
	} else {
		p.ProviderPayload = parsed
	}

	switch strings.ToLower(providerStatus) {
	case "approved":
		return nil
	case "rejected", "cancelled":
		p.Status = entities.PaymentStatusFailed
		return ErrPaymentRejected
	}
	p.Status = entities.PaymentStatusPending
	return fmt.Errorf("%w: status %s", ErrPaymentNotApproved, providerStatus)
}

// recordAttempt keeps a non-approved provider charge traceable.
func (u *PaymentUseCase) recordAttempt(ctx context.Context, p entities.Payment) {
	if _, err := u.repo.Create(ctx, p); err != nil {
		log.Printf("[payment][usecase] failed recording provider attempt payment_id=%s err=%v", p.ID, err)
	}
}

func (u *PaymentUseCase) pendingInflowIDs(ctx context.Context, saleID string) ([]string, error) {
	entries, err := u.entryRepo.ListBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.Type == entities.EntryTypeInflow && e.Status == entities.EntryStatusPending {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

// ScheduleInstallments splits the sale total into n monthly pending payments.
// Cents that do not divide evenly go to the last installment.
func (u *PaymentUseCase) ScheduleInstallments(ctx context.Context, saleID string, n int, method string) ([]entities.Payment, error) {
	if n < 1 || n > maxInstallments {
		return nil, entities.NewValidationError("installments", fmt.Sprintf("must be between 1 and %d", maxInstallments))
	}
	sale, err := u.loadSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale.Status == entities.SaleStatusCancelled {
		return nil, ErrSaleCancelled
	}
	existing, err := u.repo.ListBySaleID(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrInstallmentsAlreadyScheduled
	}
	if u.store == nil {
		return nil, ErrCascadeUnavailable
	}

	amounts := SplitInstallments(sale.Total, n)
	now := nowFunc()
	method = firstNonEmpty(method, sale.PaymentMethod, entities.DefaultPaymentMethod)
	payments := make([]entities.Payment, 0, n)
	for i, amount := range amounts {
		payments = append(payments, entities.Payment{
			ID:               uuid.NewString(),
			SaleID:           sale.ID,
			AmountPaid:       amount,
			PaymentDate:      now.AddDate(0, i, 0),
			Method:           method,
			InstallmentNum:   i + 1,
			InstallmentTotal: n,
			Status:           entities.PaymentStatusPending,
			CreatedAt:        now,
		})
	}
	if err := u.store.CommitInstallments(ctx, payments); err != nil {
		log.Printf("[payment][usecase] installments commit failed sale_id=%s err=%v", sale.ID, err)
		return nil, err
	}
	log.Printf("[payment][usecase] installments scheduled sale_id=%s n=%d", sale.ID, n)
	return payments, nil
}

// SplitInstallments divides total into n cent amounts that add up to total.
func SplitInstallments(total decimal.Decimal, n int) []decimal.Decimal {
	count := decimal.NewFromInt(int64(n))
	base := total.Div(count).Truncate(2)
	out := make([]decimal.Decimal, n)
	for i := 0; i < n-1; i++ {
		out[i] = base
	}
	out[n-1] = total.Sub(base.Mul(decimal.NewFromInt(int64(n - 1))))
	return out
}

func (u *PaymentUseCase) ListBySale(ctx context.Context, saleID string) ([]entities.Payment, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return nil, ErrInvalidSaleID
	}
	return u.repo.ListBySaleID(ctx, saleID)
}

func (u *PaymentUseCase) loadSale(ctx context.Context, saleID string) (entities.Sale, error) {
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

func confirmedTotal(payments []entities.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p.Status == entities.PaymentStatusConfirmed {
			sum = sum.Add(p.AmountPaid)
		}
	}
	return sum
}

func findPayment(payments []entities.Payment, id string) (entities.Payment, bool) {
	for _, p := range payments {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Payment{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.opts.TestPayerEmail != "" {
			payer["email"] = u.opts.TestPayerEmail
		} else if u.opts.Sandbox {
			payer["email"] = sandboxPayerEmail
		}
	}
}

func (u *PaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !u.opts.Sandbox || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}

	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
