package response

import (
	"encoding/json"
	"testing"
	"time"

	"winnet_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.Payment{
		ID:                 "pay-1",
		SaleID:             "sale-1",
		AmountPaid:         decimal.RequireFromString("33.4"),
		PaymentDate:        now,
		Method:             "pix",
		InstallmentNum:     3,
		InstallmentTotal:   3,
		Status:             entities.PaymentStatusConfirmed,
		ProviderPaymentID:  "123",
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.SaleID != "sale-1" || res.Status != "confirmed" || res.AmountPaid != "33.40" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.InstallmentNum != 3 || res.InstallmentTotal != 3 {
		t.Fatalf("unexpected installment: %+v", res)
	}
	if !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) || res.ProviderPaymentID != "123" {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}

	if got := FromPayments(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFromSaleAndEntry(t *testing.T) {
	now := time.Now().UTC()
	s := FromSale(entities.Sale{ID: "sale-1", QuoteID: "q-1", SaleDate: now, Total: decimal.NewFromInt(1500), PaymentMethod: "boleto", Status: entities.SaleStatusPending})
	if s.SaleID != "sale-1" || s.ID != "sale-1" || s.QuoteID != "q-1" || s.Total != "1500.00" || s.Status != "pending" {
		t.Fatalf("unexpected sale response: %+v", s)
	}

	e := FromFinancialEntry(entities.FinancialEntry{ID: "e-1", SaleID: "sale-1", Type: entities.EntryTypeInflow, Amount: decimal.RequireFromString("10.5"), Category: "sales", Status: entities.EntryStatusPending, EntryDate: now})
	if e.Type != "inflow" || e.Amount != "10.50" || e.Status != "pending" || !e.EntryDate.Equal(now) {
		t.Fatalf("unexpected entry response: %+v", e)
	}
}

func TestFromAlerts(t *testing.T) {
	body, err := json.Marshal(FromAlerts(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"alerts":[]}` {
		t.Fatalf("unexpected body: %s", body)
	}
}
