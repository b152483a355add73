package request

import (
	"encoding/json"
	"strings"
	"winnet_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

// PaymentRequest confirms money received against a sale.
//
// `mp_payload`, when present, is forwarded as-is to Mercado Pago before the
// payment is recorded. Without it the payment is recorded as received
// off-platform (cash, transfer, boleto paid at the bank).
type PaymentRequest struct {
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

func (r PaymentRequest) ToInput(saleID, actorID string) usecase.ConfirmPaymentInput {
	in := usecase.ConfirmPaymentInput{
		SaleID:    saleID,
		PaymentID: strings.TrimSpace(r.PaymentID),
		Amount:    r.Amount,
		Method:    strings.TrimSpace(r.Method),
		ActorID:   actorID,
	}
	if raw := strings.TrimSpace(string(r.MPPayload)); raw != "" && raw != "null" {
		in.ProviderPayload = r.MPPayload
	}
	return in
}

type InstallmentsRequest struct {
	Installments int    `json:"installments" binding:"required,min=1"`
	Method       string `json:"method"`
}
