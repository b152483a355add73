package response

import (
	"time"
	"winnet_crm/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID        string    `json:"payment_id"`
	ID               string    `json:"id"`
	SaleID           string    `json:"sale_id"`
	AmountPaid       string    `json:"amount_paid"`
	PaymentDate      time.Time `json:"payment_date"`
	Method           string    `json:"method"`
	InstallmentNum   int       `json:"installment_num"`
	InstallmentTotal int       `json:"installment_total"`
	Status           string    `json:"status"`

	ProviderPaymentID string                 `json:"provider_payment_id,omitempty"`
	MPPayloadRaw      string                 `json:"mp_payload_raw,omitempty"`
	MPPayload         map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.ID,
		ID:                p.ID,
		SaleID:            p.SaleID,
		AmountPaid:        money(p.AmountPaid),
		PaymentDate:       p.PaymentDate,
		Method:            p.Method,
		InstallmentNum:    p.InstallmentNum,
		InstallmentTotal:  p.InstallmentTotal,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		MPPayloadRaw:      string(p.ProviderPayloadRaw),
		MPPayload:         p.ProviderPayload,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
