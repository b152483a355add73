package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"winnet_crm/internal/adapter/http/handlers/mocks"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newSaleRouter(t *testing.T) (*gin.Engine, *mocks.MockICascadeUseCase, *mocks.MockIPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	cascade := mocks.NewMockICascadeUseCase(ctrl)
	payments := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewSaleHandler(cascade, payments)

	r := gin.New()
	r.PATCH("/v1/sales/:id/confirm", h.ConfirmSale)
	r.PATCH("/v1/sales/:id/cancel", h.CancelSale)
	r.GET("/v1/sales/:id/payments", h.ListPayments)
	r.POST("/v1/sales/:id/payments", h.ConfirmPayment)
	r.POST("/v1/sales/:id/installments", h.ScheduleInstallments)
	return r, cascade, payments
}

func TestSaleHandler_Lifecycle(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		r, cascade, _ := newSaleRouter(t)
		cascade.EXPECT().ConfirmSale(gomock.Any(), "sale-1", "u-1").Return(entities.Sale{ID: "sale-1", Status: entities.SaleStatusConfirmed}, nil)

		w := doRequest(r, http.MethodPatch, "/v1/sales/sale-1/confirm", "", map[string]string{HeaderUserID: "u-1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["status"] != "confirmed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("confirm cancelled sale", func(t *testing.T) {
		r, cascade, _ := newSaleRouter(t)
		cascade.EXPECT().ConfirmSale(gomock.Any(), "sale-1", "").Return(entities.Sale{}, usecase.ErrSaleCancelled)

		w := doRequest(r, http.MethodPatch, "/v1/sales/sale-1/confirm", "", nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel not found", func(t *testing.T) {
		r, cascade, _ := newSaleRouter(t)
		cascade.EXPECT().CancelSale(gomock.Any(), "nope", "").Return(entities.Sale{}, usecase.ErrSaleNotFound)

		w := doRequest(r, http.MethodPatch, "/v1/sales/nope/cancel", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSaleHandler_ConfirmPayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _, _ := newSaleRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/sales/sale-1/payments", "{", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body read error", func(t *testing.T) {
		r, _, _ := newSaleRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/sales/sale-1/payments", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body pays outstanding balance", func(t *testing.T) {
		r, _, payments := newSaleRouter(t)
		payments.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.ConfirmPaymentInput) (entities.Payment, error) {
			if in.SaleID != "sale-1" || !in.Amount.IsZero() || in.PaymentID != "" || in.ProviderPayload != nil {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Payment{ID: "pay-1", SaleID: "sale-1", AmountPaid: decimal.NewFromInt(225), Status: entities.PaymentStatusConfirmed}, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/sales/sale-1/payments", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["payment_id"] != "pay-1" || body["amount_paid"] != "225.00" || body["status"] != "confirmed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("provider payload forwarded", func(t *testing.T) {
		r, _, payments := newSaleRouter(t)
		payments.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.ConfirmPaymentInput) (entities.Payment, error) {
			if string(in.ProviderPayload) != `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}` {
				t.Fatalf("unexpected payload: %s", in.ProviderPayload)
			}
			if !in.Amount.Equal(decimal.NewFromInt(100)) || in.ActorID != "u-1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Payment{ID: "pay-1", Status: entities.PaymentStatusConfirmed}, nil
		})

		body := `{"amount":100,"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`
		w := doRequest(r, http.MethodPost, "/v1/sales/sale-1/payments", body, map[string]string{HeaderUserID: "u-1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "provider rejected", err: usecase.ErrPaymentRejected, status: http.StatusUnprocessableEntity, code: "PAYMENT_REJECTED"},
		{name: "provider pending", err: usecase.ErrPaymentNotApproved, status: http.StatusConflict, code: "PAYMENT_NOT_APPROVED"},
		{name: "unauthorized", err: usecase.ErrPaymentGatewayUnauthorized, status: http.StatusUnauthorized, code: "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{name: "invalid users", err: usecase.ErrPaymentGatewayInvalidUsers, status: http.StatusBadRequest, code: "PAYMENT_PROVIDER_INVALID_USERS"},
		{name: "customer not found", err: usecase.ErrPaymentGatewayCustomerNotFound, status: http.StatusBadRequest, code: "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{name: "gateway missing", err: usecase.ErrPaymentGatewayNotConfigured, status: http.StatusServiceUnavailable, code: "SERVICE_UNAVAILABLE"},
		{name: "already paid", err: usecase.ErrSaleAlreadyPaid, status: http.StatusConflict, code: "SALE_ALREADY_PAID"},
		{name: "exceeds balance", err: usecase.ErrPaymentExceedsBalance, status: http.StatusConflict, code: "PAYMENT_EXCEEDS_BALANCE"},
		{name: "unknown installment", err: usecase.ErrPaymentNotFound, status: http.StatusNotFound, code: "PAYMENT_NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _, payments := newSaleRouter(t)
			payments.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).Return(entities.Payment{}, tc.err)

			w := doRequest(r, http.MethodPost, "/v1/sales/sale-1/payments", `{"method":"pix"}`, nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			var body map[string]string
			decodeBody(t, w, &body)
			if body["error_code"] != tc.code {
				t.Fatalf("expected code %s, got %v", tc.code, body)
			}
		})
	}
}

func TestSaleHandler_Payments(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, _, payments := newSaleRouter(t)
		payments.EXPECT().ListBySale(gomock.Any(), "sale-1").Return([]entities.Payment{{ID: "p-1"}, {ID: "p-2"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/sales/sale-1/payments", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		decodeBody(t, w, &body)
		if len(body) != 2 || body[0]["id"] != "p-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("installments invalid", func(t *testing.T) {
		r, _, _ := newSaleRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/sales/sale-1/installments", `{"installments":0}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("installments scheduled", func(t *testing.T) {
		r, _, payments := newSaleRouter(t)
		payments.EXPECT().ScheduleInstallments(gomock.Any(), "sale-1", 3, "boleto").Return([]entities.Payment{
			{ID: "p-1", InstallmentNum: 1, InstallmentTotal: 3},
			{ID: "p-2", InstallmentNum: 2, InstallmentTotal: 3},
			{ID: "p-3", InstallmentNum: 3, InstallmentTotal: 3},
		}, nil)

		w := doRequest(r, http.MethodPost, "/v1/sales/sale-1/installments", `{"installments":3,"method":"boleto"}`, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("installments already scheduled", func(t *testing.T) {
		r, _, payments := newSaleRouter(t)
		payments.EXPECT().ScheduleInstallments(gomock.Any(), "sale-1", 2, "").Return(nil, usecase.ErrInstallmentsAlreadyScheduled)

		w := doRequest(r, http.MethodPost, "/v1/sales/sale-1/installments", `{"installments":2}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
