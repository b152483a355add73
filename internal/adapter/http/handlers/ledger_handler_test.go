package handlers

import (
	"context"
	"net/http"
	"testing"

	"winnet_crm/internal/adapter/http/handlers/mocks"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/domain/ledger"
	"winnet_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newLedgerRouter(t *testing.T) (*gin.Engine, *mocks.MockILedgerUseCase, *mocks.MockICascadeUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockILedgerUseCase(ctrl)
	cascade := mocks.NewMockICascadeUseCase(ctrl)
	h := NewLedgerHandler(uc, cascade)

	r := gin.New()
	r.POST("/v1/ledger/outflows", h.RecordOutflow)
	r.GET("/v1/ledger/cash-flow", h.CashFlow)
	r.GET("/v1/ledger/kpis", h.KPIs)
	r.GET("/v1/ledger/pending", h.PendingFinancials)
	r.GET("/v1/ledger/projections", h.Projections)
	r.GET("/v1/ledger/alerts", h.Alerts)
	r.GET("/v1/ledger/reports/:month", h.MonthlyReport)
	return r, uc, cascade
}

func TestLedgerHandler_RecordOutflow(t *testing.T) {
	t.Run("missing category", func(t *testing.T) {
		r, _, _ := newLedgerRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/ledger/outflows", `{"amount":10,"description":"Rent"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, _, cascade := newLedgerRouter(t)
		cascade.EXPECT().RecordOutflow(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.OutflowInput) (entities.FinancialEntry, error) {
			if !in.Amount.Equal(decimal.NewFromInt(1200)) || in.Category != "rent" || in.ActorID != "u-1" || in.EntryDate.Day() != 5 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.FinancialEntry{ID: "e-1", Type: entities.EntryTypeOutflow, Amount: in.Amount, Status: entities.EntryStatusConfirmed}, nil
		})

		w := doRequest(r, http.MethodPost, "/v1/ledger/outflows", `{"amount":"1200","description":"Office rent","category":"rent","entry_date":"2026-05-05"}`, map[string]string{HeaderUserID: "u-1"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["type"] != "outflow" || body["status"] != "confirmed" || body["amount"] != "1200.00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLedgerHandler_CashFlow(t *testing.T) {
	cases := []struct {
		query  string
		months int
	}{
		{query: "?months=6", months: 6},
		{query: "", months: 0},
		{query: "?months=abc", months: 0},
	}
	for _, tc := range cases {
		t.Run("query "+tc.query, func(t *testing.T) {
			r, uc, _ := newLedgerRouter(t)
			uc.EXPECT().CashFlow(gomock.Any(), tc.months).Return([]ledger.MonthlyCashFlow{{Month: "2026-05"}}, nil)

			w := doRequest(r, http.MethodGet, "/v1/ledger/cash-flow"+tc.query, "", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
		})
	}
}

func TestLedgerHandler_ReadModel(t *testing.T) {
	t.Run("kpis include balance", func(t *testing.T) {
		r, uc, _ := newLedgerRouter(t)
		uc.EXPECT().KPIs(gomock.Any()).Return(ledger.KPIs{InflowsTotal: decimal.NewFromInt(500), OutflowsTotal: decimal.NewFromInt(200), PendingPaymentsCount: 2}, nil)

		w := doRequest(r, http.MethodGet, "/v1/ledger/kpis", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["balance"] != "300" || body["pending_payments_count"] != float64(2) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("pending", func(t *testing.T) {
		r, uc, _ := newLedgerRouter(t)
		uc.EXPECT().PendingFinancials(gomock.Any()).Return([]ledger.PendingFinancial{{SaleID: "sale-1"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/ledger/pending", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("projections", func(t *testing.T) {
		r, uc, _ := newLedgerRouter(t)
		uc.EXPECT().Projections(gomock.Any()).Return([]ledger.Projection{{Month: "2026-06", Status: ledger.ProjectionPositive}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/ledger/projections", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		decodeBody(t, w, &body)
		if len(body) != 1 || body[0]["status"] != "positive" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("alerts", func(t *testing.T) {
		r, uc, _ := newLedgerRouter(t)
		uc.EXPECT().Alerts(gomock.Any()).Return([]string{"Low balance"}, nil)

		w := doRequest(r, http.MethodGet, "/v1/ledger/alerts", "", nil)
		if w.Code != http.StatusOK || w.Body.String() != `{"alerts":["Low balance"]}` {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("report bad month", func(t *testing.T) {
		r, uc, _ := newLedgerRouter(t)
		uc.EXPECT().MonthlyReport(gomock.Any(), "2026-13").Return(ledger.MonthlyReport{}, entities.NewValidationError("month", "must be formatted as YYYY-MM"))

		w := doRequest(r, http.MethodGet, "/v1/ledger/reports/2026-13", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("report", func(t *testing.T) {
		r, uc, _ := newLedgerRouter(t)
		uc.EXPECT().MonthlyReport(gomock.Any(), "2026-05").Return(ledger.MonthlyReport{Period: "2026-05", Transactions: 4, ActiveClients: 2}, nil)

		w := doRequest(r, http.MethodGet, "/v1/ledger/reports/2026-05", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["period"] != "2026-05" || body["transactions"] != float64(4) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
