package handlers

import (
	"errors"
	"net/http"
	"testing"

	"winnet_crm/internal/adapter/http/handlers/mocks"
	"winnet_crm/internal/domain/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPipelineHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIPipelineUseCase) {
		uc := mocks.NewMockIPipelineUseCase(gomock.NewController(t))
		h := NewPipelineHandler(uc)
		r := gin.New()
		r.GET("/v1/pipeline/board", h.Board)
		r.GET("/v1/pipeline/metrics", h.Metrics)
		return r, uc
	}

	t.Run("board", func(t *testing.T) {
		r, uc := setup(t)
		board := []pipeline.Stage{{StageDefinition: pipeline.DefaultStages[0], Opportunities: []pipeline.Opportunity{{QuoteID: "q-1"}}}}
		uc.EXPECT().Board(gomock.Any()).Return(board, nil)

		w := doRequest(r, http.MethodGet, "/v1/pipeline/board", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		decodeBody(t, w, &body)
		if len(body) != 1 || len(body[0]["opportunities"].([]any)) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Metrics(gomock.Any()).Return(pipeline.Metrics{TotalOpportunities: 3, PipelineValue: decimal.NewFromInt(900), ConversionRate: 50}, nil)

		w := doRequest(r, http.MethodGet, "/v1/pipeline/metrics", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["total_opportunities"] != float64(3) || body["conversion_rate"] != float64(50) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("metrics error", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Metrics(gomock.Any()).Return(pipeline.Metrics{}, errors.New("scan failed"))

		w := doRequest(r, http.MethodGet, "/v1/pipeline/metrics", "", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
