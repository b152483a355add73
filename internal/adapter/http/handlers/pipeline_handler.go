package handlers

import (
	"net/http"
	"winnet_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc}
}

// @Summary     Pipeline board
// @Tags        pipeline
// @Produce     json
// @Success     200  {array}   pipeline.Stage
// @Failure     500  {object}  pkg.HTTPError
// @Router      /pipeline/board [get]
func (h *PipelineHandler) Board(c *gin.Context) {
	board, err := h.usecase.Board(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// @Summary     Pipeline metrics
// @Tags        pipeline
// @Produce     json
// @Success     200  {object}  pipeline.Metrics
// @Failure     500  {object}  pkg.HTTPError
// @Router      /pipeline/metrics [get]
func (h *PipelineHandler) Metrics(c *gin.Context) {
	metrics, err := h.usecase.Metrics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
