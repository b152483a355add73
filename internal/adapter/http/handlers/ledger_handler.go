package handlers

import (
	"net/http"
	"strconv"
	request "winnet_crm/internal/adapter/http/dto/request"
	response "winnet_crm/internal/adapter/http/dto/response"
	"winnet_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LedgerHandler exposes the cash-flow read model. Manual outflows are the only
// write and go through the cascade so they share its store.
type LedgerHandler struct {
	ledger  usecase.ILedgerUseCase
	cascade usecase.ICascadeUseCase
}

func NewLedgerHandler(ledger usecase.ILedgerUseCase, cascade usecase.ICascadeUseCase) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, cascade: cascade}
}

// @Summary     Record outflow
// @Tags        ledger
// @Accept      json
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       payload  body  request.OutflowRequest  true  "Outflow"
// @Produce     json
// @Success     201  {object}  response.FinancialEntryResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /ledger/outflows [post]
func (h *LedgerHandler) RecordOutflow(c *gin.Context) {
	var payload request.OutflowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput(actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	entry, err := h.cascade.RecordOutflow(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromFinancialEntry(entry))
}

// CashFlow accepts ?months=N; anything unparsable falls back to the default
// window.
//
// @Summary     Monthly cash flow
// @Tags        ledger
// @Param       months  query  int  false  "Months back (1-36)"
// @Produce     json
// @Success     200  {array}   ledger.MonthlyCashFlow
// @Failure     500  {object}  pkg.HTTPError
// @Router      /ledger/cash-flow [get]
func (h *LedgerHandler) CashFlow(c *gin.Context) {
	months, _ := strconv.Atoi(c.Query("months"))
	flow, err := h.ledger.CashFlow(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flow)
}

// @Summary     Ledger KPIs
// @Tags        ledger
// @Produce     json
// @Success     200  {object}  map[string]interface{}
// @Failure     500  {object}  pkg.HTTPError
// @Router      /ledger/kpis [get]
func (h *LedgerHandler) KPIs(c *gin.Context) {
	kpis, err := h.ledger.KPIs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"inflows_this_month":     kpis.InflowsThisMonth,
		"outflows_this_month":    kpis.OutflowsThisMonth,
		"pending_sales_total":    kpis.PendingSalesTotal,
		"pending_payments_count": kpis.PendingPaymentsCount,
		"inflows_total":          kpis.InflowsTotal,
		"outflows_total":         kpis.OutflowsTotal,
		"balance":                kpis.Balance(),
	})
}

// @Summary     Pending financials
// @Tags        ledger
// @Produce     json
// @Success     200  {array}   ledger.PendingFinancial
// @Failure     500  {object}  pkg.HTTPError
// @Router      /ledger/pending [get]
func (h *LedgerHandler) PendingFinancials(c *gin.Context) {
	pending, err := h.ledger.PendingFinancials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}

// @Summary     Cash-flow projections
// @Tags        ledger
// @Produce     json
// @Success     200  {array}   ledger.Projection
// @Failure     500  {object}  pkg.HTTPError
// @Router      /ledger/projections [get]
func (h *LedgerHandler) Projections(c *gin.Context) {
	projections, err := h.ledger.Projections(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projections)
}

// @Summary     Financial alerts
// @Tags        ledger
// @Produce     json
// @Success     200  {object}  response.AlertsResponse
// @Failure     500  {object}  pkg.HTTPError
// @Router      /ledger/alerts [get]
func (h *LedgerHandler) Alerts(c *gin.Context) {
	alerts, err := h.ledger.Alerts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAlerts(alerts))
}

// MonthlyReport serves /reports/:month with month formatted as YYYY-MM.
//
// @Summary     Monthly report
// @Tags        ledger
// @Param       month  path  string  true  "Period as YYYY-MM"
// @Produce     json
// @Success     200  {object}  ledger.MonthlyReport
// @Failure     400  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /ledger/reports/{month} [get]
func (h *LedgerHandler) MonthlyReport(c *gin.Context) {
	report, err := h.ledger.MonthlyReport(c.Request.Context(), c.Param("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
