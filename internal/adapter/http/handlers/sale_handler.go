package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	request "winnet_crm/internal/adapter/http/dto/request"
	response "winnet_crm/internal/adapter/http/dto/response"
	"winnet_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles the sale lifecycle and money received against sales.
type SaleHandler struct {
	cascade  usecase.ICascadeUseCase
	payments usecase.IPaymentUseCase
}

func NewSaleHandler(cascade usecase.ICascadeUseCase, payments usecase.IPaymentUseCase) *SaleHandler {
	return &SaleHandler{cascade: cascade, payments: payments}
}

// @Summary     Confirm sale
// @Tags        sales
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       id  path  string  true  "Sale ID"
// @Produce     json
// @Success     200  {object}  response.SaleResponse
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /sales/{id}/confirm [patch]
func (h *SaleHandler) ConfirmSale(c *gin.Context) {
	sale, err := h.cascade.ConfirmSale(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// CancelSale cancels the sale and its still pending ledger entries.
//
// @Summary     Cancel sale
// @Tags        sales
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       id  path  string  true  "Sale ID"
// @Produce     json
// @Success     200  {object}  response.SaleResponse
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /sales/{id}/cancel [patch]
func (h *SaleHandler) CancelSale(c *gin.Context) {
	sale, err := h.cascade.CancelSale(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// ConfirmPayment records money received for a sale. An empty body pays the
// outstanding balance.
//
// @Summary     Confirm payment
// @Tags        sales
// @Accept      json
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       id  path  string  true  "Sale ID"
// @Param       payload  body  request.PaymentRequest  false  "Payment"
// @Produce     json
// @Success     200  {object}  response.PaymentResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /sales/{id}/payments [post]
func (h *SaleHandler) ConfirmPayment(c *gin.Context) {
	saleID := c.Param("id")
	log.Printf("[payment][handler] confirm start sale_id=%s", saleID)
	payload, err := readPaymentRequest(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload sale_id=%s err=%v", saleID, err)
		abortWith(c, errInvalidPayload)
		return
	}

	created, err := h.payments.ConfirmPayment(c.Request.Context(), payload.ToInput(saleID, actorID(c)))
	if err != nil {
		log.Printf("[payment][handler] confirm failed sale_id=%s err=%v", saleID, err)
		respondError(c, err)
		return
	}
	log.Printf("[payment][handler] confirm success sale_id=%s payment_id=%s status=%s", saleID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// @Summary     List sale payments
// @Tags        sales
// @Param       id  path  string  true  "Sale ID"
// @Produce     json
// @Success     200  {array}   response.PaymentResponse
// @Failure     404  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /sales/{id}/payments [get]
func (h *SaleHandler) ListPayments(c *gin.Context) {
	payments, err := h.payments.ListBySale(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// @Summary     Schedule installments
// @Tags        sales
// @Accept      json
// @Param       id  path  string  true  "Sale ID"
// @Param       payload  body  request.InstallmentsRequest  true  "Installments"
// @Produce     json
// @Success     201  {array}   response.PaymentResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /sales/{id}/installments [post]
func (h *SaleHandler) ScheduleInstallments(c *gin.Context) {
	var payload request.InstallmentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	scheduled, err := h.payments.ScheduleInstallments(c.Request.Context(), c.Param("id"), payload.Installments, payload.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPayments(scheduled))
}

func readPaymentRequest(c *gin.Context) (request.PaymentRequest, error) {
	var payload request.PaymentRequest
	raw, err := c.GetRawData()
	if err != nil {
		return payload, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return payload, nil
	}
	if !json.Valid(raw) {
		return payload, errors.New("request body is not valid json")
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
