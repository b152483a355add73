package handlers

import (
	"log"
	"net/http"
	request "winnet_crm/internal/adapter/http/dto/request"
	response "winnet_crm/internal/adapter/http/dto/response"
	"winnet_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves quote authoring and the commercial pipeline moves.
// Approval and rejection go straight to the cascade.
type QuoteHandler struct {
	quotes  usecase.IQuoteUseCase
	cascade usecase.ICascadeUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, cascade usecase.ICascadeUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, cascade: cascade}
}

// @Summary     Create quote
// @Tags        quotes
// @Accept      json
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       payload  body  request.QuoteRequest  true  "Quote"
// @Produce     json
// @Success     201  {object}  response.QuoteResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     404  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput(actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	quote, err := h.quotes.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// @Summary     List quotes
// @Tags        quotes
// @Produce     json
// @Success     200  {array}   response.QuoteResponse
// @Failure     500  {object}  pkg.HTTPError
// @Router      /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.quotes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// @Summary     Get quote
// @Tags        quotes
// @Param       id  path  string  true  "Quote ID"
// @Produce     json
// @Success     200  {object}  response.QuoteResponse
// @Failure     404  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.quotes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// PreviewTotals computes subtotal, discount and total for an unsaved quote.
//
// @Summary     Preview quote totals
// @Tags        quotes
// @Accept      json
// @Param       payload  body  request.TotalsRequest  true  "Line items and discount"
// @Produce     json
// @Success     200  {object}  response.TotalsResponse
// @Failure     400  {object}  pkg.HTTPError
// @Router      /quotes/totals [post]
func (h *QuoteHandler) PreviewTotals(c *gin.Context) {
	var payload request.TotalsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	totals, err := h.quotes.PreviewTotals(payload.Items(), payload.DiscountPercent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// @Summary     Send quote to client
// @Tags        quotes
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       id  path  string  true  "Quote ID"
// @Produce     json
// @Success     200  {object}  response.QuoteResponse
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /quotes/{id}/send [patch]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	quote, err := h.quotes.Send(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ApproveQuote runs the approval cascade and answers with the derived sale.
// Approving an already approved quote returns the existing sale.
//
// @Summary     Approve quote
// @Tags        quotes
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       id  path  string  true  "Quote ID"
// @Produce     json
// @Success     200  {object}  response.SaleResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /quotes/{id}/approve [patch]
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	quoteID := c.Param("id")
	sale, err := h.cascade.Approve(c.Request.Context(), quoteID, actorID(c))
	if err != nil {
		log.Printf("[quote][handler] approve failed quote_id=%s err=%v", quoteID, err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// @Summary     Reject quote
// @Tags        quotes
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       id  path  string  true  "Quote ID"
// @Produce     json
// @Success     200  {object}  response.QuoteResponse
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	quote, err := h.cascade.Reject(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// MoveStage handles a drag on the pipeline board.
//
// @Summary     Move quote to pipeline stage
// @Tags        quotes
// @Accept      json
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       id  path  string  true  "Quote ID"
// @Param       payload  body  request.StageRequest  true  "Target stage"
// @Produce     json
// @Success     200  {object}  response.StageMoveResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /quotes/{id}/stage [patch]
func (h *QuoteHandler) MoveStage(c *gin.Context) {
	var payload request.StageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	move, err := h.quotes.MoveToStage(c.Request.Context(), c.Param("id"), payload.StageID(), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStageMove(move))
}

// @Summary     Schedule follow-up
// @Tags        quotes
// @Accept      json
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       id  path  string  true  "Quote ID"
// @Param       payload  body  request.FollowUpRequest  true  "Follow-up"
// @Produce     json
// @Success     200  {object}  response.QuoteResponse
// @Failure     400  {object}  pkg.HTTPError
// @Failure     404  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /quotes/{id}/follow-ups [post]
func (h *QuoteHandler) AddFollowUp(c *gin.Context) {
	var payload request.FollowUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput(actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	quote, err := h.quotes.AddFollowUp(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// CreateSale binds a sale to an approved quote that lost it. The body is
// optional.
//
// @Summary     Create sale for approved quote
// @Tags        quotes
// @Accept      json
// @Param       X-User-ID  header  string  false  "Acting user id"
// @Param       id  path  string  true  "Quote ID"
// @Param       payload  body  request.ManualSaleRequest  false  "Payment method"
// @Produce     json
// @Success     201  {object}  response.SaleResponse
// @Failure     404  {object}  pkg.HTTPError
// @Failure     409  {object}  pkg.HTTPError
// @Failure     500  {object}  pkg.HTTPError
// @Router      /quotes/{id}/sale [post]
func (h *QuoteHandler) CreateSale(c *gin.Context) {
	var payload request.ManualSaleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
	}
	sale, err := h.cascade.CreateManualSale(c.Request.Context(), c.Param("id"), payload.PaymentMethod, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSale(sale))
}
