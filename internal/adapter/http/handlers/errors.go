package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"winnet_crm/internal/adapter/http/dto/request"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase"
	"winnet_crm/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the acting user. Authentication happens upstream.
const HeaderUserID = "X-User-ID"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must be YYYY-MM-DD or RFC 3339", http.StatusBadRequest)
)

func actorID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderUserID))
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] %s %s failed code=%s err=%v", c.Request.Method, c.FullPath(), appErr.Code, err)
	}
	abortWith(c, appErr)
}

func mapError(err error) *pkg.AppError {
	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		return pkg.NewDomainError("VALIDATION_ERROR", ve.Error(), err, http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, request.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidSaleID),
		errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidNotificationID),
		errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment rejected by provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment not approved by provider yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientHasQuotes):
		return pkg.NewDomainErrorSimple("CLIENT_HAS_QUOTES", "Client still has quotes", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteConflict):
		return pkg.NewDomainErrorSimple("QUOTE_CONFLICT", "Quote was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleAlreadyExists):
		return pkg.NewDomainErrorSimple("SALE_ALREADY_EXISTS", "Sale already exists for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleCancelled):
		return pkg.NewDomainErrorSimple("SALE_CANCELLED", "Sale is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleAlreadyPaid):
		return pkg.NewDomainErrorSimple("SALE_ALREADY_PAID", "Sale already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentExceedsBalance):
		return pkg.NewDomainErrorSimple("PAYMENT_EXCEEDS_BALANCE", "Payment exceeds the outstanding balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentsAlreadyScheduled):
		return pkg.NewDomainErrorSimple("INSTALLMENTS_ALREADY_SCHEDULED", "Installments already scheduled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured), errors.Is(err, usecase.ErrCascadeUnavailable):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Dependency not configured", err, http.StatusServiceUnavailable)
	}

	var ce *usecase.CascadeError
	if errors.As(err, &ce) {
		return pkg.NewDomainError("CASCADE_FAILED", "Related records could not be written, run reconciliation", err, http.StatusInternalServerError)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
