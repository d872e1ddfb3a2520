package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"contractor_escrow/internal/adapter/http/middleware"
	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
	"contractor_escrow/internal/usecase"
	"contractor_escrow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func actorOrAbort(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return entities.Actor{}, false
	}
	return actor, true
}

// readPaymentPayload accepts either a raw Mercado Pago payload or one wrapped in {"mp_payload": ...}.
// An empty body becomes {} so mock mode can run without a payload.
func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

// mapCommonError covers failures shared by every resource: rule failures from the escrow core,
// authorization, lost races and the payment provider.
func mapCommonError(err error) *pkg.AppError {
	if ruleErr, ok := escrow.AsError(err); ok {
		status := http.StatusConflict
		if ruleErr.Kind == escrow.KindValidation {
			status = http.StatusBadRequest
		}
		return pkg.NewDomainError(ruleErr.Code, ruleErr.Message, err, status)
	}

	switch {
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor not allowed for this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Resource changed concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeInProgress):
		return pkg.NewDomainErrorSimple("CHARGE_IN_PROGRESS", "A payment for this resource is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment not approved by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		log.Printf("[http][handler] unmapped error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
