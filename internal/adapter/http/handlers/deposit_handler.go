package handlers

import (
	"errors"
	"log"
	"net/http"

	request "contractor_escrow/internal/adapter/http/dto/request"
	response "contractor_escrow/internal/adapter/http/dto/response"
	"contractor_escrow/internal/usecase"
	"contractor_escrow/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler exposes the estimate deposit workflow.
type DepositHandler struct {
	usecase usecase.IEstimateDepositUseCase
}

func NewDepositHandler(uc usecase.IEstimateDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

func (h *DepositHandler) Preview(c *gin.Context) {
	preview, err := h.usecase.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDepositError(err))
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (h *DepositHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CreateDepositRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidRequest)
			return
		}
	}

	deposit, err := h.usecase.Create(c.Request.Context(), actor, c.Param("id"), payload.ExpectedAmountCents)
	if err != nil {
		writeError(c, mapDepositError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDeposit(deposit))
}

func (h *DepositHandler) ListByProject(c *gin.Context) {
	deposits, err := h.usecase.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDepositError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDeposits(deposits))
}

func (h *DepositHandler) GetDeposit(c *gin.Context) {
	deposit, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDepositError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDeposit(deposit))
}

// Capture confirms the deposit payment. A second capture is rejected, never treated as a no-op.
func (h *DepositHandler) Capture(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	depositID := c.Param("id")
	log.Printf("[deposit][handler] capture start deposit_id=%s", depositID)
	payload, err := readPaymentPayload(c)
	if err != nil {
		log.Printf("[deposit][handler] invalid payment payload deposit_id=%s err=%v", depositID, err)
		writeError(c, errInvalidRequest)
		return
	}

	deposit, err := h.usecase.Capture(c.Request.Context(), actor, depositID, payload)
	if err != nil {
		log.Printf("[deposit][handler] capture failed deposit_id=%s err=%v", depositID, err)
		writeError(c, mapDepositError(err))
		return
	}
	log.Printf("[deposit][handler] capture success deposit_id=%s payment_id=%s", depositID, deposit.PaymentID)
	c.JSON(http.StatusOK, response.FromDeposit(deposit))
}

func (h *DepositHandler) RecordAttendance(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.AttendanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	deposit, err := h.usecase.RecordAttendance(c.Request.Context(), actor, c.Param("id"), payload.Outcome)
	if err != nil {
		writeError(c, mapDepositError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDeposit(deposit))
}

func (h *DepositHandler) Dispose(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.DispositionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	deposit, err := h.usecase.Dispose(c.Request.Context(), actor, c.Param("id"), payload.Disposition)
	if err != nil {
		writeError(c, mapDepositError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDeposit(deposit))
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidDepositID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Estimate deposit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDepositExists):
		return pkg.NewDomainErrorSimple("DEPOSIT_ALREADY_EXISTS", "An active estimate deposit already exists for this contractor", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositMismatch):
		return pkg.NewDomainErrorSimple("DEPOSIT_AMOUNT_CHANGED", "Deposit amount no longer matches the preview", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
