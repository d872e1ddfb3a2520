package handlers

import (
	"errors"
	"net/http"

	request "contractor_escrow/internal/adapter/http/dto/request"
	response "contractor_escrow/internal/adapter/http/dto/response"
	"contractor_escrow/internal/usecase"
	"contractor_escrow/pkg"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// Status reports whether a booking can be requested and, if not, the single reason why.
func (h *BookingHandler) Status(c *gin.Context) {
	status, err := h.usecase.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	booking, err := h.usecase.CreateBooking(c.Request.Context(), actor, usecase.CreateBookingInput{
		ProjectID: c.Param("id"),
		DepositID: payload.EstimateDepositID,
		StartAt:   payload.StartAt,
		EndAt:     payload.EndAt,
		Note:      payload.Note,
	})
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

func (h *BookingHandler) ListByProject(c *gin.Context) {
	bookings, err := h.usecase.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
