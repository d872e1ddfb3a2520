package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "contractor_escrow/internal/adapter/http/dto/request"
	response "contractor_escrow/internal/adapter/http/dto/response"
	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/usecase"
	"contractor_escrow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
	errInvalidQuotePayload   = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Quote price must be a positive number of cents", http.StatusBadRequest)
	errInvalidIssuePayload   = pkg.NewDomainErrorSimple("INVALID_REASON", "reason must be at least 5 characters", http.StatusBadRequest)
)

// ProjectHandler exposes the project escrow lifecycle.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidProjectPayload)
		return
	}

	project, err := h.usecase.CreateProject(c.Request.Context(), actor, usecase.CreateProjectInput{
		Title:       payload.Title,
		Description: payload.Description,
		Category:    payload.Category,
	})
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) Publish(c *gin.Context) {
	h.transition(c, "publish", h.usecase.Publish)
}

func (h *ProjectHandler) AcceptAgreement(c *gin.Context) {
	h.transition(c, "accept-agreement", h.usecase.AcceptAgreement)
}

func (h *ProjectHandler) StartWork(c *gin.Context) {
	h.transition(c, "start", h.usecase.StartWork)
}

func (h *ProjectHandler) RequestCompletion(c *gin.Context) {
	h.transition(c, "request-completion", h.usecase.RequestCompletion)
}

func (h *ProjectHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel", h.usecase.Cancel)
}

func (h *ProjectHandler) Close(c *gin.Context) {
	h.transition(c, "close", h.usecase.Close)
}

func (h *ProjectHandler) SubmitQuote(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	quote, err := h.usecase.SubmitQuote(c.Request.Context(), actor, c.Param("id"), payload.PriceCents, payload.Message)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *ProjectHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *ProjectHandler) SelectQuote(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	project, err := h.usecase.SelectQuote(c.Request.Context(), actor, c.Param("id"), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// Fund charges the accepted quote price through the payment provider and holds it in escrow.
func (h *ProjectHandler) Fund(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	projectID := c.Param("id")
	log.Printf("[project][handler] fund start project_id=%s", projectID)
	payload, err := readPaymentPayload(c)
	if err != nil {
		log.Printf("[project][handler] invalid payment payload project_id=%s err=%v", projectID, err)
		writeError(c, errInvalidRequest)
		return
	}

	project, err := h.usecase.Fund(c.Request.Context(), actor, projectID, payload)
	if err != nil {
		log.Printf("[project][handler] fund failed project_id=%s err=%v", projectID, err)
		writeError(c, mapProjectError(err))
		return
	}
	log.Printf("[project][handler] fund success project_id=%s held=%d", projectID, project.Held())
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) ApproveCompletion(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	project, payout, err := h.usecase.ApproveCompletion(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.ReleaseResponse{Project: response.FromProject(project), Payout: payout})
}

func (h *ProjectHandler) RaiseIssue(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.RaiseIssueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidIssuePayload)
		return
	}

	project, dispute, err := h.usecase.RaiseIssue(c.Request.Context(), actor, c.Param("id"), payload.TrimmedReason())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.IssueResponse{Project: response.FromProject(project), Case: response.FromCase(dispute)})
}

func (h *ProjectHandler) transition(
	c *gin.Context,
	name string,
	apply func(ctx context.Context, actor entities.Actor, id string) (entities.Project, error),
) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	project, err := apply(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		log.Printf("[project][handler] %s failed project_id=%s actor=%s err=%v", name, c.Param("id"), actor.ID, err)
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidTitle):
		return pkg.NewDomainErrorSimple("INVALID_TITLE", "Project title is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Unknown project category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyExist):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_EXISTS", "Contractor already has a pending quote for this project", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
