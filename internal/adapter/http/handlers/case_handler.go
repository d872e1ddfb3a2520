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

// CaseHandler is the admin console over dispute cases. Routes are mounted behind the admin role.
type CaseHandler struct {
	usecase usecase.IDisputeUseCase
}

func NewCaseHandler(uc usecase.IDisputeUseCase) *CaseHandler {
	return &CaseHandler{usecase: uc}
}

func (h *CaseHandler) ListCases(c *gin.Context) {
	bucket := c.Query("bucket")
	switch bucket {
	case "", "open", "pending", "resolved":
	default:
		writeError(c, pkg.NewDomainErrorSimple("INVALID_BUCKET", "Unknown case bucket", http.StatusBadRequest))
		return
	}

	cases, err := h.usecase.ListCases(c.Request.Context(), bucket)
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCases(cases))
}

func (h *CaseHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CaseHandler) GetCase(c *gin.Context) {
	dispute, err := h.usecase.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCase(dispute))
}

func (h *CaseHandler) RequestDocumentUpload(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.DocumentUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	upload, err := h.usecase.RequestDocumentUpload(c.Request.Context(), actor, c.Param("id"), payload.ContentType)
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, upload)
}

func (h *CaseHandler) MarkPendingExternal(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	dispute, err := h.usecase.MarkPendingExternal(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCase(dispute))
}

func (h *CaseHandler) Resolve(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	caseID := c.Param("id")
	var payload request.ResolveCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_ACTION", "unknown dispute action", http.StatusBadRequest))
		return
	}

	log.Printf("[case][handler] resolve start case_id=%s action=%s admin=%s", caseID, payload.Action, actor.ID)
	res, err := h.usecase.Resolve(c.Request.Context(), actor, caseID, usecase.ResolveCaseInput{
		Action:       payload.Action,
		DocReference: payload.DocReference,
	})
	if err != nil {
		log.Printf("[case][handler] resolve failed case_id=%s err=%v", caseID, err)
		writeError(c, mapCaseError(err))
		return
	}
	log.Printf("[case][handler] resolve success case_id=%s project_state=%s", caseID, res.Project.EscrowState)
	c.JSON(http.StatusOK, response.ResolutionResponse{
		Case:        response.FromCase(res.Case),
		Project:     response.FromProject(res.Project),
		Payout:      res.Payout,
		RefundCents: res.RefundCents,
	})
}

func mapCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Dispute case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDocument):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT", "Unsupported resolution document type", http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
