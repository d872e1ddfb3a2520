package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"contractor_escrow/internal/adapter/http/handlers/mocks"
	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
	"contractor_escrow/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestDepositHandler_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimateDepositUseCase(ctrl)
	h := NewDepositHandler(uc)
	r := newTestRouter(&customer)
	r.GET("/v1/projects/:id/deposits/preview", h.Preview)

	uc.EXPECT().Preview(gomock.Any(), "p-1").Return(entities.DepositPreview{Category: "plumbing", AmountCents: 2900, Rationale: "plumbing visit"}, nil)

	w := doRequest(r, http.MethodGet, "/v1/projects/p-1/deposits/preview", "")
	var body entities.DepositPreview
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || body.AmountCents != 2900 {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestDepositHandler_Create(t *testing.T) {
	t.Run("empty body skips amount check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateDepositUseCase(ctrl)
		h := NewDepositHandler(uc)
		r := newTestRouter(&customer)
		r.POST("/v1/projects/:id/deposits", h.Create)

		uc.EXPECT().Create(gomock.Any(), customer, "p-1", int64(0)).
			Return(entities.EstimateDeposit{ID: "d-1", Status: entities.DepositStatusCreated, AmountCents: 2900}, nil)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/deposits", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("contractor not selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateDepositUseCase(ctrl)
		h := NewDepositHandler(uc)
		r := newTestRouter(&customer)
		r.POST("/v1/projects/:id/deposits", h.Create)

		uc.EXPECT().Create(gomock.Any(), customer, "p-1", int64(2900)).Return(entities.EstimateDeposit{}, escrow.ErrContractorRequired)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/deposits", `{"expected_amount_cents":2900}`)
		if w.Code != http.StatusConflict || errorCode(t, w) != "CONTRACTOR_REQUIRED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("preview changed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateDepositUseCase(ctrl)
		h := NewDepositHandler(uc)
		r := newTestRouter(&customer)
		r.POST("/v1/projects/:id/deposits", h.Create)

		uc.EXPECT().Create(gomock.Any(), customer, "p-1", int64(4900)).Return(entities.EstimateDeposit{}, usecase.ErrDepositMismatch)

		w := doRequest(r, http.MethodPost, "/v1/projects/p-1/deposits", `{"expected_amount_cents":4900}`)
		if w.Code != http.StatusConflict || errorCode(t, w) != "DEPOSIT_AMOUNT_CHANGED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestDepositHandler_Capture(t *testing.T) {
	t.Run("already captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateDepositUseCase(ctrl)
		h := NewDepositHandler(uc)
		r := newTestRouter(&customer)
		r.POST("/v1/deposits/:id/capture", h.Capture)

		uc.EXPECT().Capture(gomock.Any(), customer, "d-1", gomock.Any()).Return(entities.EstimateDeposit{}, escrow.ErrDepositAlreadyCaptured)

		w := doRequest(r, http.MethodPost, "/v1/deposits/d-1/capture", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusConflict || errorCode(t, w) != "DEPOSIT_ALREADY_CAPTURED" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("charge in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateDepositUseCase(ctrl)
		h := NewDepositHandler(uc)
		r := newTestRouter(&customer)
		r.POST("/v1/deposits/:id/capture", h.Capture)

		uc.EXPECT().Capture(gomock.Any(), customer, "d-1", gomock.Any()).Return(entities.EstimateDeposit{}, usecase.ErrChargeInProgress)

		w := doRequest(r, http.MethodPost, "/v1/deposits/d-1/capture", "")
		if w.Code != http.StatusConflict || errorCode(t, w) != "CHARGE_IN_PROGRESS" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEstimateDepositUseCase(ctrl)
		h := NewDepositHandler(uc)
		r := newTestRouter(&customer)
		r.POST("/v1/deposits/:id/capture", h.Capture)

		uc.EXPECT().Capture(gomock.Any(), customer, "d-1", gomock.Any()).
			Return(entities.EstimateDeposit{ID: "d-1", Status: entities.DepositStatusCaptured, PaymentID: "mp-1"}, nil)

		w := doRequest(r, http.MethodPost, "/v1/deposits/d-1/capture", "")
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["captured"] != true {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestDepositHandler_AttendanceAndDisposition(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimateDepositUseCase(ctrl)
	h := NewDepositHandler(uc)
	r := newTestRouter(&admin)
	r.POST("/v1/deposits/:id/attendance", h.RecordAttendance)
	r.POST("/v1/deposits/:id/disposition", h.Dispose)

	uc.EXPECT().RecordAttendance(gomock.Any(), admin, "d-1", "contractor_attended").
		Return(entities.EstimateDeposit{ID: "d-1", Status: entities.DepositStatusContractorAttended}, nil)
	uc.EXPECT().Dispose(gomock.Any(), admin, "d-1", "captured").Return(entities.EstimateDeposit{}, escrow.ErrInvalidDisposition)

	t.Run("attendance", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/v1/deposits/d-1/attendance", `{"outcome":"contractor_attended"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing outcome", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/v1/deposits/d-1/attendance", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid disposition", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/v1/deposits/d-1/disposition", `{"disposition":"captured"}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_DISPOSITION" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestDepositHandler_GetAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimateDepositUseCase(ctrl)
	h := NewDepositHandler(uc)
	r := newTestRouter(&customer)
	r.GET("/v1/deposits/:id", h.GetDeposit)
	r.GET("/v1/projects/:id/deposits", h.ListByProject)

	uc.EXPECT().GetByID(gomock.Any(), "d-404").Return(entities.EstimateDeposit{}, usecase.ErrDepositNotFound)
	uc.EXPECT().ListByProject(gomock.Any(), "p-1").Return([]entities.EstimateDeposit{{ID: "d-2"}, {ID: "d-1"}}, nil)

	if w := doRequest(r, http.MethodGet, "/v1/deposits/d-404", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	w := doRequest(r, http.MethodGet, "/v1/projects/p-1/deposits", "")
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || len(body) != 2 || body[0]["id"] != "d-2" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
