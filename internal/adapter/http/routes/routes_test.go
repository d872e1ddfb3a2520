package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contractor_escrow/internal/adapter/http/handlers"
	"contractor_escrow/internal/adapter/http/handlers/mocks"
	"contractor_escrow/internal/adapter/http/middleware"
	"contractor_escrow/internal/config"
	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

var secret = []byte("routes-secret")

func bearer(t *testing.T, sub, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: sub, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return "Bearer " + signed
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIDisputeUseCase, *mocks.MockIProjectUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	disputes := mocks.NewMockIDisputeUseCase(ctrl)
	projects := mocks.NewMockIProjectUseCase(ctrl)
	r, err := NewRouter(Handlers{
		Projects: handlers.NewProjectHandler(projects),
		Deposits: handlers.NewDepositHandler(mocks.NewMockIEstimateDepositUseCase(ctrl)),
		Bookings: handlers.NewBookingHandler(mocks.NewMockIBookingUseCase(ctrl)),
		Cases:    handlers.NewCaseHandler(disputes),
	}, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r, disputes, projects
}

func serve(r *gin.Engine, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_RequiresSecret(t *testing.T) {
	if _, err := NewRouter(Handlers{}, nil); err == nil {
		t.Fatalf("expected error without jwt secret")
	}
}

func TestNewRouter_PublicRoutes(t *testing.T) {
	r, _, _ := newTestRouter(t)

	if w := serve(r, http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/metrics", ""); w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
}

func TestNewRouter_Authentication(t *testing.T) {
	r, disputes, projects := newTestRouter(t)

	t.Run("project routes need a token", func(t *testing.T) {
		if w := serve(r, http.MethodGet, "/v1/projects/p-1", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("authenticated project read", func(t *testing.T) {
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", EscrowState: entities.EscrowStateOpenForQuotes}, nil)
		if w := serve(r, http.MethodGet, "/v1/projects/p-1", bearer(t, "cust-1", "customer")); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("admin console rejects customers", func(t *testing.T) {
		if w := serve(r, http.MethodGet, "/v1/admin/cases/summary", bearer(t, "cust-1", "customer")); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin console serves admins", func(t *testing.T) {
		disputes.EXPECT().Summary(gomock.Any()).Return(escrow.CaseSummary{Open: 1}, nil)
		if w := serve(r, http.MethodGet, "/v1/admin/cases/summary", bearer(t, "adm-1", "admin")); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestNewPolicy(t *testing.T) {
	cfg := config.Config{
		DepositAmounts:     config.DepositAmounts{" Plumbing ": 2500, "pool": 9900, "roofing": 0},
		DepositCaptureTTL:  24 * time.Hour,
		DocReferencePrefix: "ops",
		TestPayerEmail:     "payer@test.com",
	}
	policy := NewPolicy(cfg)

	if policy.Deposits.AmountsByCategory["plumbing"] != 2500 || policy.Deposits.AmountsByCategory["pool"] != 9900 {
		t.Fatalf("overrides not applied: %v", policy.Deposits.AmountsByCategory)
	}
	if policy.Deposits.AmountsByCategory["roofing"] != 7900 {
		t.Fatalf("defaults lost: %v", policy.Deposits.AmountsByCategory)
	}
	if policy.Deposits.CaptureTTL != 24*time.Hour || policy.DocReferencePrefix != "ops" || policy.TestPayerEmail != "payer@test.com" {
		t.Fatalf("unexpected policy: %+v", policy)
	}
	if escrow.DefaultDepositPolicy().AmountsByCategory["plumbing"] != 2900 {
		t.Fatalf("default table was mutated")
	}
}
