package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"contractor_escrow/internal/adapter/http/middleware"
	"contractor_escrow/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	customer   = entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}
	contractor = entities.Actor{ID: "ctr-1", Role: entities.RoleContractor}
	admin      = entities.Actor{ID: "adm-1", Role: entities.RoleAdmin}
)

func newTestRouter(actor *entities.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if actor != nil {
		a := *actor
		r.Use(func(c *gin.Context) { middleware.SetActor(c, a) })
	}
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not json: %s", w.Body.String())
	}
	return body.Error.Code
}

func held(v int64) *int64 { return &v }
