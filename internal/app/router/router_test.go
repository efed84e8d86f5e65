package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"recopayment/internal/pkg/models"
)

type okQueryService struct{}

func (okQueryService) Query(
	ctx context.Context,
	req models.PaymentQueryRequest,
) (*models.PaymentQueryData, error) {
	return &models.PaymentQueryData{ID: 1, CustomerCode: req.CodeCustomer}, nil
}

type okPinger struct{}

func (okPinger) Ping(ctx context.Context) error { return nil }

func TestSetupRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(okQueryService{}, okPinger{})

	t.Run("health", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})

	t.Run("query", func(t *testing.T) {
		body := bytes.NewBufferString(`{"code_customer":"c","code_subsidiary":"s","code_user":"u"}`)
		req, _ := http.NewRequest(http.MethodPost, "/query", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"success"`)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("payment stubs registered", func(t *testing.T) {
		for _, path := range []string{"/payment", "/cancel-payment"} {
			req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(`{}`))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.Contains(t, w.Body.String(), `"not_implemented":true`, path)
		}
	})

	t.Run("cors headers", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, "/query", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
