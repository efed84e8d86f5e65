package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err   error
	calls int
}

func (p *stubPinger) Ping(ctx context.Context) error {
	p.calls++
	return p.err
}

func newStubRouter(pinger *stubPinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewPaymentStubHandler(pinger)
	router.POST("/payment", handler.Payment)
	router.POST("/cancel-payment", handler.CancelPayment)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPaymentStub_Success(t *testing.T) {
	pinger := &stubPinger{}
	w := postJSON(newStubRouter(pinger), "/payment", `{"anything":"goes"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"status":"success","message":"Payment successful","not_implemented":true}`,
		w.Body.String())
	assert.Equal(t, 1, pinger.calls)
}

func TestCancelPaymentStub_Success(t *testing.T) {
	pinger := &stubPinger{}
	w := postJSON(newStubRouter(pinger), "/cancel-payment", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"status":"success","message":"Payment cancelled successfully","not_implemented":true}`,
		w.Body.String())
}

func TestPaymentStub_DBFailureKeepsHTTP200(t *testing.T) {
	pinger := &stubPinger{err: errors.New("ORA-12541: no listener")}
	w := postJSON(newStubRouter(pinger), "/payment", `{}`)

	// Inherited contract: failures are embedded, not surfaced as HTTP errors.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
	assert.Contains(t, w.Body.String(), "ORA-12541")
}

func TestPaymentStub_ArbitraryBodyAccepted(t *testing.T) {
	pinger := &stubPinger{}
	w := postJSON(newStubRouter(pinger), "/payment", `not json at all`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"not_implemented":true`)
}
