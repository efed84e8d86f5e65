package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recopayment/internal/pkg/log_messages"
	"recopayment/internal/pkg/logger"
	"recopayment/internal/service/interfaces"
)

// PaymentStubHandler serves /payment and /cancel-payment. Neither operation
// is implemented upstream of this migration: the handlers accept any JSON
// body, probe the database connection and answer with a canned payload that
// carries an explicit not_implemented marker so callers cannot mistake the
// response for an executed payment.
//
// Failure responses keep the inherited shape: HTTP 200 with an embedded
// "status":"error" field.
type PaymentStubHandler struct {
	pinger interfaces.DBPingerInterface
}

func NewPaymentStubHandler(pinger interfaces.DBPingerInterface) *PaymentStubHandler {
	return &PaymentStubHandler{pinger: pinger}
}

func (h *PaymentStubHandler) Payment(c *gin.Context) {
	logger.CtxInfo(c.Request.Context(), log_messages.PaymentStubInvoked)
	h.respond(c, "Payment successful")
}

func (h *PaymentStubHandler) CancelPayment(c *gin.Context) {
	logger.CtxInfo(c.Request.Context(), log_messages.CancelPaymentStubInvoked)
	h.respond(c, "Payment cancelled successfully")
}

func (h *PaymentStubHandler) respond(c *gin.Context, message string) {
	var body map[string]any
	// Body content is ignored; only malformed JSON is worth noting.
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.CtxWarn(c.Request.Context(), "stub endpoint received unparseable body")
	}

	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":          "error",
			"message":         err.Error(),
			"not_implemented": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "success",
		"message":         message,
		"not_implemented": true,
	})
}
