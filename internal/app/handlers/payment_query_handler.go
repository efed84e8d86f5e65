package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "recopayment/internal/pkg/downstream/error_handling"
	"recopayment/internal/pkg/log_messages"
	"recopayment/internal/pkg/logger"
	"recopayment/internal/pkg/models"
	"recopayment/internal/service/payment_query"
)

type PaymentQueryHandler struct {
	service payment_query.PaymentQueryServiceInterface
}

func NewPaymentQueryHandler(service payment_query.PaymentQueryServiceInterface) *PaymentQueryHandler {
	return &PaymentQueryHandler{service: service}
}

// Query handles POST /query.
func (h *PaymentQueryHandler) Query(c *gin.Context) {
	var body models.PaymentQueryRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error": gin.H{
				"kind":    "invalid_request",
				"message": err.Error(),
			},
		})
		return
	}

	data, err := h.service.Query(c.Request.Context(), body)
	if err != nil {
		logger.CtxError(c.Request.Context(), log_messages.QueryRequestFailed, err)
		c.JSON(statusForError(err), gin.H{
			"status": "error",
			"error": gin.H{
				"kind":    kindForError(err),
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

func statusForError(err error) int {
	var qerr *errs.PaymentQueryError
	if errors.As(err, &qerr) {
		return qerr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func kindForError(err error) string {
	var qerr *errs.PaymentQueryError
	if errors.As(err, &qerr) {
		return string(qerr.Kind)
	}
	return "internal_error"
}
