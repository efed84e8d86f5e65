package router

import (
	"github.com/gin-gonic/gin"

	"recopayment/internal/app/handlers"
	"recopayment/internal/app/middleware"
	"recopayment/internal/service/interfaces"
	"recopayment/internal/service/payment_query"
)

// SetupRouter wires the HTTP surface. /payment and /cancel-payment are
// NotImplemented placeholders (see PaymentStubHandler).
func SetupRouter(
	queryService payment_query.PaymentQueryServiceInterface,
	pinger interfaces.DBPingerInterface,
) *gin.Engine {
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.AllowAllCORS())
	server.Use(middleware.AttachRequestLogging())

	healthCheckHandler := handlers.NewHealthCheckHandler()
	server.GET("/health", healthCheckHandler.HealthCheck)

	paymentQueryHandler := handlers.NewPaymentQueryHandler(queryService)
	server.POST("/query", paymentQueryHandler.Query)

	paymentStubHandler := handlers.NewPaymentStubHandler(pinger)
	server.POST("/payment", paymentStubHandler.Payment)
	server.POST("/cancel-payment", paymentStubHandler.CancelPayment)

	return server
}
