package cleanup

import (
	"context"
	"net/http"
	"time"

	"recopayment/internal/pkg/log_messages"
	"recopayment/internal/pkg/logger"
)

// CleanupResources shuts the HTTP server down with a bounded timeout. The
// gateway holds no long-lived downstream connections: Oracle and SOAP
// connections are request-scoped and released by their owners.
func CleanupResources(ctx context.Context, server *http.Server) {
	logger.CtxInfo(ctx, log_messages.CleanupStarted)

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 8*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.CtxError(ctx, "Failed to shutdown HTTP server", err)
		} else {
			logger.CtxInfo(ctx, "HTTP server shutdown successfully")
		}
	}

	logger.CtxInfo(ctx, log_messages.CleanupCompleted)
}
