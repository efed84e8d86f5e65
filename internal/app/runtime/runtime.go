package runtime

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recopayment/internal/app/router"
	"recopayment/internal/pkg/cleanup"
	"recopayment/internal/pkg/config"
	"recopayment/internal/pkg/downstream"
	"recopayment/internal/pkg/log_messages"
	"recopayment/internal/pkg/logger"
	"recopayment/internal/pkg/store/impl/payment_submissions"
	"recopayment/internal/pkg/store/oracle"
	"recopayment/internal/service/payment_query"
)

// App encapsulates application resources and lifecycle.
type App struct {
	Cfg          *config.AppConfig
	Connector    *oracle.Connector
	QueryService payment_query.PaymentQueryServiceInterface
	HTTPServer   *http.Server
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadFromConfig()
	if err != nil {
		logger.CtxError(ctx, log_messages.FailedLoadingConfiguration, err)
		return nil, err
	}
	logger.Init(cfg.Logging.LogLevel)

	connector := oracle.NewConnector(cfg.Oracle)

	// Startup probe: one connect/close before serving. A database that is
	// unreachable at boot prevents startup.
	if err := connector.Ping(ctx); err != nil {
		logger.CtxError(ctx, log_messages.StartupDBProbeFailed, err)
		return nil, err
	}
	logger.CtxInfo(ctx, log_messages.StartupDBProbeOK)

	client := downstream.NewPaymentQueryClient(cfg.SOAP)
	repo := payment_submissions.NewPaymentSubmissionsRepository(connector)
	queryService := payment_query.NewPaymentQueryService(client, repo)

	return &App{
		Cfg:          cfg,
		Connector:    connector,
		QueryService: queryService,
	}, nil
}

// Run starts the HTTP server, then blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	engine := router.SetupRouter(a.QueryService, a.Connector)
	a.HTTPServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.CtxError(ctx, log_messages.ServerStartFailure, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.CtxInfo(ctx, log_messages.ServerShutdown)
	a.Shutdown(ctx)
	logger.CtxInfo(ctx, log_messages.ServerExiting)
	return nil
}

// Shutdown gracefully closes the HTTP server.
func (a *App) Shutdown(ctx context.Context) {
	cleanup.CleanupResources(ctx, a.HTTPServer)
}
