package oracle

import (
	"context"
	"database/sql"
	"log/slog"

	go_ora "github.com/sijms/go-ora/v2"

	"recopayment/internal/pkg/config"
	"recopayment/internal/pkg/log_messages"
	"recopayment/internal/pkg/logger"
)

// Connector opens one connection per call. The query flow deliberately scopes
// a connection to a single request instead of pooling; request volume on this
// integration is low.
type Connector struct {
	cfg config.OracleConfig
}

func NewConnector(cfg config.OracleConfig) *Connector {
	return &Connector{cfg: cfg}
}

// Connect opens and verifies a connection. The password never reaches the
// logs; only host, port and service name are recorded for diagnostics.
func (c *Connector) Connect(ctx context.Context) (*sql.DB, error) {
	logger.CtxInfo(ctx, log_messages.OracleConnectAttempt,
		slog.String("host", c.cfg.Host),
		slog.Int("port", c.cfg.Port),
		slog.String("service_name", c.cfg.ServiceName),
	)

	dsn := go_ora.BuildUrl(c.cfg.Host, c.cfg.Port, c.cfg.ServiceName, c.cfg.User, c.cfg.Password, nil)

	db, err := sql.Open("oracle", dsn)
	if err != nil {
		logger.CtxError(ctx, log_messages.OracleConnectFailed, err)
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		logger.CtxError(ctx, log_messages.OracleConnectFailed, err)
		if cerr := db.Close(); cerr != nil {
			logger.CtxError(ctx, "failed to close Oracle connection after ping failure", cerr)
		}
		return nil, err
	}

	logger.CtxInfo(ctx, log_messages.OracleConnectOK)
	return db, nil
}

// Ping opens a connection and immediately closes it. Used by the startup
// probe and the stub endpoints.
func (c *Connector) Ping(ctx context.Context) error {
	db, err := c.Connect(ctx)
	if err != nil {
		return err
	}
	return db.Close()
}
