package payment_submissions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"recopayment/internal/pkg/log_messages"
	"recopayment/internal/pkg/logger"
	"recopayment/internal/pkg/store/models"
	"recopayment/internal/pkg/store/oracle"
	"recopayment/internal/service/interfaces"
)

const insertSubmissionStmt = `INSERT INTO AV_RECO_ENVIOS
	(CODIGO_BANCO, CODIGO_FILIAL, CODIGO_USUARIO, CODIGO_CLIENTE, MONEDA,
	 ESTADO, PAGADO, NOMBRE_CLIENTE, FECHA_FACTURA, VALOR, VALOR_LOCAL)
	VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11)
	RETURNING ID INTO :12`

// PaymentSubmissionsRepository writes query results into AV_RECO_ENVIOS.
type PaymentSubmissionsRepository struct {
	connector *oracle.Connector
}

// Ensure PaymentSubmissionsRepository implements the repo interface
var _ interfaces.PaymentSubmissionsRepoInterface = (*PaymentSubmissionsRepository)(nil)

func NewPaymentSubmissionsRepository(connector *oracle.Connector) *PaymentSubmissionsRepository {
	return &PaymentSubmissionsRepository{connector: connector}
}

// InsertSubmission opens a connection scoped to this call, inserts the row in
// a transaction and returns the sequence value generated by the database. The
// connection is closed on every exit path; a failed statement rolls back.
func (r *PaymentSubmissionsRepository) InsertSubmission(
	ctx context.Context,
	submission *models.PaymentSubmission,
) (int64, error) {
	db, err := r.connector.Connect(ctx)
	if err != nil {
		return 0, fmt.Errorf("connect: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.CtxError(ctx, "failed to close Oracle connection", cerr)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	var id int64
	_, err = tx.ExecContext(ctx, insertSubmissionStmt,
		submission.BankCode,
		submission.SubsidiaryCode,
		submission.UserCode,
		submission.CustomerCode,
		submission.CurrencyCode,
		submission.Status,
		submission.PaidFlag,
		submission.CustomerName,
		submission.InvoiceDate,
		submission.InvoicePrice,
		submission.InvoiceLocalPrice,
		sql.Out{Dest: &id},
	)
	if err != nil {
		logger.CtxError(ctx, log_messages.InsertSubmissionError, err,
			slog.String("customer_code", submission.CustomerCode))
		if rerr := tx.Rollback(); rerr != nil {
			logger.CtxError(ctx, "failed to roll back submission insert", rerr)
		}
		return 0, fmt.Errorf("insert submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		logger.CtxError(ctx, log_messages.InsertSubmissionError, err)
		return 0, fmt.Errorf("commit submission: %w", err)
	}

	logger.CtxInfo(ctx, "Inserted payment submission",
		slog.Int64("id", id),
		slog.String("customer_code", submission.CustomerCode),
	)
	return id, nil
}
