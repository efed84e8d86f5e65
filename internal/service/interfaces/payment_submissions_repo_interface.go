package interfaces

import (
	"context"

	"recopayment/internal/pkg/store/models"
)

type PaymentSubmissionsRepoInterface interface {
	InsertSubmission(ctx context.Context, submission *models.PaymentSubmission) (int64, error)
}
