package payment_query

import (
	"context"
	"log/slog"

	"recopayment/internal/pkg/consts"
	"recopayment/internal/pkg/downstream"
	errs "recopayment/internal/pkg/downstream/error_handling"
	"recopayment/internal/pkg/log_messages"
	"recopayment/internal/pkg/logger"
	"recopayment/internal/pkg/models"
	storemodels "recopayment/internal/pkg/store/models"
	"recopayment/internal/service/interfaces"
)

// PaymentQueryServiceInterface is what the handler depends on.
type PaymentQueryServiceInterface interface {
	Query(ctx context.Context, req models.PaymentQueryRequest) (*models.PaymentQueryData, error)
}

// PaymentQueryService runs the ConsultaPago flow: build the envelope, call
// the banking service, parse the result, persist it, return the parsed fields
// plus the generated id. Steps are strictly sequential and the first failure
// short-circuits; in particular no persistence attempt follows a parse
// failure.
type PaymentQueryService struct {
	client interfaces.PaymentQueryClientInterface
	repo   interfaces.PaymentSubmissionsRepoInterface
}

var _ PaymentQueryServiceInterface = (*PaymentQueryService)(nil)

func NewPaymentQueryService(
	client interfaces.PaymentQueryClientInterface,
	repo interfaces.PaymentSubmissionsRepoInterface,
) *PaymentQueryService {
	return &PaymentQueryService{
		client: client,
		repo:   repo,
	}
}

func (s *PaymentQueryService) Query(
	ctx context.Context,
	req models.PaymentQueryRequest,
) (*models.PaymentQueryData, error) {
	logger.CtxInfo(ctx, log_messages.QueryRequestReceived,
		slog.String("customer_code", req.CodeCustomer),
		slog.String("subsidiary_code", req.CodeSubsidiary),
	)

	envelope, err := downstream.CreatePaymentQueryRequest(req.CodeSubsidiary, req.CodeUser, req.CodeCustomer)
	if err != nil {
		// xml.Marshal of plain string fields cannot realistically fail, but
		// the failure still has to map onto the taxonomy.
		logger.CtxError(ctx, log_messages.SoapRequestBuildError, err)
		return nil, errs.NewMalformedUpstreamResponse(err)
	}

	body, err := s.client.CallConsultaPago(ctx, envelope)
	if err != nil {
		return nil, err
	}

	result, err := downstream.ParsePaymentQueryResponse(body)
	if err != nil {
		logger.CtxError(ctx, log_messages.SoapResponseParseFail, err)
		return nil, err
	}

	id, err := s.repo.InsertSubmission(ctx, &storemodels.PaymentSubmission{
		BankCode:          consts.BankCode,
		SubsidiaryCode:    req.CodeSubsidiary,
		UserCode:          req.CodeUser,
		CustomerCode:      result.CustomerCode,
		CurrencyCode:      result.CurrencyCode,
		Status:            consts.StatusConsulted,
		PaidFlag:          consts.PaidFlagNo,
		CustomerName:      result.CustomerName,
		InvoiceDate:       result.InvoiceDate,
		InvoicePrice:      result.InvoicePrice,
		InvoiceLocalPrice: result.InvoiceLocalPrice,
	})
	if err != nil {
		return nil, errs.NewPersistenceFailure(err)
	}

	logger.CtxInfo(ctx, log_messages.QueryRequestComplete, slog.Int64("id", id))

	return &models.PaymentQueryData{
		ID:                id,
		CustomerCode:      result.CustomerCode,
		CustomerName:      result.CustomerName,
		InvoiceDate:       result.InvoiceDate,
		InvoicePrice:      result.InvoicePrice,
		InvoiceLocalPrice: result.InvoiceLocalPrice,
	}, nil
}
