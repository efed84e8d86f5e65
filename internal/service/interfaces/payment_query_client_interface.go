package interfaces

import "context"

type PaymentQueryClientInterface interface {
	CallConsultaPago(ctx context.Context, payloadXML string) ([]byte, error)
}
