package error_handling

import (
	"fmt"
	"net/http"
)

// Kind tags a payment-query failure with the stage that produced it.
type Kind string

const (
	KindUpstreamUnavailable       Kind = "upstream_unavailable"
	KindResultNotFound            Kind = "result_not_found"
	KindMalformedUpstreamResponse Kind = "malformed_upstream_response"
	KindPersistenceFailure        Kind = "persistence_failure"
)

// PaymentQueryError is the error returned by every stage of the query flow.
// The orchestrator converts it to an HTTP response via HTTPStatus.
type PaymentQueryError struct {
	Kind Kind
	Err  error
}

func (e *PaymentQueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *PaymentQueryError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the failure kind to a response code. Upstream data problems
// surface as client-visible 4xx codes, transport and storage problems as
// 502/500.
func (e *PaymentQueryError) HTTPStatus() int {
	switch e.Kind {
	case KindUpstreamUnavailable:
		return http.StatusBadGateway
	case KindResultNotFound:
		return http.StatusNotFound
	case KindMalformedUpstreamResponse:
		return http.StatusUnprocessableEntity
	case KindPersistenceFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func NewUpstreamUnavailable(err error) *PaymentQueryError {
	return &PaymentQueryError{Kind: KindUpstreamUnavailable, Err: err}
}

func NewResultNotFound(err error) *PaymentQueryError {
	return &PaymentQueryError{Kind: KindResultNotFound, Err: err}
}

func NewMalformedUpstreamResponse(err error) *PaymentQueryError {
	return &PaymentQueryError{Kind: KindMalformedUpstreamResponse, Err: err}
}

func NewPersistenceFailure(err error) *PaymentQueryError {
	return &PaymentQueryError{Kind: KindPersistenceFailure, Err: err}
}
