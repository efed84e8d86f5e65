package downstream

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"recopayment/internal/pkg/config"
	"recopayment/internal/pkg/consts"
	errs "recopayment/internal/pkg/downstream/error_handling"
	"recopayment/internal/pkg/log_messages"
	"recopayment/internal/pkg/logger"
)

// PaymentQueryAPI interface (for mocking & testing)
type PaymentQueryAPI interface {
	CallConsultaPago(ctx context.Context, payloadXML string) ([]byte, error)
}

type PaymentQueryClient struct {
	URL        string
	httpClient *http.Client
}

// NewPaymentQueryClient builds the upstream client. TLS peer verification is
// dropped only when the insecure_skip_verify flag is set in config; the
// banking link presents a certificate the service cannot validate.
func NewPaymentQueryClient(cfg config.SOAPConfig) *PaymentQueryClient {
	client := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	if cfg.InsecureSkipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, // #nosec G402: explicit config flag for the internal banking link
			},
		}
	}
	return &PaymentQueryClient{
		URL:        cfg.URL,
		httpClient: client,
	}
}

// CallConsultaPago posts the envelope and returns the raw response body. Any
// transport failure or non-2xx status surfaces as UpstreamUnavailable.
func (c *PaymentQueryClient) CallConsultaPago(ctx context.Context, payloadXML string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, strings.NewReader(payloadXML))
	if err != nil {
		logger.CtxError(ctx, log_messages.SoapRequestSendError, err)
		return nil, errs.NewUpstreamUnavailable(fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Content-Type", consts.SoapContentType)
	req.Header.Set("SOAPAction", consts.SoapAction)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.CtxError(ctx, log_messages.SoapRequestSendError, err, slog.String("url", c.URL))
		return nil, errs.NewUpstreamUnavailable(fmt.Errorf("send request: %w", err))
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.CtxError(ctx, "failed to close ConsultaPago response body", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.CtxError(ctx, "failed to read ConsultaPago response body", err)
		return nil, errs.NewUpstreamUnavailable(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.CtxError(ctx, log_messages.SoapRequestSendError,
			fmt.Errorf("upstream status %d", resp.StatusCode),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, errs.NewUpstreamUnavailable(
			fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, string(body)))
	}

	return body, nil
}
