package hook

import (
	"bytes"
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relhook/pkg/domain/model"
	"github.com/m-mizutani/relhook/pkg/domain/types"
)

// DefaultTimeout bounds a whole delivery, including reading the response body
const DefaultTimeout = 10 * time.Second

// config holds internal sender configuration
type config struct {
	timeout  time.Duration
	insecure bool
}

// Option is a functional option for Sender configuration
type Option func(*config)

// WithTimeout overrides DefaultTimeout
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithInsecure disables TLS certificate verification for HTTPS targets
func WithInsecure(insecure bool) Option {
	return func(c *config) {
		c.insecure = insecure
	}
}

// Sender delivers signed webhooks over HTTP(S)
type Sender struct {
	client *http.Client
}

// NewSender creates a new Sender
func NewSender(opts ...Option) *Sender {
	cfg := &config{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.insecure {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 -- explicit opt-in for test listeners
		}
	}

	return &Sender{
		client: &http.Client{
			Timeout:   cfg.timeout,
			Transport: transport,
		},
	}
}

// Send posts the request body once. Failures where no response was obtained
// carry model.ErrTagTransport.
func (s *Sender) Send(ctx context.Context, hookReq *model.HookRequest) (*model.HookResponse, error) {
	url := hookReq.Target.URL()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(hookReq.Body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request",
			goerr.V("url", url),
			goerr.T(model.ErrTagInvalidTarget))
	}

	req.ContentLength = int64(len(hookReq.Body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "GitHub-Hookshot/relhook-"+types.Version)
	req.Header.Set(model.HeaderEvent, string(hookReq.Event))
	req.Header.Set(model.HeaderSignature, hookReq.Signature)
	if hookReq.DeliveryID != "" {
		req.Header.Set(model.HeaderDelivery, hookReq.DeliveryID)
	}

	resp, err := s.client.Do(req) // #nosec G107 -- target URL is operator-provided
	if err != nil {
		return nil, goerr.Wrap(err, "request failed",
			goerr.V("url", url),
			goerr.T(model.ErrTagTransport))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagTransport))
	}

	return &model.HookResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
