package circle

import (
	"context"
	"fmt"

	httpClient "github.com/cyphera/circle-w3s/client/http"
	"github.com/cyphera/circle-w3s/config"
	"github.com/cyphera/circle-w3s/crypto/entitysecret"
	"github.com/cyphera/circle-w3s/logger"

	"go.uber.org/zap"
)

const (
	CircleAPIBaseURL = config.DefaultBaseURL

	w3sPrefix = "/v1/w3s"
)

// CiphertextSource produces a fresh entity secret ciphertext per call.
// *entitysecret.Encryptor is the production implementation.
type CiphertextSource interface {
	Ciphertext() (string, error)
}

// CircleClient talks to the Web3 Services API for developer-controlled
// wallets. Reads need only the API key; writes also need a CiphertextSource.
type CircleClient struct {
	httpClient *httpClient.HTTPClient
	secrets    CiphertextSource
}

type clientOptions struct {
	baseURL     string
	httpOptions []httpClient.ClientOption
}

// Option configures a CircleClient.
type Option func(*clientOptions)

// WithBaseURL points the client at another host, e.g. a sandbox or a test
// server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithHTTPOptions passes options through to the transport.
func WithHTTPOptions(options ...httpClient.ClientOption) Option {
	return func(o *clientOptions) {
		o.httpOptions = append(o.httpOptions, options...)
	}
}

// NewCircleClient creates a client. secrets may be nil for read-only use.
func NewCircleClient(apiKey string, secrets CiphertextSource, options ...Option) (*CircleClient, error) {
	opts := clientOptions{baseURL: CircleAPIBaseURL}
	for _, option := range options {
		option(&opts)
	}

	httpOptions := append([]httpClient.ClientOption{httpClient.WithAPIKey(apiKey)}, opts.httpOptions...)
	transport, err := httpClient.NewHTTPClient(opts.baseURL, httpOptions...)
	if err != nil {
		return nil, err
	}

	return &CircleClient{
		httpClient: transport,
		secrets:    secrets,
	}, nil
}

// NewCircleClientFromConfig builds a client from validated configuration.
// When cfg carries no public key the entity public key is fetched once here.
func NewCircleClientFromConfig(ctx context.Context, cfg *config.Config, options ...Option) (*CircleClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base []Option
	if cfg.BaseURL != "" {
		base = append(base, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		base = append(base, WithHTTPOptions(httpClient.WithTimeout(cfg.Timeout)))
	}

	client, err := NewCircleClient(cfg.APIKey, nil, append(base, options...)...)
	if err != nil {
		return nil, err
	}

	publicKey := cfg.PublicKey
	if publicKey == "" {
		logger.Debug("No entity public key configured, fetching from API")
		publicKey, err = client.GetPublicKey(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch entity public key: %w", err)
		}
	}

	encryptor, err := entitysecret.NewEncryptor(cfg.EntitySecret, publicKey)
	if err != nil {
		return nil, err
	}
	client.secrets = encryptor

	logger.Info("Circle client initialised",
		zap.String("baseURL", client.httpClient.BaseURL()),
		zap.Int("publicKeyBytes", encryptor.KeySize()))

	return client, nil
}

// Transport exposes the underlying envelope client.
func (c *CircleClient) Transport() *httpClient.HTTPClient {
	return c.httpClient
}

// Secrets returns the ciphertext source used for writes, or nil.
func (c *CircleClient) Secrets() CiphertextSource {
	return c.secrets
}

func w3s(format string, args ...interface{}) string {
	return w3sPrefix + fmt.Sprintf(format, args...)
}
