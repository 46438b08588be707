package circle

import (
	"context"
	"fmt"
	"net/http"

	httpClient "github.com/cyphera/circle-w3s/client/http"
)

// PingResponse is the plain (non-enveloped) health check body.
type PingResponse struct {
	Message string `json:"message"`
}

// EntityConfig is the developer entity configuration.
type EntityConfig struct {
	AppID string `json:"appId"`
}

type publicKeyData struct {
	PublicKey string `json:"publicKey"`
}

// FaucetRequest asks the testnet faucet for tokens. At least one of Native,
// USDC or EURC should be set.
type FaucetRequest struct {
	Address    string `json:"address"`
	Blockchain string `json:"blockchain"`
	Native     bool   `json:"native,omitempty"`
	USDC       bool   `json:"usdc,omitempty"`
	EURC       bool   `json:"eurc,omitempty"`
}

// Ping checks that the API is reachable. It is the one endpoint whose
// success body is not wrapped in a data envelope.
func (c *CircleClient) Ping(ctx context.Context) (*PingResponse, error) {
	resp, err := httpClient.ExecutePlain[PingResponse](ctx, c.httpClient, http.MethodGet, "/ping", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}
	return &resp, nil
}

// GetPublicKey returns the PEM public key used to encrypt the entity secret.
func (c *CircleClient) GetPublicKey(ctx context.Context) (string, error) {
	data, err := httpClient.Execute[publicKeyData](ctx, c.httpClient, http.MethodGet, w3s("/config/entity/publicKey"), nil)
	if err != nil {
		return "", fmt.Errorf("failed to get entity public key: %w", err)
	}
	return data.PublicKey, nil
}

// GetEntityConfig returns the entity's app ID.
func (c *CircleClient) GetEntityConfig(ctx context.Context) (*EntityConfig, error) {
	data, err := httpClient.Execute[EntityConfig](ctx, c.httpClient, http.MethodGet, w3s("/config/entity"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity config: %w", err)
	}
	return &data, nil
}

// RequestTestnetTokens drips testnet tokens to an address. A successful call
// returns no body.
func (c *CircleClient) RequestTestnetTokens(ctx context.Context, request FaucetRequest) error {
	if !IsTestnet(request.Blockchain) {
		return fmt.Errorf("faucet is only available on testnets, got %q", request.Blockchain)
	}
	if err := ValidateAddressFormat(request.Blockchain, request.Address); err != nil {
		return err
	}

	if _, err := httpClient.Execute[httpClient.Empty](ctx, c.httpClient, http.MethodPost, "/v1/faucet/drips", request); err != nil {
		return fmt.Errorf("failed to request testnet tokens: %w", err)
	}
	return nil
}
