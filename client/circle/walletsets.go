package circle

import (
	"context"
	"fmt"
	"net/http"
	"time"

	httpClient "github.com/cyphera/circle-w3s/client/http"
)

// WalletSet groups developer-controlled wallets that share a key hierarchy.
type WalletSet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	CustodyType string    `json:"custodyType"`
	UpdateDate  time.Time `json:"updateDate"`
	CreateDate  time.Time `json:"createDate"`
}

type walletSetData struct {
	WalletSet WalletSet `json:"walletSet"`
}

type walletSetsData struct {
	WalletSets []WalletSet `json:"walletSets"`
}

// CreateWalletSetRequest is the wire body for creating a wallet set.
type CreateWalletSetRequest struct {
	WriteAuth
	Name string `json:"name,omitempty"`
}

// CreateWalletSetBuilder accumulates a wallet set creation. Setters return
// a modified copy; Build generates the per-request credentials.
type CreateWalletSetBuilder struct {
	name           string
	idempotencyKey string
}

// NewCreateWalletSet starts a wallet set creation.
func NewCreateWalletSet(name string) CreateWalletSetBuilder {
	return CreateWalletSetBuilder{name: name}
}

// WithName sets the wallet set name.
func (b CreateWalletSetBuilder) WithName(name string) CreateWalletSetBuilder {
	b.name = name
	return b
}

// WithIdempotencyKey pins the idempotency key, e.g. to make retries across
// process restarts exactly-once.
func (b CreateWalletSetBuilder) WithIdempotencyKey(key string) CreateWalletSetBuilder {
	b.idempotencyKey = key
	return b
}

// Build finalizes the request.
func (b CreateWalletSetBuilder) Build(secrets CiphertextSource) (CreateWalletSetRequest, error) {
	auth, err := newWriteAuth(secrets, b.idempotencyKey)
	if err != nil {
		return CreateWalletSetRequest{}, err
	}
	return CreateWalletSetRequest{WriteAuth: auth, Name: b.name}, nil
}

// UpdateWalletSetRequest renames a wallet set. Updates are not
// developer-authenticated writes and carry no ciphertext.
type UpdateWalletSetRequest struct {
	Name string `json:"name"`
}

// ListWalletSetsParams are the query parameters for ListWalletSets.
type ListWalletSetsParams struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
	httpClient.PageParams
}

// CreateWalletSet creates a developer-controlled wallet set.
func (c *CircleClient) CreateWalletSet(ctx context.Context, builder CreateWalletSetBuilder) (*WalletSet, error) {
	request, err := builder.Build(c.secrets)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[walletSetData](ctx, c.httpClient, http.MethodPost, w3s("/developer/walletSets"), request)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet set: %w", err)
	}
	return &data.WalletSet, nil
}

// GetWalletSet retrieves a wallet set by ID.
func (c *CircleClient) GetWalletSet(ctx context.Context, walletSetID string) (*WalletSet, error) {
	id, err := pathID("wallet set ID", walletSetID)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[walletSetData](ctx, c.httpClient, http.MethodGet, w3s("/walletSets/%s", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet set: %w", err)
	}
	return &data.WalletSet, nil
}

// ListWalletSets lists wallet sets. params may be nil.
func (c *CircleClient) ListWalletSets(ctx context.Context, params *ListWalletSetsParams) ([]WalletSet, error) {
	data, err := httpClient.ExecuteWithQuery[walletSetsData](ctx, c.httpClient, w3s("/walletSets"), params)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet sets: %w", err)
	}
	return data.WalletSets, nil
}

// UpdateWalletSet renames a wallet set.
func (c *CircleClient) UpdateWalletSet(ctx context.Context, walletSetID string, request UpdateWalletSetRequest) (*WalletSet, error) {
	id, err := pathID("wallet set ID", walletSetID)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[walletSetData](ctx, c.httpClient, http.MethodPut, w3s("/walletSets/%s", id), request)
	if err != nil {
		return nil, fmt.Errorf("failed to update wallet set: %w", err)
	}
	return &data.WalletSet, nil
}
