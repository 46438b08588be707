package circle

import (
	"context"
	"fmt"
	"net/http"
	"time"

	httpClient "github.com/cyphera/circle-w3s/client/http"
)

// TokenInfo represents information about a token
type TokenInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Standard     string    `json:"standard"`
	Blockchain   string    `json:"blockchain"`
	Decimals     int       `json:"decimals"`
	IsNative     bool      `json:"isNative"`
	Symbol       string    `json:"symbol"`
	TokenAddress string    `json:"tokenAddress"`
	UpdateDate   time.Time `json:"updateDate"`
	CreateDate   time.Time `json:"createDate"`
}

// TokenBalance represents a token balance
type TokenBalance struct {
	Amount     string    `json:"amount"`
	Token      TokenInfo `json:"token"`
	UpdateDate time.Time `json:"updateDate"`
}

// Wallet represents a developer-controlled wallet
type Wallet struct {
	ID               string    `json:"id"`
	Address          string    `json:"address"`
	Blockchain       string    `json:"blockchain"`
	CreateDate       time.Time `json:"createDate"`
	UpdateDate       time.Time `json:"updateDate"`
	CustodyType      string    `json:"custodyType"`
	Name             string    `json:"name"`
	RefID            string    `json:"refId"`
	State            string    `json:"state"`
	WalletSetID      string    `json:"walletSetId"`
	InitialPublicKey string    `json:"initialPublicKey,omitempty"`
	AccountType      string    `json:"accountType"`
}

// WalletMetadata names a wallet at creation time. Entries are applied to the
// created wallets in order.
type WalletMetadata struct {
	Name  string `json:"name,omitempty"`
	RefID string `json:"refId,omitempty"`
}

type walletData struct {
	Wallet Wallet `json:"wallet"`
}

type walletsData struct {
	Wallets []Wallet `json:"wallets"`
}

type tokenBalancesData struct {
	TokenBalances []TokenBalance `json:"tokenBalances"`
}

// CreateWalletsRequest is the wire body for creating wallets.
type CreateWalletsRequest struct {
	WriteAuth
	WalletSetID string           `json:"walletSetId"`
	Blockchains []string         `json:"blockchains"`
	Count       int              `json:"count,omitempty"`
	AccountType string           `json:"accountType,omitempty"`
	Metadata    []WalletMetadata `json:"metadata,omitempty"`
}

// CreateWalletsBuilder accumulates a wallet creation.
type CreateWalletsBuilder struct {
	walletSetID    string
	blockchains    []string
	count          int
	accountType    string
	metadata       []WalletMetadata
	idempotencyKey string
}

// NewCreateWallets starts a wallet creation in the given wallet set.
func NewCreateWallets(walletSetID string, blockchains ...string) CreateWalletsBuilder {
	return CreateWalletsBuilder{
		walletSetID: walletSetID,
		blockchains: append([]string(nil), blockchains...),
		count:       1,
	}
}

// WithCount sets how many wallets to create per blockchain.
func (b CreateWalletsBuilder) WithCount(count int) CreateWalletsBuilder {
	b.count = count
	return b
}

// WithAccountType selects EOA or SCA.
func (b CreateWalletsBuilder) WithAccountType(accountType string) CreateWalletsBuilder {
	b.accountType = accountType
	return b
}

// WithMetadata appends name/refId metadata.
func (b CreateWalletsBuilder) WithMetadata(metadata ...WalletMetadata) CreateWalletsBuilder {
	b.metadata = append(append([]WalletMetadata(nil), b.metadata...), metadata...)
	return b
}

// WithIdempotencyKey pins the idempotency key.
func (b CreateWalletsBuilder) WithIdempotencyKey(key string) CreateWalletsBuilder {
	b.idempotencyKey = key
	return b
}

// Build validates the request and generates per-request credentials.
func (b CreateWalletsBuilder) Build(secrets CiphertextSource) (CreateWalletsRequest, error) {
	if b.walletSetID == "" {
		return CreateWalletsRequest{}, fmt.Errorf("wallet set ID is required")
	}
	if err := ValidateBlockchains(b.blockchains); err != nil {
		return CreateWalletsRequest{}, err
	}
	if b.count < 1 {
		return CreateWalletsRequest{}, fmt.Errorf("count must be at least 1, got %d", b.count)
	}
	switch b.accountType {
	case "", AccountTypeEOA, AccountTypeSCA:
	default:
		return CreateWalletsRequest{}, fmt.Errorf("invalid account type: %s", b.accountType)
	}

	auth, err := newWriteAuth(secrets, b.idempotencyKey)
	if err != nil {
		return CreateWalletsRequest{}, err
	}

	return CreateWalletsRequest{
		WriteAuth:   auth,
		WalletSetID: b.walletSetID,
		Blockchains: append([]string(nil), b.blockchains...),
		Count:       b.count,
		AccountType: b.accountType,
		Metadata:    append([]WalletMetadata(nil), b.metadata...),
	}, nil
}

// UpdateWalletRequest changes a wallet's name or refId.
type UpdateWalletRequest struct {
	Name  string `json:"name,omitempty"`
	RefID string `json:"refId,omitempty"`
}

// ListWalletsParams represents query parameters for listing wallets
type ListWalletsParams struct {
	Address     *string    `json:"address,omitempty"`
	Blockchain  *string    `json:"blockchain,omitempty"`
	WalletSetID *string    `json:"walletSetId,omitempty"`
	RefID       *string    `json:"refId,omitempty"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
	httpClient.PageParams
}

// GetWalletBalanceParams represents optional query parameters for getting wallet balances
type GetWalletBalanceParams struct {
	IncludeAll   *bool   `json:"includeAll,omitempty"`
	Name         *string `json:"name,omitempty"`
	TokenAddress *string `json:"tokenAddress,omitempty"`
	Standard     *string `json:"standard,omitempty"`
	httpClient.PageParams
}

// CreateWallets creates developer-controlled wallets.
func (c *CircleClient) CreateWallets(ctx context.Context, builder CreateWalletsBuilder) ([]Wallet, error) {
	request, err := builder.Build(c.secrets)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[walletsData](ctx, c.httpClient, http.MethodPost, w3s("/developer/wallets"), request)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallets: %w", err)
	}
	return data.Wallets, nil
}

// GetWallet retrieves details about a specific wallet by its ID
func (c *CircleClient) GetWallet(ctx context.Context, walletID string) (*Wallet, error) {
	id, err := pathID("wallet ID", walletID)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[walletData](ctx, c.httpClient, http.MethodGet, w3s("/wallets/%s", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &data.Wallet, nil
}

// ListWallets lists wallets matching params. params may be nil.
func (c *CircleClient) ListWallets(ctx context.Context, params *ListWalletsParams) ([]Wallet, error) {
	data, err := httpClient.ExecuteWithQuery[walletsData](ctx, c.httpClient, w3s("/wallets"), params)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return data.Wallets, nil
}

// UpdateWallet changes a wallet's name or refId.
func (c *CircleClient) UpdateWallet(ctx context.Context, walletID string, request UpdateWalletRequest) (*Wallet, error) {
	id, err := pathID("wallet ID", walletID)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[walletData](ctx, c.httpClient, http.MethodPut, w3s("/wallets/%s", id), request)
	if err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}
	return &data.Wallet, nil
}

// GetWalletBalance retrieves token balances for a specific wallet
func (c *CircleClient) GetWalletBalance(ctx context.Context, walletID string, params *GetWalletBalanceParams) ([]TokenBalance, error) {
	id, err := pathID("wallet ID", walletID)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.ExecuteWithQuery[tokenBalancesData](ctx, c.httpClient, w3s("/wallets/%s/balances", id), params)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet balances: %w", err)
	}
	return data.TokenBalances, nil
}
