package circle

import (
	"context"
	"fmt"
	"net/http"
	"time"

	httpClient "github.com/cyphera/circle-w3s/client/http"
)

// Fee levels accepted in place of explicit gas parameters.
const (
	FeeLevelLow    = "LOW"
	FeeLevelMedium = "MEDIUM"
	FeeLevelHigh   = "HIGH"
)

// EstimatedFee represents fee estimation details
type EstimatedFee struct {
	GasLimit    string `json:"gasLimit"`
	GasPrice    string `json:"gasPrice,omitempty"`
	MaxFee      string `json:"maxFee,omitempty"`
	PriorityFee string `json:"priorityFee,omitempty"`
	BaseFee     string `json:"baseFee,omitempty"`
	NetworkFee  string `json:"networkFee,omitempty"`
}

// FeeEstimate holds an estimate per fee level.
type FeeEstimate struct {
	Low    EstimatedFee `json:"low"`
	Medium EstimatedFee `json:"medium"`
	High   EstimatedFee `json:"high"`
}

// Transaction represents a transaction record
type Transaction struct {
	ID                   string       `json:"id"`
	AbiFunctionSignature string       `json:"abiFunctionSignature,omitempty"`
	AbiParameters        []any        `json:"abiParameters,omitempty"`
	Amounts              []string     `json:"amounts"`
	AmountInUSD          string       `json:"amountInUSD,omitempty"`
	BlockHash            string       `json:"blockHash,omitempty"`
	BlockHeight          int          `json:"blockHeight,omitempty"`
	Blockchain           string       `json:"blockchain"`
	ContractAddress      string       `json:"contractAddress,omitempty"`
	CreateDate           time.Time    `json:"createDate"`
	CustodyType          string       `json:"custodyType"`
	DestinationAddress   string       `json:"destinationAddress"`
	ErrorReason          string       `json:"errorReason,omitempty"`
	EstimatedFee         EstimatedFee `json:"estimatedFee"`
	FeeLevel             string       `json:"feeLevel,omitempty"`
	FirstConfirmDate     string       `json:"firstConfirmDate,omitempty"`
	NetworkFee           string       `json:"networkFee,omitempty"`
	Operation            string       `json:"operation"`
	RefID                string       `json:"refId,omitempty"`
	SourceAddress        string       `json:"sourceAddress,omitempty"`
	State                string       `json:"state"`
	TokenID              string       `json:"tokenId,omitempty"`
	TransactionType      string       `json:"transactionType"`
	TxHash               string       `json:"txHash,omitempty"`
	UpdateDate           time.Time    `json:"updateDate"`
	WalletID             string       `json:"walletId"`
}

// TransactionState is the immediate result of a transaction write.
type TransactionState struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

type transactionData struct {
	Transaction Transaction `json:"transaction"`
}

type transactionsData struct {
	Transactions []Transaction `json:"transactions"`
}

type validateAddressData struct {
	IsValid bool `json:"isValid"`
}

// ListTransactionsParams represents query parameters for listing transactions
type ListTransactionsParams struct {
	Blockchain         *string    `json:"blockchain,omitempty"`
	DestinationAddress *string    `json:"destinationAddress,omitempty"`
	IncludeAll         *bool      `json:"includeAll,omitempty"`
	Operation          *string    `json:"operation,omitempty"`
	State              *string    `json:"state,omitempty"`
	TxHash             *string    `json:"txHash,omitempty"`
	TxType             *string    `json:"txType,omitempty"`
	WalletIDs          []string   `json:"walletIds,omitempty"`
	From               *time.Time `json:"from,omitempty"`
	To                 *time.Time `json:"to,omitempty"`
	httpClient.PageParams
}

// Fee carries either a fee level or explicit gas parameters.
type Fee struct {
	FeeLevel    string `json:"feeLevel,omitempty"`
	GasLimit    string `json:"gasLimit,omitempty"`
	GasPrice    string `json:"gasPrice,omitempty"`
	MaxFee      string `json:"maxFee,omitempty"`
	PriorityFee string `json:"priorityFee,omitempty"`
}

func (f Fee) validate() error {
	switch f.FeeLevel {
	case "", FeeLevelLow, FeeLevelMedium, FeeLevelHigh:
	default:
		return fmt.Errorf("invalid fee level: %s", f.FeeLevel)
	}
	if f.FeeLevel != "" && (f.GasLimit != "" || f.GasPrice != "" || f.MaxFee != "" || f.PriorityFee != "") {
		return fmt.Errorf("fee level and explicit gas parameters are mutually exclusive")
	}
	return nil
}

// CreateTransferRequest is the wire body for a token transfer.
type CreateTransferRequest struct {
	WriteAuth
	WalletID           string   `json:"walletId"`
	DestinationAddress string   `json:"destinationAddress"`
	Amounts            []string `json:"amounts"`
	TokenID            string   `json:"tokenId,omitempty"`
	Blockchain         string   `json:"blockchain,omitempty"`
	TokenAddress       string   `json:"tokenAddress,omitempty"`
	NftTokenIDs        []string `json:"nftTokenIds,omitempty"`
	RefID              string   `json:"refId,omitempty"`
	Fee
}

// CreateTransferBuilder accumulates a transfer.
type CreateTransferBuilder struct {
	walletID           string
	destinationAddress string
	amounts            []string
	tokenID            string
	blockchain         string
	tokenAddress       string
	nftTokenIDs        []string
	refID              string
	fee                Fee
	idempotencyKey     string
}

// NewCreateTransfer starts a transfer of tokenID from walletID.
func NewCreateTransfer(walletID, destinationAddress, tokenID string, amounts ...string) CreateTransferBuilder {
	return CreateTransferBuilder{
		walletID:           walletID,
		destinationAddress: destinationAddress,
		tokenID:            tokenID,
		amounts:            append([]string(nil), amounts...),
		fee:                Fee{FeeLevel: FeeLevelMedium},
	}
}

// WithToken identifies the token by chain and address instead of token ID.
func (b CreateTransferBuilder) WithToken(blockchain, tokenAddress string) CreateTransferBuilder {
	b.tokenID = ""
	b.blockchain = blockchain
	b.tokenAddress = tokenAddress
	return b
}

// WithBlockchain records the chain the wallet lives on so the destination
// can be checked locally.
func (b CreateTransferBuilder) WithBlockchain(blockchain string) CreateTransferBuilder {
	b.blockchain = blockchain
	return b
}

// WithNftTokenIDs transfers NFTs instead of fungible amounts.
func (b CreateTransferBuilder) WithNftTokenIDs(ids ...string) CreateTransferBuilder {
	b.nftTokenIDs = append([]string(nil), ids...)
	return b
}

// WithRefID sets a caller reference.
func (b CreateTransferBuilder) WithRefID(refID string) CreateTransferBuilder {
	b.refID = refID
	return b
}

// WithFeeLevel selects a fee level, clearing any explicit gas parameters.
func (b CreateTransferBuilder) WithFeeLevel(level string) CreateTransferBuilder {
	b.fee = Fee{FeeLevel: level}
	return b
}

// WithFee sets explicit fee parameters.
func (b CreateTransferBuilder) WithFee(fee Fee) CreateTransferBuilder {
	b.fee = fee
	return b
}

// WithIdempotencyKey pins the idempotency key.
func (b CreateTransferBuilder) WithIdempotencyKey(key string) CreateTransferBuilder {
	b.idempotencyKey = key
	return b
}

func (b CreateTransferBuilder) validate() error {
	if b.walletID == "" {
		return fmt.Errorf("wallet ID is required")
	}
	if b.destinationAddress == "" {
		return fmt.Errorf("destination address is required")
	}
	if len(b.amounts) == 0 && len(b.nftTokenIDs) == 0 {
		return fmt.Errorf("at least one amount is required")
	}
	for _, amount := range b.amounts {
		if amount == "" {
			return fmt.Errorf("amounts must not be empty")
		}
	}
	if b.tokenID == "" && b.tokenAddress == "" && b.blockchain == "" {
		return fmt.Errorf("token ID or blockchain is required")
	}
	if b.blockchain != "" {
		if !IsSupportedBlockchain(b.blockchain) {
			return fmt.Errorf("invalid blockchain specified: %s", b.blockchain)
		}
		if err := ValidateAddressFormat(b.blockchain, b.destinationAddress); err != nil {
			return err
		}
	}
	return b.fee.validate()
}

// Build validates the transfer and generates per-request credentials.
func (b CreateTransferBuilder) Build(secrets CiphertextSource) (CreateTransferRequest, error) {
	if err := b.validate(); err != nil {
		return CreateTransferRequest{}, err
	}

	auth, err := newWriteAuth(secrets, b.idempotencyKey)
	if err != nil {
		return CreateTransferRequest{}, err
	}

	return CreateTransferRequest{
		WriteAuth:          auth,
		WalletID:           b.walletID,
		DestinationAddress: b.destinationAddress,
		Amounts:            append([]string(nil), b.amounts...),
		TokenID:            b.tokenID,
		Blockchain:         b.blockchain,
		TokenAddress:       b.tokenAddress,
		NftTokenIDs:        append([]string(nil), b.nftTokenIDs...),
		RefID:              b.refID,
		Fee:                b.fee,
	}, nil
}

// CreateContractExecutionRequest is the wire body for a contract call.
type CreateContractExecutionRequest struct {
	WriteAuth
	WalletID             string `json:"walletId"`
	ContractAddress      string `json:"contractAddress"`
	AbiFunctionSignature string `json:"abiFunctionSignature,omitempty"`
	AbiParameters        []any  `json:"abiParameters,omitempty"`
	CallData             string `json:"callData,omitempty"`
	Amount               string `json:"amount,omitempty"`
	RefID                string `json:"refId,omitempty"`
	Fee
}

// CreateContractExecutionBuilder accumulates a contract execution.
type CreateContractExecutionBuilder struct {
	walletID             string
	blockchain           string
	contractAddress      string
	abiFunctionSignature string
	abiParameters        []any
	callData             string
	amount               string
	refID                string
	fee                  Fee
	idempotencyKey       string
}

// NewCreateContractExecution starts a contract call from walletID.
func NewCreateContractExecution(walletID, contractAddress string) CreateContractExecutionBuilder {
	return CreateContractExecutionBuilder{
		walletID:        walletID,
		contractAddress: contractAddress,
		fee:             Fee{FeeLevel: FeeLevelMedium},
	}
}

// WithABI sets the function signature and its parameters.
func (b CreateContractExecutionBuilder) WithABI(signature string, params ...any) CreateContractExecutionBuilder {
	b.abiFunctionSignature = signature
	b.abiParameters = append([]any(nil), params...)
	b.callData = ""
	return b
}

// WithCallData sets raw call data, replacing any ABI signature.
func (b CreateContractExecutionBuilder) WithCallData(callData string) CreateContractExecutionBuilder {
	b.callData = callData
	b.abiFunctionSignature = ""
	b.abiParameters = nil
	return b
}

// WithBlockchain records the wallet's chain so the contract address can be
// checked locally.
func (b CreateContractExecutionBuilder) WithBlockchain(blockchain string) CreateContractExecutionBuilder {
	b.blockchain = blockchain
	return b
}

// WithAmount sets the native amount sent with the call.
func (b CreateContractExecutionBuilder) WithAmount(amount string) CreateContractExecutionBuilder {
	b.amount = amount
	return b
}

// WithRefID sets a caller reference.
func (b CreateContractExecutionBuilder) WithRefID(refID string) CreateContractExecutionBuilder {
	b.refID = refID
	return b
}

// WithFeeLevel selects a fee level, clearing any explicit gas parameters.
func (b CreateContractExecutionBuilder) WithFeeLevel(level string) CreateContractExecutionBuilder {
	b.fee = Fee{FeeLevel: level}
	return b
}

// WithFee sets explicit fee parameters.
func (b CreateContractExecutionBuilder) WithFee(fee Fee) CreateContractExecutionBuilder {
	b.fee = fee
	return b
}

// WithIdempotencyKey pins the idempotency key.
func (b CreateContractExecutionBuilder) WithIdempotencyKey(key string) CreateContractExecutionBuilder {
	b.idempotencyKey = key
	return b
}

// Build validates the call and generates per-request credentials.
func (b CreateContractExecutionBuilder) Build(secrets CiphertextSource) (CreateContractExecutionRequest, error) {
	if b.walletID == "" {
		return CreateContractExecutionRequest{}, fmt.Errorf("wallet ID is required")
	}
	if b.contractAddress == "" {
		return CreateContractExecutionRequest{}, fmt.Errorf("contract address is required")
	}
	if b.abiFunctionSignature == "" && b.callData == "" {
		return CreateContractExecutionRequest{}, fmt.Errorf("ABI function signature or call data is required")
	}
	if b.blockchain != "" {
		if !IsSupportedBlockchain(b.blockchain) {
			return CreateContractExecutionRequest{}, fmt.Errorf("invalid blockchain specified: %s", b.blockchain)
		}
		if err := ValidateAddressFormat(b.blockchain, b.contractAddress); err != nil {
			return CreateContractExecutionRequest{}, err
		}
	}
	if err := b.fee.validate(); err != nil {
		return CreateContractExecutionRequest{}, err
	}

	auth, err := newWriteAuth(secrets, b.idempotencyKey)
	if err != nil {
		return CreateContractExecutionRequest{}, err
	}

	return CreateContractExecutionRequest{
		WriteAuth:            auth,
		WalletID:             b.walletID,
		ContractAddress:      b.contractAddress,
		AbiFunctionSignature: b.abiFunctionSignature,
		AbiParameters:        append([]any(nil), b.abiParameters...),
		CallData:             b.callData,
		Amount:               b.amount,
		RefID:                b.refID,
		Fee:                  b.fee,
	}, nil
}

// TransactionActionRequest is the body for cancel and accelerate.
type TransactionActionRequest struct {
	WriteAuth
}

// TransactionActionBuilder targets one transaction for cancel or
// accelerate.
type TransactionActionBuilder struct {
	transactionID  string
	idempotencyKey string
}

// NewTransactionAction starts a cancel or accelerate of transactionID.
func NewTransactionAction(transactionID string) TransactionActionBuilder {
	return TransactionActionBuilder{transactionID: transactionID}
}

// WithIdempotencyKey pins the idempotency key so a retried cancel or
// accelerate is applied at most once.
func (b TransactionActionBuilder) WithIdempotencyKey(key string) TransactionActionBuilder {
	b.idempotencyKey = key
	return b
}

// Build finalizes the request.
func (b TransactionActionBuilder) Build(secrets CiphertextSource) (TransactionActionRequest, error) {
	if _, err := pathID("transaction ID", b.transactionID); err != nil {
		return TransactionActionRequest{}, err
	}
	auth, err := newWriteAuth(secrets, b.idempotencyKey)
	if err != nil {
		return TransactionActionRequest{}, err
	}
	return TransactionActionRequest{WriteAuth: auth}, nil
}

// EstimateTransferFeeRequest asks for fee estimates without sending.
type EstimateTransferFeeRequest struct {
	WalletID           string   `json:"walletId,omitempty"`
	SourceAddress      string   `json:"sourceAddress,omitempty"`
	Blockchain         string   `json:"blockchain,omitempty"`
	DestinationAddress string   `json:"destinationAddress"`
	Amounts            []string `json:"amounts"`
	TokenID            string   `json:"tokenId,omitempty"`
	TokenAddress       string   `json:"tokenAddress,omitempty"`
}

// ValidateAddressRequest asks whether an address is valid on a chain.
type ValidateAddressRequest struct {
	Blockchain string `json:"blockchain"`
	Address    string `json:"address"`
}

// CreateTransfer submits a token transfer.
func (c *CircleClient) CreateTransfer(ctx context.Context, builder CreateTransferBuilder) (*TransactionState, error) {
	request, err := builder.Build(c.secrets)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[TransactionState](ctx, c.httpClient, http.MethodPost, w3s("/developer/transactions/transfer"), request)
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}
	return &data, nil
}

// CreateContractExecution submits a contract call.
func (c *CircleClient) CreateContractExecution(ctx context.Context, builder CreateContractExecutionBuilder) (*TransactionState, error) {
	request, err := builder.Build(c.secrets)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[TransactionState](ctx, c.httpClient, http.MethodPost, w3s("/developer/transactions/contractExecution"), request)
	if err != nil {
		return nil, fmt.Errorf("failed to create contract execution: %w", err)
	}
	return &data, nil
}

// CancelTransaction cancels a pending transaction.
func (c *CircleClient) CancelTransaction(ctx context.Context, builder TransactionActionBuilder) (*TransactionState, error) {
	return c.transactionAction(ctx, builder, "cancel")
}

// AccelerateTransaction resubmits a pending transaction with a higher fee.
func (c *CircleClient) AccelerateTransaction(ctx context.Context, builder TransactionActionBuilder) (*TransactionState, error) {
	return c.transactionAction(ctx, builder, "accelerate")
}

func (c *CircleClient) transactionAction(ctx context.Context, builder TransactionActionBuilder, action string) (*TransactionState, error) {
	request, err := builder.Build(c.secrets)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[TransactionState](ctx, c.httpClient, http.MethodPost,
		w3s("/developer/transactions/%s/%s", builder.transactionID, action), request)
	if err != nil {
		return nil, fmt.Errorf("failed to %s transaction: %w", action, err)
	}
	return &data, nil
}

// GetTransaction retrieves a transaction by ID.
func (c *CircleClient) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	id, err := pathID("transaction ID", transactionID)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[transactionData](ctx, c.httpClient, http.MethodGet, w3s("/transactions/%s", id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &data.Transaction, nil
}

// ListTransactions lists transactions. params may be nil.
func (c *CircleClient) ListTransactions(ctx context.Context, params *ListTransactionsParams) ([]Transaction, error) {
	data, err := httpClient.ExecuteWithQuery[transactionsData](ctx, c.httpClient, w3s("/transactions"), params)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return data.Transactions, nil
}

// EstimateTransferFee returns fee estimates for a transfer.
func (c *CircleClient) EstimateTransferFee(ctx context.Context, request EstimateTransferFeeRequest) (*FeeEstimate, error) {
	if request.DestinationAddress == "" || len(request.Amounts) == 0 {
		return nil, fmt.Errorf("destination address and amounts are required")
	}

	data, err := httpClient.Execute[FeeEstimate](ctx, c.httpClient, http.MethodPost, w3s("/transactions/transfer/estimateFee"), request)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate transfer fee: %w", err)
	}
	return &data, nil
}

// ValidateAddress asks the API whether address is valid on blockchain. EVM
// addresses that fail the local hex check are rejected without a request.
func (c *CircleClient) ValidateAddress(ctx context.Context, request ValidateAddressRequest) (bool, error) {
	if !IsSupportedBlockchain(request.Blockchain) {
		return false, fmt.Errorf("invalid blockchain specified: %s", request.Blockchain)
	}
	if request.Address == "" {
		return false, fmt.Errorf("address is required")
	}
	if IsEVM(request.Blockchain) && ValidateAddressFormat(request.Blockchain, request.Address) != nil {
		return false, nil
	}

	data, err := httpClient.Execute[validateAddressData](ctx, c.httpClient, http.MethodPost, w3s("/transactions/validateAddress"), request)
	if err != nil {
		return false, fmt.Errorf("failed to validate address: %w", err)
	}
	return data.IsValid, nil
}
