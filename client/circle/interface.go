package circle

import "context"

// CircleClientInterface defines the interface for Circle API operations
type CircleClientInterface interface {
	// Health and entity configuration
	Ping(ctx context.Context) (*PingResponse, error)
	GetPublicKey(ctx context.Context) (string, error)
	GetEntityConfig(ctx context.Context) (*EntityConfig, error)
	RequestTestnetTokens(ctx context.Context, request FaucetRequest) error

	// Wallet set management
	CreateWalletSet(ctx context.Context, builder CreateWalletSetBuilder) (*WalletSet, error)
	GetWalletSet(ctx context.Context, walletSetID string) (*WalletSet, error)
	ListWalletSets(ctx context.Context, params *ListWalletSetsParams) ([]WalletSet, error)
	UpdateWalletSet(ctx context.Context, walletSetID string, request UpdateWalletSetRequest) (*WalletSet, error)

	// Wallet management
	CreateWallets(ctx context.Context, builder CreateWalletsBuilder) ([]Wallet, error)
	GetWallet(ctx context.Context, walletID string) (*Wallet, error)
	ListWallets(ctx context.Context, params *ListWalletsParams) ([]Wallet, error)
	UpdateWallet(ctx context.Context, walletID string, request UpdateWalletRequest) (*Wallet, error)
	GetWalletBalance(ctx context.Context, walletID string, params *GetWalletBalanceParams) ([]TokenBalance, error)

	// Transaction management
	CreateTransfer(ctx context.Context, builder CreateTransferBuilder) (*TransactionState, error)
	CreateContractExecution(ctx context.Context, builder CreateContractExecutionBuilder) (*TransactionState, error)
	CancelTransaction(ctx context.Context, builder TransactionActionBuilder) (*TransactionState, error)
	AccelerateTransaction(ctx context.Context, builder TransactionActionBuilder) (*TransactionState, error)
	GetTransaction(ctx context.Context, transactionID string) (*Transaction, error)
	ListTransactions(ctx context.Context, params *ListTransactionsParams) ([]Transaction, error)
	EstimateTransferFee(ctx context.Context, request EstimateTransferFeeRequest) (*FeeEstimate, error)
	ValidateAddress(ctx context.Context, request ValidateAddressRequest) (bool, error)

	// Signing
	SignMessage(ctx context.Context, builder SignMessageBuilder) (*SignatureResult, error)
	SignTypedData(ctx context.Context, builder SignTypedDataBuilder) (*SignatureResult, error)
	SignTransaction(ctx context.Context, builder SignTransactionBuilder) (*SignedTransaction, error)
	SignDelegateAction(ctx context.Context, builder SignDelegateActionBuilder) (*SignedDelegateAction, error)

	// Notification subscriptions
	CreateSubscription(ctx context.Context, request CreateSubscriptionRequest) (*Subscription, error)
	ListSubscriptions(ctx context.Context) ([]Subscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}

// Ensure CircleClient implements the interface
var _ CircleClientInterface = (*CircleClient)(nil)
