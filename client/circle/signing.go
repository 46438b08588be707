package circle

import (
	"context"
	"fmt"
	"net/http"

	httpClient "github.com/cyphera/circle-w3s/client/http"
	"github.com/cyphera/circle-w3s/near"
)

// SignatureResult is returned by the message and typed data endpoints.
type SignatureResult struct {
	Signature string `json:"signature"`
}

// SignedTransaction is returned by the transaction signing endpoint.
type SignedTransaction struct {
	Signature         string `json:"signature"`
	SignedTransaction string `json:"signedTransaction"`
	TxHash            string `json:"txHash,omitempty"`
}

// SignedDelegateAction is returned by the NEAR delegate action endpoint.
type SignedDelegateAction struct {
	Signature            string `json:"signature"`
	SignedDelegateAction string `json:"signedDelegateAction"`
}

// SignMessageRequest is the wire body for message signing.
type SignMessageRequest struct {
	WriteAuth
	WalletID     string `json:"walletId"`
	Message      string `json:"message"`
	EncodedByHex bool   `json:"encodedByHex,omitempty"`
	Memo         string `json:"memo,omitempty"`
}

// SignMessageBuilder accumulates a message signature request.
type SignMessageBuilder struct {
	walletID       string
	message        string
	encodedByHex   bool
	memo           string
	idempotencyKey string
}

// NewSignMessage starts signing message with walletID.
func NewSignMessage(walletID, message string) SignMessageBuilder {
	return SignMessageBuilder{walletID: walletID, message: message}
}

// WithHexEncoding marks the message as hex rather than UTF-8 text.
func (b SignMessageBuilder) WithHexEncoding() SignMessageBuilder {
	b.encodedByHex = true
	return b
}

// WithMemo attaches a memo shown in the Circle console.
func (b SignMessageBuilder) WithMemo(memo string) SignMessageBuilder {
	b.memo = memo
	return b
}

// WithIdempotencyKey pins the idempotency key.
func (b SignMessageBuilder) WithIdempotencyKey(key string) SignMessageBuilder {
	b.idempotencyKey = key
	return b
}

// Build generates per-request credentials.
func (b SignMessageBuilder) Build(secrets CiphertextSource) (SignMessageRequest, error) {
	if b.walletID == "" || b.message == "" {
		return SignMessageRequest{}, fmt.Errorf("wallet ID and message are required")
	}

	auth, err := newWriteAuth(secrets, b.idempotencyKey)
	if err != nil {
		return SignMessageRequest{}, err
	}

	return SignMessageRequest{
		WriteAuth:    auth,
		WalletID:     b.walletID,
		Message:      b.message,
		EncodedByHex: b.encodedByHex,
		Memo:         b.memo,
	}, nil
}

// SignTypedDataRequest is the wire body for EIP-712 signing.
type SignTypedDataRequest struct {
	WriteAuth
	WalletID string `json:"walletId"`
	Data     string `json:"data"`
	Memo     string `json:"memo,omitempty"`
}

// SignTypedDataBuilder accumulates an EIP-712 signature request.
type SignTypedDataBuilder struct {
	walletID       string
	data           string
	memo           string
	idempotencyKey string
}

// NewSignTypedData starts signing the JSON typed data with walletID.
func NewSignTypedData(walletID, data string) SignTypedDataBuilder {
	return SignTypedDataBuilder{walletID: walletID, data: data}
}

// WithMemo attaches a memo.
func (b SignTypedDataBuilder) WithMemo(memo string) SignTypedDataBuilder {
	b.memo = memo
	return b
}

// WithIdempotencyKey pins the idempotency key.
func (b SignTypedDataBuilder) WithIdempotencyKey(key string) SignTypedDataBuilder {
	b.idempotencyKey = key
	return b
}

// Build generates per-request credentials.
func (b SignTypedDataBuilder) Build(secrets CiphertextSource) (SignTypedDataRequest, error) {
	if b.walletID == "" || b.data == "" {
		return SignTypedDataRequest{}, fmt.Errorf("wallet ID and typed data are required")
	}

	auth, err := newWriteAuth(secrets, b.idempotencyKey)
	if err != nil {
		return SignTypedDataRequest{}, err
	}

	return SignTypedDataRequest{WriteAuth: auth, WalletID: b.walletID, Data: b.data, Memo: b.memo}, nil
}

// SignTransactionRequest is the wire body for raw transaction signing.
// Exactly one of RawTransaction and Transaction is set.
type SignTransactionRequest struct {
	WriteAuth
	WalletID       string `json:"walletId"`
	RawTransaction string `json:"rawTransaction,omitempty"`
	Transaction    string `json:"transaction,omitempty"`
	Memo           string `json:"memo,omitempty"`
}

// SignTransactionBuilder accumulates a transaction signature request.
type SignTransactionBuilder struct {
	walletID       string
	rawTransaction string
	transaction    string
	memo           string
	idempotencyKey string
}

// NewSignRawTransaction signs a serialized transaction.
func NewSignRawTransaction(walletID, rawTransaction string) SignTransactionBuilder {
	return SignTransactionBuilder{walletID: walletID, rawTransaction: rawTransaction}
}

// NewSignTransaction signs a JSON transaction object.
func NewSignTransaction(walletID, transaction string) SignTransactionBuilder {
	return SignTransactionBuilder{walletID: walletID, transaction: transaction}
}

// WithMemo attaches a memo.
func (b SignTransactionBuilder) WithMemo(memo string) SignTransactionBuilder {
	b.memo = memo
	return b
}

// WithIdempotencyKey pins the idempotency key.
func (b SignTransactionBuilder) WithIdempotencyKey(key string) SignTransactionBuilder {
	b.idempotencyKey = key
	return b
}

// Build generates per-request credentials.
func (b SignTransactionBuilder) Build(secrets CiphertextSource) (SignTransactionRequest, error) {
	if b.walletID == "" {
		return SignTransactionRequest{}, fmt.Errorf("wallet ID is required")
	}
	if (b.rawTransaction == "") == (b.transaction == "") {
		return SignTransactionRequest{}, fmt.Errorf("exactly one of raw transaction and transaction is required")
	}

	auth, err := newWriteAuth(secrets, b.idempotencyKey)
	if err != nil {
		return SignTransactionRequest{}, err
	}

	return SignTransactionRequest{
		WriteAuth:      auth,
		WalletID:       b.walletID,
		RawTransaction: b.rawTransaction,
		Transaction:    b.transaction,
		Memo:           b.memo,
	}, nil
}

// SignDelegateActionRequest is the wire body for NEAR delegate action
// signing. UnsignedDelegateAction is base64(prefix || borsh(action)).
type SignDelegateActionRequest struct {
	WriteAuth
	WalletID               string `json:"walletId"`
	UnsignedDelegateAction string `json:"unsignedDelegateAction"`
}

// SignDelegateActionBuilder accumulates a NEAR delegate action signature.
type SignDelegateActionBuilder struct {
	walletID       string
	action         near.DelegateAction
	idempotencyKey string
}

// NewSignDelegateAction starts signing action with the NEAR wallet walletID.
func NewSignDelegateAction(walletID string, action near.DelegateAction) SignDelegateActionBuilder {
	return SignDelegateActionBuilder{walletID: walletID, action: action}
}

// WithIdempotencyKey pins the idempotency key.
func (b SignDelegateActionBuilder) WithIdempotencyKey(key string) SignDelegateActionBuilder {
	b.idempotencyKey = key
	return b
}

// Build encodes the delegate action and generates per-request credentials.
func (b SignDelegateActionBuilder) Build(secrets CiphertextSource) (SignDelegateActionRequest, error) {
	if b.walletID == "" {
		return SignDelegateActionRequest{}, fmt.Errorf("wallet ID is required")
	}

	encoded, err := near.EncodeDelegateAction(b.action)
	if err != nil {
		return SignDelegateActionRequest{}, err
	}

	auth, err := newWriteAuth(secrets, b.idempotencyKey)
	if err != nil {
		return SignDelegateActionRequest{}, err
	}

	return SignDelegateActionRequest{
		WriteAuth:              auth,
		WalletID:               b.walletID,
		UnsignedDelegateAction: encoded,
	}, nil
}

// SignMessage signs a message with a developer-controlled wallet.
func (c *CircleClient) SignMessage(ctx context.Context, builder SignMessageBuilder) (*SignatureResult, error) {
	request, err := builder.Build(c.secrets)
	if err != nil {
		return nil, err
	}
	return c.sign(ctx, "message", request)
}

// SignTypedData signs EIP-712 typed data.
func (c *CircleClient) SignTypedData(ctx context.Context, builder SignTypedDataBuilder) (*SignatureResult, error) {
	request, err := builder.Build(c.secrets)
	if err != nil {
		return nil, err
	}
	return c.sign(ctx, "typedData", request)
}

func (c *CircleClient) sign(ctx context.Context, kind string, request interface{}) (*SignatureResult, error) {
	data, err := httpClient.Execute[SignatureResult](ctx, c.httpClient, http.MethodPost, w3s("/developer/sign/%s", kind), request)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s: %w", kind, err)
	}
	return &data, nil
}

// SignTransaction signs a transaction without broadcasting it.
func (c *CircleClient) SignTransaction(ctx context.Context, builder SignTransactionBuilder) (*SignedTransaction, error) {
	request, err := builder.Build(c.secrets)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[SignedTransaction](ctx, c.httpClient, http.MethodPost, w3s("/developer/sign/transaction"), request)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return &data, nil
}

// SignDelegateAction signs a NEAR delegate action for relaying.
func (c *CircleClient) SignDelegateAction(ctx context.Context, builder SignDelegateActionBuilder) (*SignedDelegateAction, error) {
	request, err := builder.Build(c.secrets)
	if err != nil {
		return nil, err
	}

	data, err := httpClient.Execute[SignedDelegateAction](ctx, c.httpClient, http.MethodPost, w3s("/developer/sign/delegateAction"), request)
	if err != nil {
		return nil, fmt.Errorf("failed to sign delegate action: %w", err)
	}
	return &data, nil
}
