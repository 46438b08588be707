package circle

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/binary"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/circle-w3s/near"
)

func testDelegateAction() near.DelegateAction {
	return near.DelegateAction{
		SenderID:   "alice.testnet",
		ReceiverID: "usdc.fakes.testnet",
		Actions: []near.Action{
			near.FunctionCall{
				MethodName: "ft_transfer",
				Args:       []byte(`{"receiver_id":"bob.testnet","amount":"1000000"}`),
				Gas:        30_000_000_000_000,
				Deposit:    near.NewBalance(1),
			},
		},
		Nonce:          42,
		MaxBlockHeight: 1_000_000,
		PublicKey:      near.PublicKey{Type: near.KeyTypeED25519, Data: make([]byte, ed25519.PublicKeySize)},
	}
}

func TestSignDelegateAction(t *testing.T) {
	client, fake := newTestClient(t, func(w http.ResponseWriter, _ recordedRequest) {
		respond(w, http.StatusOK, `{"data":{"signature":"sig","signedDelegateAction":"c2lnbmVk"}}`)
	})

	action := testDelegateAction()
	signed, err := client.SignDelegateAction(context.Background(), NewSignDelegateAction("near-wallet", action))
	require.NoError(t, err)
	assert.Equal(t, "sig", signed.Signature)
	assert.Equal(t, "c2lnbmVk", signed.SignedDelegateAction)

	rec := fake.last()
	assert.Equal(t, "/v1/w3s/developer/sign/delegateAction", rec.Path)
	assert.Equal(t, "near-wallet", rec.Body["walletId"])
	assertDecryptsToSecret(t, rec.Body["entitySecretCiphertext"].(string))

	raw, err := base64.StdEncoding.DecodeString(rec.Body["unsignedDelegateAction"].(string))
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	assert.Equal(t, uint32(1073742285), binary.LittleEndian.Uint32(raw[:4]))

	payload, err := near.SerializeDelegateAction(action)
	require.NoError(t, err)
	assert.Equal(t, payload, raw[4:])
}

func TestSignDelegateActionBuildIsDeterministicExceptCredentials(t *testing.T) {
	builder := NewSignDelegateAction("near-wallet", testDelegateAction())

	a, err := builder.Build(&countingSource{})
	require.NoError(t, err)
	b, err := builder.Build(&countingSource{})
	require.NoError(t, err)

	assert.Equal(t, a.UnsignedDelegateAction, b.UnsignedDelegateAction)
	assert.NotEqual(t, a.IdempotencyKey, b.IdempotencyKey)
}

func TestSignDelegateActionRejectsBadKey(t *testing.T) {
	action := testDelegateAction()
	action.PublicKey.Data = []byte{1, 2, 3}

	source := &countingSource{}
	_, err := NewSignDelegateAction("near-wallet", action).Build(source)
	assert.Error(t, err)
	assert.Zero(t, source.calls.Load())
}

func TestSignMessageTypedDataTransaction(t *testing.T) {
	client, fake := newTestClient(t, func(w http.ResponseWriter, rec recordedRequest) {
		if rec.Path == "/v1/w3s/developer/sign/transaction" {
			respond(w, http.StatusOK, `{"data":{"signature":"0xsig","signedTransaction":"0xsigned"}}`)
			return
		}
		respond(w, http.StatusOK, `{"data":{"signature":"0xsig"}}`)
	})
	ctx := context.Background()

	sig, err := client.SignMessage(ctx, NewSignMessage("w1", "68656c6c6f").WithHexEncoding().WithMemo("login"))
	require.NoError(t, err)
	assert.Equal(t, "0xsig", sig.Signature)
	assert.Equal(t, "/v1/w3s/developer/sign/message", fake.last().Path)
	assert.Equal(t, true, fake.last().Body["encodedByHex"])
	assert.Equal(t, "login", fake.last().Body["memo"])

	_, err = client.SignTypedData(ctx, NewSignTypedData("w1", `{"types":{},"domain":{},"message":{}}`))
	require.NoError(t, err)
	assert.Equal(t, "/v1/w3s/developer/sign/typedData", fake.last().Path)

	signed, err := client.SignTransaction(ctx, NewSignRawTransaction("w1", "0x02f8"))
	require.NoError(t, err)
	assert.Equal(t, "0xsigned", signed.SignedTransaction)
	assert.Equal(t, "0x02f8", fake.last().Body["rawTransaction"])
	assert.NotContains(t, fake.last().Body, "transaction")

	_, err = client.SignMessage(ctx, NewSignMessage("", "hi"))
	assert.Error(t, err)
}
