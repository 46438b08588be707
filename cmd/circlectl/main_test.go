package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/circle-w3s/client/circle"
	"github.com/cyphera/circle-w3s/logger"
)

const testSecret = "0f1e2d3c4b5a69788796a5b4c3d2e1f00f1e2d3c4b5a69788796a5b4c3d2e1f0"

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func runCommand(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logger.SetLogger(nil) })

	args = append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...)
	var out bytes.Buffer
	err := run(context.Background(), args, lookupFrom(env), &out)
	return out.String(), err
}

func TestIdempotencyKeyNeedsNoConfig(t *testing.T) {
	out, err := runCommand(t, nil, "idempotency-key")
	require.NoError(t, err)

	key, err := uuid.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), key.Version())
}

func TestCommandsAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/ping":
			_, _ = w.Write([]byte(`{"message":"pong"}`))
		case "/v1/w3s/wallets":
			assert.Equal(t, "blockchain=NEAR-TESTNET", r.URL.RawQuery)
			_, _ = w.Write([]byte(`{"data":{"wallets":[{"id":"w1","blockchain":"NEAR-TESTNET"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	env := map[string]string{
		"CIRCLE_API_KEY":       "TEST_API_KEY",
		"CIRCLE_ENTITY_SECRET": testSecret,
		"CIRCLE_BASE_URL":      server.URL,
		"LOG_LEVEL":            "error",
	}

	out, err := runCommand(t, env, "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong\n", out)

	out, err = runCommand(t, env, "--blockchain", "NEAR-TESTNET", "wallets")
	require.NoError(t, err)
	var wallets []circle.Wallet
	require.NoError(t, json.Unmarshal([]byte(out), &wallets))
	require.Len(t, wallets, 1)
	assert.Equal(t, "w1", wallets[0].ID)
}

func TestCiphertextCommand(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	env := map[string]string{
		"CIRCLE_API_KEY":       "TEST_API_KEY",
		"CIRCLE_ENTITY_SECRET": testSecret,
		"CIRCLE_PUBLIC_KEY":    string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
		"CIRCLE_BASE_URL":      "http://127.0.0.1:1",
		"LOG_LEVEL":            "error",
	}

	out, err := runCommand(t, env, "ciphertext")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	plain, err := rsa.DecryptOAEP(sha256.New(), nil, key, raw, nil)
	require.NoError(t, err)
	assert.Len(t, plain, 32)
}

func TestUsageErrors(t *testing.T) {
	_, err := runCommand(t, nil)
	assert.Error(t, err)

	_, err = runCommand(t, map[string]string{"CIRCLE_API_KEY": "k", "CIRCLE_ENTITY_SECRET": testSecret, "LOG_LEVEL": "error"}, "rotate")
	assert.ErrorContains(t, err, "unknown command")

	_, err = runCommand(t, nil, "ping")
	assert.ErrorContains(t, err, "CIRCLE_API_KEY")
}
