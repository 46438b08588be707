package circleerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	code := 155101

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "transport failure", err: &TransportError{Method: "GET", URL: "https://x", Err: context.DeadlineExceeded}, expected: true},
		{name: "wrapped transport failure", err: fmt.Errorf("list wallets: %w", &TransportError{Err: errors.New("reset")}), expected: true},
		{name: "bad request", err: &APIError{StatusCode: 400, Code: &code, Message: "bad"}, expected: false},
		{name: "conflict", err: &APIError{StatusCode: 409, Message: "exists"}, expected: false},
		{name: "rate limited", err: &APIError{StatusCode: 429, Message: "slow down"}, expected: true},
		{name: "request timeout", err: &APIError{StatusCode: 408}, expected: true},
		{name: "server error", err: &APIError{StatusCode: 503, Message: "unavailable"}, expected: true},
		{name: "decode error", err: &DecodeResponseError{StatusCode: 200, Err: errors.New("eof")}, expected: false},
		{name: "encryption error", err: &EncryptionError{Err: errors.New("too long")}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsRetryable(tc.err))
		})
	}
}

func TestKeyParseErrorMessageListsEveryAttempt(t *testing.T) {
	first := errors.New("asn1: structure error")
	second := errors.New("x509: malformed")
	err := &KeyParseError{Attempts: []ParseAttempt{
		{Scheme: "pkcs1", Err: first},
		{Scheme: "pkix", Err: second},
	}}

	assert.Contains(t, err.Error(), "pkcs1: asn1: structure error")
	assert.Contains(t, err.Error(), "pkix: x509: malformed")
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestAPIErrorFormatting(t *testing.T) {
	code := 4001
	withCode := &APIError{StatusCode: 400, Code: &code, Message: "bad request"}
	assert.Equal(t, "api error: status 400, code 4001: bad request", withCode.Error())
	assert.True(t, withCode.IsClientError())
	assert.False(t, withCode.IsServerError())

	withoutCode := &APIError{StatusCode: 502, Message: "<html>bad gateway</html>"}
	assert.Equal(t, "api error: status 502: <html>bad gateway</html>", withoutCode.Error())
	assert.Equal(t, 502, StatusCode(fmt.Errorf("wrapped: %w", withoutCode)))
	assert.Equal(t, 0, StatusCode(errors.New("plain")))
}
