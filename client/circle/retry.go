package circle

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cyphera/circle-w3s/circleerr"
	"github.com/cyphera/circle-w3s/logger"
	"go.uber.org/zap"
)

// RetryConfig configures the retry behavior
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig provides sensible defaults for retries
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:      3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		Multiplier:      2.0,
		MaxElapsedTime:  30 * time.Second,
	}
}

// Retry runs op until it succeeds, returns a non-retryable error, or the
// backoff gives up. op must rebuild its request on every call, e.g. by
// calling a CircleClient method with a builder, so each attempt carries a
// fresh ciphertext and, unless pinned, a fresh idempotency key.
//
//	wallets, err := circle.Retry(ctx, nil, func(ctx context.Context) ([]circle.Wallet, error) {
//		return client.CreateWallets(ctx, builder.WithIdempotencyKey(key))
//	})
func Retry[T any](ctx context.Context, config *RetryConfig, op func(ctx context.Context) (T, error)) (T, error) {
	if config == nil {
		config = DefaultRetryConfig()
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = config.InitialInterval
	expBackoff.MaxInterval = config.MaxInterval
	expBackoff.Multiplier = config.Multiplier
	expBackoff.MaxElapsedTime = config.MaxElapsedTime

	var policy backoff.BackOff = expBackoff
	if config.MaxRetries >= 0 {
		policy = backoff.WithMaxRetries(expBackoff, uint64(config.MaxRetries))
	}

	operation := func() (T, error) {
		result, err := op(ctx)
		if err != nil && !circleerr.IsRetryable(err) {
			return result, backoff.Permanent(err)
		}
		return result, err
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("Retrying Circle request",
			zap.Error(err),
			zap.Int("status", circleerr.StatusCode(err)),
			zap.Duration("wait", wait))
	}

	return backoff.RetryNotifyWithData(operation, backoff.WithContext(policy, ctx), notify)
}
