package service

import (
	"context"
	"time"

	"split-wallet-engine/internal/core/ports"
	"split-wallet-engine/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// RetryPolicy bounds retries of blockchain calls. Only transient errors are
// retried; everything else fails on the first attempt.
type RetryPolicy struct {
	MaxRetries uint64
	BaseDelay  time.Duration
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.MaxInterval = 16 * p.BaseDelay
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)
}

// withRetry runs fn under policy, counting each retry in metrics.
func withRetry[T any](ctx context.Context, policy RetryPolicy, metrics ports.Metrics, log zerolog.Logger, op string, fn func() (T, error)) (T, error) {
	operation := func() (T, error) {
		v, err := fn()
		if err != nil && !apperror.IsTransient(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}
	notify := func(err error, wait time.Duration) {
		metrics.ChainRetry(op)
		log.Warn().Err(err).Str("operation", op).Dur("wait", wait).Msg("Transient chain error, retrying")
	}
	return backoff.RetryNotifyWithData(operation, policy.backOff(ctx), notify)
}
