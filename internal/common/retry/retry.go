package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	Retry(ctx context.Context, operation func() error, onExhausted func(err error) error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg config.ExponentialBackOffConfig
}

/*
NewExponentialBackOff will init Retryer interface.
This retryer implement exponential backoff mechanism.

Example:

	Retry(ctx, func() error { return materialize() }, func(err error) error { return report(err) })
*/
func NewExponentialBackOff(ebCfg config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries == 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

/*
Retry creates an ExponentialBackOff for every execution.

"operation" is retried until it succeeds, returns a permanent error or the
retries are used up. "onExhausted" then receives the last error and its result
is returned.
*/
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error, onExhausted func(err error) error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err != nil {
		log.Debugf(ctx, "retry exhausted with err: %v", err)
		return onExhausted(err)
	}

	return nil
}

// StopRetryWithErr will stop retrying and return the error.
// This function should be called inside "operation" func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
