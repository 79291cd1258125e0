// Package retry wraps outbound calls with bounded exponential backoff.
// Its only production consumer is the external key-validation client;
// search providers and the crypto path never retry.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config bounds the retry loop.
type Config struct {
	// MaxAttempts counts the initial call plus every retry
	MaxAttempts int

	// InitialDelay is the wait before the first retry
	InitialDelay time.Duration

	// MaxDelay caps the wait between attempts
	MaxDelay time.Duration

	// Multiplier grows the wait after each failed attempt
	Multiplier float64

	// JitterFactor adds up to this fraction of random extra wait
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt;
	// nil retries every error
	RetryIf func(error) bool
}

// ValidatorConfig is tuned for the external key-validation API: three
// attempts with a 200ms opening delay and generous jitter, capped at 5s.
var ValidatorConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// DoWithResult runs fn until it succeeds, its error is ruled out by
// RetryIf, the attempt budget is spent, or the context ends. The value
// and error of the last attempt are returned.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var (
		result T
		err    error
	)
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		result, err = fn()
		if err == nil {
			return result, nil
		}
		if cfg.RetryIf != nil && !cfg.RetryIf(err) {
			return result, err
		}
		if attempt == attempts {
			break
		}

		if waitErr := wait(ctx, withJitter(delay, cfg.MaxDelay, cfg.JitterFactor)); waitErr != nil {
			return result, waitErr
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, err
}

// wait sleeps for d or until the context ends.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// withJitter pads the delay with random jitter and caps it at limit.
func withJitter(delay, limit time.Duration, factor float64) time.Duration {
	padded := delay + time.Duration(rand.Float64()*float64(delay)*factor)
	if padded > limit {
		padded = limit
	}
	return padded
}

// Permanent marks an error that must not be retried, such as a rejection
// from the validation API.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err as non-retryable. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err is marked non-retryable.
func IsPermanent(err error) bool {
	var p *Permanent
	return errors.As(err, &p)
}

// SkipPermanent is a RetryIf predicate that stops on permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}
