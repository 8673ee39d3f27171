package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memhub/pkg/resilience"
)

var errTransient = errors.New("transient")

func fastConfig(attempts int) resilience.RetryConfig {
	return resilience.RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		BackoffFactor:  2,
	}
}

func TestRetryExecute(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		attempts  int
		permanent bool
		wantCalls int
		wantErr   bool
	}{
		{name: "succeeds first time", failures: 0, attempts: 3, wantCalls: 1},
		{name: "succeeds after transient failures", failures: 2, attempts: 3, wantCalls: 3},
		{name: "gives up after max attempts", failures: 5, attempts: 3, wantCalls: 3, wantErr: true},
		{name: "stops on permanent error", failures: 5, attempts: 3, permanent: true, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			r := resilience.NewRetry("test", fastConfig(tt.attempts))

			err := r.Execute(context.Background(), func(context.Context) error {
				calls++
				if calls <= tt.failures {
					if tt.permanent {
						return resilience.Permanent(errTransient)
					}
					return errTransient
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				require.ErrorIs(t, err, errTransient)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRetryPermanentIsUnwrapped(t *testing.T) {
	r := resilience.NewRetry("test", fastConfig(3))

	err := r.Execute(context.Background(), func(context.Context) error {
		return resilience.Permanent(errTransient)
	})

	assert.Same(t, errTransient, err)
}

func TestRetryContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := resilience.NewRetry("test", resilience.RetryConfig{
		MaxAttempts:    5,
		InitialBackoff: time.Second,
		BackoffFactor:  1,
	})

	err := r.Execute(ctx, func(context.Context) error {
		cancel()
		return errTransient
	})

	require.ErrorIs(t, err, resilience.ErrContextCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}
