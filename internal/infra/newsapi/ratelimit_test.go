package newsapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_DisabledIsNil(t *testing.T) {
	var limiter *RateLimiter = NewRateLimiter(0, 5)

	assert.Nil(t, limiter)
	assert.NoError(t, limiter.Wait(context.Background()))
}

func TestRateLimiter_Burst(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	require.NotNil(t, limiter)

	start := time.Now()
	require.NoError(t, limiter.Wait(context.Background()))
	require.NoError(t, limiter.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	limiter := NewRateLimiter(0.1, 1)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.Error(t, limiter.Wait(ctx))
}

func TestNewRateLimiter_MinimumBurst(t *testing.T) {
	limiter := NewRateLimiter(10, 0)
	require.NotNil(t, limiter)
	assert.NoError(t, limiter.Wait(context.Background()))
}
